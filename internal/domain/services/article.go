package services

import (
	"context"

	"blogapi/internal/domain/models"
)

// CreateArticleRequest is the payload for creating an article. The author
// is never taken from the body; it is the authenticated caller.
type CreateArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// UpdateArticleRequest is the payload for updating an article. Nil fields
// are left unchanged. Full marks a PUT-style replacement, which requires
// title and content to be present.
type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
	Full    bool    `json:"-"`
}

// ArticleService defines article business operations. Every method takes
// the caller's identity and runs the permission evaluation itself, so the
// policy cannot be bypassed by a handler.
type ArticleService interface {
	// List returns one page of articles, applying search, ordering and
	// pagination. Open to anonymous callers.
	List(ctx context.Context, identity models.Identity, opts models.ListOptions) (*models.Page[models.Article], error)

	// Get retrieves a single article. Open to anonymous callers.
	Get(ctx context.Context, identity models.Identity, id string) (*models.Article, error)

	// Create creates an article authored by the caller. Staff only.
	Create(ctx context.Context, identity models.Identity, req *CreateArticleRequest) (*models.Article, error)

	// Update modifies an article. Staff only.
	Update(ctx context.Context, identity models.Identity, id string, req *UpdateArticleRequest) (*models.Article, error)

	// Delete removes an article and all of its comments. Staff only.
	Delete(ctx context.Context, identity models.Identity, id string) error
}
