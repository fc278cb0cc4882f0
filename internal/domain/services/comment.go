package services

import (
	"context"

	"blogapi/internal/domain/models"
)

// CreateCommentRequest is the payload for creating a comment. Author and
// article are taken from the caller and the path, never from the body.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the payload for updating a comment.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentService defines comment business operations. Any operation
// addressed under an article path resolves the parent first and reports
// NotFound identically for every privilege level.
type CommentService interface {
	// ListByArticle returns one page of an article's comments. Open to
	// anonymous callers; fails with NotFound if the article is missing.
	ListByArticle(ctx context.Context, identity models.Identity, articleID string, opts models.ListOptions) (*models.Page[models.Comment], error)

	// Create adds a comment authored by the caller under an existing
	// article. Requires authentication.
	Create(ctx context.Context, identity models.Identity, articleID string, req *CreateCommentRequest) (*models.Comment, error)

	// Update modifies a comment. Owner or staff.
	Update(ctx context.Context, identity models.Identity, id string, req *UpdateCommentRequest) (*models.Comment, error)

	// Delete removes a comment. Owner or staff.
	Delete(ctx context.Context, identity models.Identity, id string) error
}
