package repositories

import (
	"context"

	"blogapi/internal/domain/models"
)

// ArticleRepository defines data access operations for articles
type ArticleRepository interface {
	// Create inserts a new article and fills in its generated ID and timestamp
	Create(ctx context.Context, article *models.Article) error

	// GetByID retrieves an article by ID with the author's username joined in
	GetByID(ctx context.Context, id string) (*models.Article, error)

	// List returns the total match count and one page of articles.
	// Options must already be normalized and validated against the
	// article allow-lists.
	List(ctx context.Context, opts models.ListOptions) (int, []models.Article, error)

	// Update persists title, content and tags changes
	Update(ctx context.Context, article *models.Article) error

	// Delete removes an article. Its comments are removed in the same
	// logical operation (transaction plus ON DELETE CASCADE backstop).
	Delete(ctx context.Context, id string) error

	// Exists reports whether an article with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)
}
