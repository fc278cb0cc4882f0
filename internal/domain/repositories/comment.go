package repositories

import (
	"context"

	"blogapi/internal/domain/models"
)

// CommentRepository defines data access operations for comments
type CommentRepository interface {
	// Create inserts a new comment and fills in its generated ID and timestamp
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves a comment by ID with the author's username joined in
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// ListByArticle returns the total count and one page of comments for
	// one article. Options must already be normalized and validated.
	ListByArticle(ctx context.Context, articleID string, opts models.ListOptions) (int, []models.Comment, error)

	// Update persists content changes
	Update(ctx context.Context, comment *models.Comment) error

	// Delete removes a single comment
	Delete(ctx context.Context, id string) error

	// DeleteByArticle removes all comments under an article; used inside
	// the article-delete transaction
	DeleteByArticle(ctx context.Context, articleID string) error
}
