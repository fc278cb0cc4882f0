package postgres

import (
	"context"
	"fmt"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new comment. The service verifies the parent article
// first; the foreign key catches the race where the article disappears
// between that check and the insert.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, article_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, r.tables.Comments)

	comment.ID = uuid.New().String()
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		comment.ID,
		comment.ArticleID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("article %s: %w", comment.ArticleID, domain.ErrNotFound)
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID with the author's username joined in
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.article_id, c.author_id, u.username, c.content, c.created_at
		FROM %s c
		JOIN %s u ON u.id = c.author_id
		WHERE c.id = $1
	`, r.tables.Comments, r.tables.Users)

	var comment models.Comment
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.ArticleID,
		&comment.AuthorID,
		&comment.Author,
		&comment.Content,
		&comment.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByArticle returns the total count and one page of comments for one
// article. The ordering column comes from the validated allow-list.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string, opts models.ListOptions) (int, []models.Comment, error) {
	executor := GetExecutor(ctx, r.pool)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE article_id = $1`, r.tables.Comments)
	var count int
	if err := executor.QueryRow(ctx, countQuery, articleID).Scan(&count); err != nil {
		return 0, nil, fmt.Errorf("count comments: %w", err)
	}

	field, descending := opts.OrderColumn()
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.article_id, c.author_id, u.username, c.content, c.created_at
		FROM %s c
		JOIN %s u ON u.id = c.author_id
		WHERE c.article_id = $1
		ORDER BY c.%s %s, c.id
		LIMIT $2 OFFSET $3
	`, r.tables.Comments, r.tables.Users, field, direction)

	rows, err := executor.Query(ctx, query, articleID, opts.PageSize, opts.Offset())
	if err != nil {
		return 0, nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ArticleID,
			&comment.AuthorID,
			&comment.Author,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return 0, nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("iterate comments: %w", err)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return count, comments, nil
}

// Update persists content changes
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1
		WHERE id = $2
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, comment.Content, comment.ID)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a single comment
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByArticle removes all comments under an article. Zero rows is not
// an error: an article may simply have no comments.
func (r *PostgresCommentRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE article_id = $1`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, articleID); err != nil {
		return fmt.Errorf("delete comments for article: %w", err)
	}

	return nil
}
