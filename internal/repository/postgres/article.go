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

// PostgresArticleRepository implements the ArticleRepository interface
type PostgresArticleRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(config *RepositoryConfig) repositories.ArticleRepository {
	return &PostgresArticleRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new article
func (r *PostgresArticleRepository) Create(ctx context.Context, article *models.Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, content, tags, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, r.tables.Articles)

	article.ID = uuid.New().String()
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.Tags,
		article.AuthorID,
	).Scan(&article.CreatedAt)

	if err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

// GetByID retrieves an article by ID with the author's username joined in
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if !isValidID(id) {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.content, a.tags, a.author_id, u.username, a.created_at
		FROM %s a
		JOIN %s u ON u.id = a.author_id
		WHERE a.id = $1
	`, r.tables.Articles, r.tables.Users)

	var article models.Article
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Tags,
		&article.AuthorID,
		&article.Author,
		&article.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &article, nil
}

// List returns the total match count and one page of articles. The
// ordering column comes from the allow-list validated upstream, so
// interpolating it into the SQL is safe; the search term is always bound.
func (r *PostgresArticleRepository) List(ctx context.Context, opts models.ListOptions) (int, []models.Article, error) {
	where := ""
	args := []interface{}{}
	if opts.Search != "" {
		where = "WHERE a.title ILIKE $1 OR a.content ILIKE $1 OR a.tags ILIKE $1"
		args = append(args, "%"+opts.Search+"%")
	}

	executor := GetExecutor(ctx, r.pool)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s a %s`, r.tables.Articles, where)
	var count int
	if err := executor.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return 0, nil, fmt.Errorf("count articles: %w", err)
	}

	field, descending := opts.OrderColumn()
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.content, a.tags, a.author_id, u.username, a.created_at
		FROM %s a
		JOIN %s u ON u.id = a.author_id
		%s
		ORDER BY a.%s %s, a.id
		LIMIT $%d OFFSET $%d
	`, r.tables.Articles, r.tables.Users, where, field, direction, len(args)+1, len(args)+2)
	args = append(args, opts.PageSize, opts.Offset())

	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Content,
			&article.Tags,
			&article.AuthorID,
			&article.Author,
			&article.CreatedAt,
		)
		if err != nil {
			return 0, nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("iterate articles: %w", err)
	}

	if articles == nil {
		articles = []models.Article{}
	}

	return count, articles, nil
}

// Update persists title, content and tags changes
func (r *PostgresArticleRepository) Update(ctx context.Context, article *models.Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, tags = $3
		WHERE id = $4
	`, r.tables.Articles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		article.Title,
		article.Content,
		article.Tags,
		article.ID,
	)

	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", article.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an article. Callers run this inside a transaction
// together with CommentRepository.DeleteByArticle; the comments table's
// ON DELETE CASCADE is the storage-layer backstop.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Articles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Exists reports whether an article with the given ID exists
func (r *PostgresArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	if !isValidID(id) {
		return false, nil
	}

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, r.tables.Articles)

	var exists bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	return exists, nil
}
