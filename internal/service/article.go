package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blogapi/internal/config"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"
	"blogapi/internal/domain/services"
	"blogapi/internal/permissions"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// articleService implements the ArticleService interface
type articleService struct {
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewArticleService creates a new article service
func NewArticleService(
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List returns one page of articles
func (s *articleService) List(ctx context.Context, identity models.Identity, opts models.ListOptions) (*models.Page[models.Article], error) {
	if err := permissions.Evaluate(identity, permissions.ResourceArticle, permissions.ActionList); err != nil {
		return nil, err
	}

	opts.ApplyDefaults()
	if err := opts.Validate(models.ArticleOrderFields); err != nil {
		return nil, err
	}

	count, articles, err := s.articleRepo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	page := models.NewPage(opts, count, articles)
	return &page, nil
}

// Get retrieves a single article
func (s *articleService) Get(ctx context.Context, identity models.Identity, id string) (*models.Article, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceArticle, permissions.ActionRetrieve); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, id)
}

// Create creates an article authored by the caller
func (s *articleService) Create(ctx context.Context, identity models.Identity, req *services.CreateArticleRequest) (*models.Article, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceArticle, permissions.ActionCreate); err != nil {
		return nil, err
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, fieldErrors(err)
	}

	article := &models.Article{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Tags:     req.Tags,
		AuthorID: identity.UserID,
		Author:   identity.Username,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article created",
		"id", article.ID,
		"title", article.Title,
		"author_id", identity.UserID,
	)

	return article, nil
}

// Update modifies an article
func (s *articleService) Update(ctx context.Context, identity models.Identity, id string, req *services.UpdateArticleRequest) (*models.Article, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceArticle, permissions.ActionUpdate); err != nil {
		return nil, err
	}

	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fieldErrors(err)
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article updated",
		"id", article.ID,
		"actor_id", identity.UserID,
	)

	return article, nil
}

// Delete removes an article and all of its comments in one transaction.
// The comments table's ON DELETE CASCADE is the storage-layer backstop;
// the explicit delete keeps the cascade part of the same logical
// operation regardless of how the schema was provisioned.
func (s *articleService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if err := permissions.Evaluate(identity, permissions.ResourceArticle, permissions.ActionDelete); err != nil {
		return err
	}

	// Verify the article exists first (provides the correct NotFound)
	if _, err := s.articleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.commentRepo.DeleteByArticle(txCtx, id); err != nil {
			return err
		}
		return s.articleRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("article deleted",
		"id", id,
		"actor_id", identity.UserID,
	)

	return nil
}

// validateCreateRequest validates a create article request
func (s *articleService) validateCreateRequest(req *services.CreateArticleRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTitleLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Tags, validation.Length(0, config.MaxTagsLength)),
	)
}

// validateUpdateRequest validates an update article request
func (s *articleService) validateUpdateRequest(req *services.UpdateArticleRequest) error {
	if req.Full {
		// PUT replaces the whole resource; title and content must be present
		missing := validation.Errors{}
		if req.Title == nil {
			missing["title"] = validation.ErrRequired
		}
		if req.Content == nil {
			missing["content"] = validation.ErrRequired
		}
		if len(missing) > 0 {
			return missing
		}
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Length(1, config.MaxTitleLength),
			validation.By(notBlankPtr),
		),
		validation.Field(&req.Tags, validation.Length(0, config.MaxTagsLength)),
	)
}

// notBlank rejects values that are empty after trimming
func notBlank(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return nil
	}
	if strings.TrimSpace(str) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// notBlankPtr is notBlank over optional string fields
func notBlankPtr(value interface{}) error {
	str, ok := value.(*string)
	if !ok || str == nil {
		return nil
	}
	return notBlank(*str)
}
