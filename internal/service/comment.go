package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"
	"blogapi/internal/domain/services"
	"blogapi/internal/permissions"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	logger *slog.Logger,
) services.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// ListByArticle returns one page of an article's comments. The parent is
// resolved before anything else: absence is reported identically for every
// privilege level, since article existence is public information anyway.
func (s *commentService) ListByArticle(ctx context.Context, identity models.Identity, articleID string, opts models.ListOptions) (*models.Page[models.Comment], error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	if err := permissions.Evaluate(identity, permissions.ResourceComment, permissions.ActionList); err != nil {
		return nil, err
	}

	opts.ApplyDefaults()
	if err := opts.Validate(models.CommentOrderFields); err != nil {
		return nil, err
	}

	count, comments, err := s.commentRepo.ListByArticle(ctx, articleID, opts)
	if err != nil {
		return nil, err
	}

	page := models.NewPage(opts, count, comments)
	return &page, nil
}

// Create adds a comment authored by the caller under an existing article
func (s *commentService) Create(ctx context.Context, identity models.Identity, articleID string, req *services.CreateCommentRequest) (*models.Comment, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	if err := permissions.Evaluate(identity, permissions.ResourceComment, permissions.ActionCreate); err != nil {
		return nil, err
	}

	if err := s.validateContent(req.Content); err != nil {
		return nil, fieldErrors(err)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		AuthorID:  identity.UserID,
		Author:    identity.Username,
		Content:   req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"article_id", articleID,
		"author_id", identity.UserID,
	)

	return comment, nil
}

// Update modifies a comment. The coarse authentication check runs first,
// then the instance is fetched, then the owner-or-staff object check.
func (s *commentService) Update(ctx context.Context, identity models.Identity, id string, req *services.UpdateCommentRequest) (*models.Comment, error) {
	if err := permissions.Evaluate(identity, permissions.ResourceComment, permissions.ActionUpdate); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := permissions.EvaluateObject(identity, permissions.ResourceComment, permissions.ActionUpdate, comment); err != nil {
		return nil, err
	}

	if err := s.validateContent(req.Content); err != nil {
		return nil, fieldErrors(err)
	}

	comment.Content = req.Content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment updated",
		"id", comment.ID,
		"actor_id", identity.UserID,
	)

	return comment, nil
}

// Delete removes a comment, subject to the owner-or-staff policy
func (s *commentService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if err := permissions.Evaluate(identity, permissions.ResourceComment, permissions.ActionDelete); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := permissions.EvaluateObject(identity, permissions.ResourceComment, permissions.ActionDelete, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted",
		"id", id,
		"article_id", comment.ArticleID,
		"actor_id", identity.UserID,
	)

	return nil
}

// requireArticle short-circuits with NotFound when the parent article does
// not exist
func (s *commentService) requireArticle(ctx context.Context, articleID string) error {
	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Message: fmt.Sprintf("article with id %s not found", articleID)}
	}
	return nil
}

func (s *commentService) validateContent(content string) error {
	err := validation.Validate(content,
		validation.Required,
		validation.By(func(value interface{}) error {
			str, _ := value.(string)
			if str != "" && strings.TrimSpace(str) == "" {
				return fmt.Errorf("cannot be blank")
			}
			return nil
		}),
	)
	if err != nil {
		return validation.Errors{"content": err}
	}
	return nil
}
