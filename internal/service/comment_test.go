package service

import (
	"context"
	"errors"
	"testing"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/services"
)

func newCommentFixture(t *testing.T) (*fakeCommentRepo, services.CommentService, *models.Article) {
	t.Helper()
	articleRepo := newFakeArticleRepo()
	commentRepo := newFakeCommentRepo()
	articleSvc := NewArticleService(articleRepo, commentRepo, &fakeTxManager{}, testLogger())
	commentSvc := NewCommentService(commentRepo, articleRepo, testLogger())

	article, err := articleSvc.Create(context.Background(), staff, &services.CreateArticleRequest{
		Title: "Host article", Content: "Body",
	})
	if err != nil {
		t.Fatalf("article Create() error = %v", err)
	}
	return commentRepo, commentSvc, article
}

func TestCommentMissingArticleBeatsPermission(t *testing.T) {
	// Absence of the parent is reported before any permission decision,
	// identically for every privilege level.
	_, svc, _ := newCommentFixture(t)

	for _, identity := range []models.Identity{anon, user, staff} {
		if _, err := svc.ListByArticle(context.Background(), identity, "a-missing", models.ListOptions{}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ListByArticle(%s) error = %v, want not found", identity.Username, err)
		}
		_, err := svc.Create(context.Background(), identity, "a-missing", &services.CreateCommentRequest{Content: "hi"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Create(%s) error = %v, want not found", identity.Username, err)
		}
	}
}

func TestCommentCreate(t *testing.T) {
	_, svc, article := newCommentFixture(t)

	// anonymous callers cannot comment
	_, err := svc.Create(context.Background(), anon, article.ID, &services.CreateCommentRequest{Content: "hi"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous Create() error = %v, want unauthorized", err)
	}

	// the author is always the caller
	comment, err := svc.Create(context.Background(), user, article.ID, &services.CreateCommentRequest{Content: "hi"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if comment.AuthorID != user.UserID {
		t.Errorf("AuthorID = %q, want caller %q", comment.AuthorID, user.UserID)
	}
	if comment.ArticleID != article.ID {
		t.Errorf("ArticleID = %q, want path article %q", comment.ArticleID, article.ID)
	}

	// empty content is a field-level validation error
	_, err = svc.Create(context.Background(), user, article.ID, &services.CreateCommentRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty content Create() error = %v, want validation error", err)
	}
	var fieldErrs *domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		if _, ok := fieldErrs.Fields["content"]; !ok {
			t.Errorf("field errors %v missing %q", fieldErrs.Fields, "content")
		}
	}
}

func TestCommentUpdatePolicy(t *testing.T) {
	other := models.Identity{IsAuthenticated: true, UserID: "u-bob", Username: "bob"}

	tests := []struct {
		name     string
		identity models.Identity
		wantErr  error
	}{
		{"owner edits own comment", user, nil},
		{"staff edits any comment", staff, nil},
		{"non-owner rejected", other, domain.ErrForbidden},
		{"anonymous rejected", anon, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc, article := newCommentFixture(t)
			comment, err := svc.Create(context.Background(), user, article.ID, &services.CreateCommentRequest{Content: "original"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			updated, err := svc.Update(context.Background(), tt.identity, comment.ID, &services.UpdateCommentRequest{Content: "edited"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.Content != "edited" {
				t.Errorf("Content = %q, want %q", updated.Content, "edited")
			}
			if updated.AuthorID != user.UserID {
				t.Errorf("AuthorID changed to %q on edit", updated.AuthorID)
			}
		})
	}
}

func TestCommentDeletePolicy(t *testing.T) {
	other := models.Identity{IsAuthenticated: true, UserID: "u-bob", Username: "bob"}

	tests := []struct {
		name     string
		identity models.Identity
		wantErr  error
	}{
		{"owner deletes own comment", user, nil},
		{"staff deletes any comment", staff, nil},
		{"non-owner rejected", other, domain.ErrForbidden},
		{"anonymous rejected", anon, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commentRepo, svc, article := newCommentFixture(t)
			comment, err := svc.Create(context.Background(), user, article.ID, &services.CreateCommentRequest{Content: "target"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			err = svc.Delete(context.Background(), tt.identity, comment.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
				}
				if _, ok := commentRepo.comments[comment.ID]; !ok {
					t.Error("comment removed despite denial")
				}
				return
			}
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, ok := commentRepo.comments[comment.ID]; ok {
				t.Error("comment still present after delete")
			}
		})
	}
}

func TestCommentUpdateMissing(t *testing.T) {
	_, svc, _ := newCommentFixture(t)
	_, err := svc.Update(context.Background(), user, "c-missing", &services.UpdateCommentRequest{Content: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update() error = %v, want not found", err)
	}
}

func TestCommentListNormalizesOptions(t *testing.T) {
	commentRepo, svc, article := newCommentFixture(t)

	page, err := svc.ListByArticle(context.Background(), anon, article.ID, models.ListOptions{PageSize: 120})
	if err != nil {
		t.Fatalf("ListByArticle() error = %v", err)
	}
	if got := commentRepo.lastListOpts.PageSize; got != models.MaxPageSize {
		t.Errorf("PageSize passed to repo = %d, want clamped %d", got, models.MaxPageSize)
	}
	if got := commentRepo.lastListOpts.Ordering; got != "-created_at" {
		t.Errorf("Ordering passed to repo = %q, want default", got)
	}
	if page.Count != 0 || page.Results == nil {
		t.Errorf("empty page = (count %d, results %v), want zero count and empty slice", page.Count, page.Results)
	}

	// title is not an orderable comment field
	_, err = svc.ListByArticle(context.Background(), anon, article.ID, models.ListOptions{Ordering: "title"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("ListByArticle(ordering=title) error = %v, want validation error", err)
	}
}
