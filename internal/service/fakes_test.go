package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"blogapi/internal/domain"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeArticleRepo is an in-memory ArticleRepository. List returns the
// stored articles as-is and records the options it was called with, so
// tests can assert what the service passed down.
type fakeArticleRepo struct {
	articles map[string]*models.Article
	nextID   int

	lastListOpts models.ListOptions
	listCalled   bool
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]*models.Article)}
}

func (r *fakeArticleRepo) Create(_ context.Context, article *models.Article) error {
	r.nextID++
	article.ID = fmt.Sprintf("a%d", r.nextID)
	article.CreatedAt = time.Now()
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id string) (*models.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("article with id %s not found", id)}
	}
	copied := *article
	return &copied, nil
}

func (r *fakeArticleRepo) List(_ context.Context, opts models.ListOptions) (int, []models.Article, error) {
	r.listCalled = true
	r.lastListOpts = opts
	var out []models.Article
	for _, a := range r.articles {
		out = append(out, *a)
	}
	return len(r.articles), out, nil
}

func (r *fakeArticleRepo) Update(_ context.Context, article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("article with id %s not found", article.ID)}
	}
	stored := *article
	r.articles[article.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("article with id %s not found", id)}
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.articles[id]
	return ok, nil
}

// fakeCommentRepo is an in-memory CommentRepository.
type fakeCommentRepo struct {
	comments map[string]*models.Comment
	nextID   int

	lastListOpts     models.ListOptions
	deleteByArticles []string
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	r.nextID++
	comment.ID = fmt.Sprintf("c%d", r.nextID)
	comment.CreatedAt = time.Now()
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("comment with id %s not found", id)}
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) ListByArticle(_ context.Context, articleID string, opts models.ListOptions) (int, []models.Comment, error) {
	r.lastListOpts = opts
	var out []models.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	return len(out), out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("comment with id %s not found", comment.ID)}
	}
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("comment with id %s not found", id)}
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByArticle(_ context.Context, articleID string) error {
	r.deleteByArticles = append(r.deleteByArticles, articleID)
	for id, c := range r.comments {
		if c.ArticleID == articleID {
			delete(r.comments, id)
		}
	}
	return nil
}

// fakeTxManager runs the function directly; the transactional behavior
// itself is exercised against a real database.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(ctx)
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("u%d", r.nextID)
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("user with id %s not found", id)}
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("user %s not found", username)}
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("user with id %s not found", user.ID)}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email, excludeUserID string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}
