package seed

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"blogapi/internal/auth"
	"blogapi/internal/domain/models"
	"blogapi/internal/domain/repositories"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// fixtureUser is one seeded account. Passwords are hashed at load time.
type fixtureUser struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	IsStaff   bool   `yaml:"is_staff"`
}

type fixtureComment struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

type fixtureArticle struct {
	Title    string           `yaml:"title"`
	Author   string           `yaml:"author"`
	Tags     string           `yaml:"tags"`
	Content  string           `yaml:"content"`
	Comments []fixtureComment `yaml:"comments"`
}

type fixtures struct {
	Users    []fixtureUser    `yaml:"users"`
	Articles []fixtureArticle `yaml:"articles"`
}

// Run loads the embedded fixture file and seeds users, articles and
// comments through the repositories. Users that already exist are kept,
// so re-running the seed is safe.
func Run(ctx context.Context, userRepo repositories.UserRepository, articleRepo repositories.ArticleRepository, commentRepo repositories.CommentRepository, logger *slog.Logger) error {
	data, err := fixtureFiles.ReadFile("fixtures/blog.yaml")
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("unmarshal fixtures: %w", err)
	}

	// Seed users; remember IDs by username for article/comment authorship
	userIDs := make(map[string]string, len(fx.Users))
	for _, fu := range fx.Users {
		existing, err := userRepo.GetByUsername(ctx, fu.Username)
		if err == nil {
			userIDs[fu.Username] = existing.ID
			continue
		}

		hash, err := auth.HashPassword(fu.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", fu.Username, err)
		}

		user := &models.User{
			Username:     fu.Username,
			Email:        fu.Email,
			FirstName:    fu.FirstName,
			LastName:     fu.LastName,
			PasswordHash: hash,
			IsStaff:      fu.IsStaff,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", fu.Username, err)
		}
		userIDs[fu.Username] = user.ID
		logger.Info("seeded user", "username", fu.Username, "is_staff", fu.IsStaff)
	}

	// Seed articles and their comments
	for _, fa := range fx.Articles {
		authorID, ok := userIDs[fa.Author]
		if !ok {
			return fmt.Errorf("article %q references unknown author %q", fa.Title, fa.Author)
		}

		article := &models.Article{
			Title:    fa.Title,
			Content:  fa.Content,
			Tags:     fa.Tags,
			AuthorID: authorID,
		}
		if err := articleRepo.Create(ctx, article); err != nil {
			return fmt.Errorf("seed article %q: %w", fa.Title, err)
		}
		logger.Info("seeded article", "title", fa.Title)

		for _, fc := range fa.Comments {
			commentAuthorID, ok := userIDs[fc.Author]
			if !ok {
				return fmt.Errorf("comment on %q references unknown author %q", fa.Title, fc.Author)
			}
			comment := &models.Comment{
				ArticleID: article.ID,
				AuthorID:  commentAuthorID,
				Content:   fc.Content,
			}
			if err := commentRepo.Create(ctx, comment); err != nil {
				return fmt.Errorf("seed comment on %q: %w", fa.Title, err)
			}
		}
	}

	return nil
}
