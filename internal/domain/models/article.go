package models

import "time"

// Article is a blog post. The author reference is set once at creation
// from the authenticated caller and never changes; tags are a single
// comma-delimited string so free-text search can match them directly.
type Article struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Tags      string    `json:"tags" db:"tags"`
	AuthorID  string    `json:"-" db:"author_id"`
	Author    string    `json:"author" db:"author_username"` // author's username, joined at read time
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OwnerID returns the authoring user's ID for object-level permission checks.
func (a *Article) OwnerID() string {
	return a.AuthorID
}

// Query allow-lists for articles. Anything outside these sets is a
// validation error, not a silent default.
var (
	ArticleOrderFields  = OrderFields{"created_at", "title"}
	ArticleSearchFields = []string{"title", "content", "tags"}
)
