package models

import "time"

// Comment belongs to exactly one article and never outlives it: deleting
// the article removes its comments in the same logical operation.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	ArticleID string    `json:"article" db:"article_id"`
	AuthorID  string    `json:"-" db:"author_id"`
	Author    string    `json:"author" db:"author_username"` // author's username, joined at read time
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OwnerID returns the authoring user's ID for object-level permission checks.
func (c *Comment) OwnerID() string {
	return c.AuthorID
}

// Comments are only orderable by creation time; search is not exposed.
var CommentOrderFields = OrderFields{"created_at"}
