package models

// Identity is the per-request identity context. It is built once by the
// authentication middleware and passed read-only into every permission
// decision; nothing below the middleware is allowed to mutate it or to
// resolve identity from any other source.
type Identity struct {
	IsAuthenticated bool
	UserID          string // set iff IsAuthenticated
	Username        string
	IsStaff         bool
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// IsOwner reports whether the identity belongs to the given author.
// Always false for anonymous callers.
func (id Identity) IsOwner(authorID string) bool {
	return id.IsAuthenticated && id.UserID == authorID
}
