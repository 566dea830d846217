package entity

import "time"

type AuthorRole string

const (
	AuthorRoleAdmin  AuthorRole = "admin"
	AuthorRoleAuthor AuthorRole = "author"
)

// DefaultAuthorName is used when a post is saved without an author.
const DefaultAuthorName = "Admin"

type Author struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Avatar    string     `json:"avatar,omitempty"`
	PsnID     string     `json:"psnId,omitempty"`
	Instagram string     `json:"instagram,omitempty"`
	Twitter   string     `json:"twitter,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	UserID    *string    `json:"user_id,omitempty"`
	Role      AuthorRole `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
