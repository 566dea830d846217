package entity

import (
	"sort"
	"time"
)

type PostType string

const (
	PostTypeReview PostType = "review"
	PostTypeNews   PostType = "news"
	PostTypeGuide  PostType = "guide"

	PostTypeArticle    PostType = "article"
	PostTypePlatinador PostType = "platinador"
)

// Post is the shape shared by every publishable variant.
type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Type       PostType  `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Author     *Author   `json:"author,omitempty"`
	AuthorID   *string   `json:"author_id,omitempty"`
	YoutubeURL string    `json:"youtubeUrl,omitempty"`
}

func (p *Post) Base() *Post { return p }

// Content is implemented by the post variants: *Review, *News, *Guide,
// *Article and *PlatinadorTip.
type Content interface {
	Kind() PostType
	Base() *Post
}

// SortNewestFirst orders mixed content by creation time, newest first.
func SortNewestFirst(items []Content) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Base().CreatedAt.After(items[j].Base().CreatedAt)
	})
}
