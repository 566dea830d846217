package entity

// Article is a long-form editorial piece, listed under /artigos.
type Article struct {
	Post
	Subtitle     string      `json:"subtitle,omitempty"`
	Category     string      `json:"category,omitempty"`
	ArticleMedia []NewsMedia `json:"articleMedia"`
}

func (a *Article) Kind() PostType { return PostTypeArticle }
