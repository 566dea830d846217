package entity

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// NewsMedia is one ordered image or video attached to news, articles or
// platinador tips.
type NewsMedia struct {
	ID           string    `json:"id,omitempty"`
	Type         MediaType `json:"type"`
	URL          string    `json:"url"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
}

type News struct {
	Post
	Subtitle        string      `json:"subtitle,omitempty"`
	AdditionalMedia []NewsMedia `json:"additionalMedia"`
}

func (n *News) Kind() PostType { return PostTypeNews }
