package entity

type GuideStep struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	Video        string `json:"video,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type Guide struct {
	Post
	GameName      string      `json:"gameName"`
	Difficulty    int         `json:"difficulty"`
	EstimatedTime string      `json:"estimatedTime"`
	Tags          []string    `json:"tags"`
	Steps         []GuideStep `json:"steps"`
}

func (g *Guide) Kind() PostType { return PostTypeGuide }
