package http

import (
	"time"

	"platina/services/content/internal/entity"
)

// PostSummary is one entry of the mixed feed.
type PostSummary struct {
	ID           string          `json:"id"`
	Type         entity.PostType `json:"type"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Image        string          `json:"image"`
	CreatedAt    time.Time       `json:"created_at"`
	Author       *entity.Author  `json:"author,omitempty"`
	GameName     string          `json:"gameName,omitempty"`
	Rating       string          `json:"rating,omitempty"`
	RatingLabel  string          `json:"ratingLabel,omitempty"`
	Subtitle     string          `json:"subtitle,omitempty"`
	Difficulty   int             `json:"difficulty,omitempty"`
	Category     string          `json:"category,omitempty"`
	HelpfulCount int             `json:"helpful_count,omitempty"`
}

func summarize(item entity.Content) (PostSummary, bool) {
	base := item.Base()
	summary := PostSummary{
		ID:        base.ID,
		Type:      item.Kind(),
		Title:     base.Title,
		Slug:      base.Slug,
		Image:     base.Image,
		CreatedAt: base.CreatedAt,
		Author:    base.Author,
	}

	switch v := item.(type) {
	case *entity.Review:
		summary.GameName = v.GameName
		summary.Rating = string(v.Rating)
		summary.RatingLabel = v.Rating.Info().Label
	case *entity.News:
		summary.Subtitle = v.Subtitle
	case *entity.Guide:
		summary.GameName = v.GameName
		summary.Difficulty = v.Difficulty
	case *entity.Article:
		summary.Subtitle = v.Subtitle
		summary.Category = v.Category
	case *entity.PlatinadorTip:
		summary.Category = v.Category
		summary.HelpfulCount = v.HelpfulCount
	default:
		return PostSummary{}, false
	}
	return summary, true
}

func summarizeAll(items []entity.Content) []PostSummary {
	out := make([]PostSummary, 0, len(items))
	for _, item := range items {
		if summary, ok := summarize(item); ok {
			out = append(out, summary)
		}
	}
	return out
}
