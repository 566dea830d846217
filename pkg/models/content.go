package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlatinaGuide is stored as a JSON document on the review row.
type PlatinaGuide struct {
	Difficulty       int    `json:"difficulty"`
	TimeToPlat       string `json:"timeToPlat"`
	MissableTrophies bool   `json:"missableTrophies"`
	OnlineRequired   bool   `json:"onlineRequired"`
	Tips             string `json:"tips"`
}

type Review struct {
	ID           string        `gorm:"type:uuid;primary_key" json:"id"`
	Title        string        `gorm:"type:varchar(255);not null" json:"title"`
	Slug         string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content      string        `gorm:"type:text" json:"content"`
	Image        string        `gorm:"type:varchar(500)" json:"image"`
	Rating       string        `gorm:"type:varchar(20);not null" json:"rating"`
	GameName     string        `gorm:"type:varchar(255)" json:"game_name"`
	AuthorID     *string       `gorm:"type:uuid;index" json:"author_id"`
	PlatinaGuide *PlatinaGuide `gorm:"type:jsonb;serializer:json" json:"platina_guide"`
	YoutubeURL   string        `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	CreatedAt    time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type News struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle   string    `gorm:"type:varchar(500)" json:"subtitle"`
	Slug       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content    string    `gorm:"type:text" json:"content"`
	Image      string    `gorm:"type:varchar(500)" json:"image"`
	AuthorID   *string   `gorm:"type:uuid;index" json:"author_id"`
	YoutubeURL string    `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (News) TableName() string { return "news" }

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

type Guide struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content       string    `gorm:"type:text" json:"content"`
	Image         string    `gorm:"type:varchar(500)" json:"image"`
	GameName      string    `gorm:"type:varchar(255)" json:"game_name"`
	Difficulty    int       `gorm:"default:1" json:"difficulty"`
	EstimatedTime string    `gorm:"type:varchar(50)" json:"estimated_time"`
	AuthorID      *string   `gorm:"type:uuid;index" json:"author_id"`
	YoutubeURL    string    `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Guide) TableName() string { return "guides" }

func (g *Guide) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

type Article struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle   string    `gorm:"type:varchar(500)" json:"subtitle"`
	Slug       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content    string    `gorm:"type:text" json:"content"`
	Image      string    `gorm:"type:varchar(500)" json:"image"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	AuthorID   *string   `gorm:"type:uuid;index" json:"author_id"`
	YoutubeURL string    `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type PlatinadorTip struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Slug         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content      string    `gorm:"type:text" json:"content"`
	Image        string    `gorm:"type:varchar(500)" json:"image"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	HelpfulCount int       `gorm:"not null;default:0" json:"helpful_count"`
	AuthorID     *string   `gorm:"type:uuid;index" json:"author_id"`
	YoutubeURL   string    `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PlatinadorTip) TableName() string { return "platinador_tips" }

func (p *PlatinadorTip) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
