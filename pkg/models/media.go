package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewImage struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	ReviewID     string `gorm:"type:uuid;not null;index" json:"review_id"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	Caption      string `gorm:"type:text" json:"caption"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (ReviewImage) TableName() string { return "review_images" }

func (ri *ReviewImage) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == "" {
		ri.ID = uuid.New().String()
	}
	return nil
}

type NewsMedia struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	NewsID       string `gorm:"type:uuid;not null;index" json:"news_id"`
	Type         string `gorm:"type:varchar(10);not null" json:"type"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	Caption      string `gorm:"type:text" json:"caption"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (NewsMedia) TableName() string { return "news_media" }

func (nm *NewsMedia) BeforeCreate(tx *gorm.DB) error {
	if nm.ID == "" {
		nm.ID = uuid.New().String()
	}
	return nil
}

type GuideStep struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	GuideID      string `gorm:"type:uuid;not null;index" json:"guide_id"`
	Title        string `gorm:"type:varchar(255);not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Image        string `gorm:"type:varchar(500)" json:"image"`
	Video        string `gorm:"type:varchar(500)" json:"video"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (GuideStep) TableName() string { return "guide_steps" }

func (gs *GuideStep) BeforeCreate(tx *gorm.DB) error {
	if gs.ID == "" {
		gs.ID = uuid.New().String()
	}
	return nil
}

type ArticleMedia struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	ArticleID    string `gorm:"type:uuid;not null;index" json:"article_id"`
	Type         string `gorm:"type:varchar(10);not null" json:"type"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	Caption      string `gorm:"type:text" json:"caption"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (ArticleMedia) TableName() string { return "article_media" }

func (am *ArticleMedia) BeforeCreate(tx *gorm.DB) error {
	if am.ID == "" {
		am.ID = uuid.New().String()
	}
	return nil
}

type PlatinadorMedia struct {
	ID           string `gorm:"type:uuid;primary_key" json:"id"`
	TipID        string `gorm:"type:uuid;not null;index" json:"tip_id"`
	Type         string `gorm:"type:varchar(10);not null" json:"type"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	Caption      string `gorm:"type:text" json:"caption"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

func (PlatinadorMedia) TableName() string { return "platinador_media" }

func (pm *PlatinadorMedia) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == "" {
		pm.ID = uuid.New().String()
	}
	return nil
}

// All lists every row type, in dependency order, for AutoMigrate in tests and tooling.
func All() []interface{} {
	return []interface{}{
		&User{}, &Author{},
		&Review{}, &News{}, &Guide{}, &Article{}, &PlatinadorTip{},
		&Genre{}, &Tag{},
		&ReviewGenre{}, &ReviewTag{}, &GuideTag{},
		&ReviewImage{}, &NewsMedia{}, &GuideStep{}, &ArticleMedia{}, &PlatinadorMedia{},
	}
}
