package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Genre) TableName() string { return "genres" }

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

type Tag struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string { return "tags" }

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type ReviewGenre struct {
	ReviewID     string `gorm:"type:uuid;primaryKey"`
	GenreID      string `gorm:"type:uuid;primaryKey"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

func (ReviewGenre) TableName() string { return "review_genres" }

type ReviewTag struct {
	ReviewID     string `gorm:"type:uuid;primaryKey"`
	TagID        string `gorm:"type:uuid;primaryKey"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

func (ReviewTag) TableName() string { return "review_tags" }

type GuideTag struct {
	GuideID      string `gorm:"type:uuid;primaryKey"`
	TagID        string `gorm:"type:uuid;primaryKey"`
	DisplayOrder int    `gorm:"not null;default:0"`
}

func (GuideTag) TableName() string { return "guide_tags" }
