package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Avatar    string    `gorm:"type:varchar(500)" json:"avatar"`
	PsnID     string    `gorm:"column:psn_id;type:varchar(100)" json:"psn_id"`
	Instagram string    `gorm:"type:varchar(100)" json:"instagram"`
	Twitter   string    `gorm:"type:varchar(100)" json:"twitter"`
	Bio       string    `gorm:"type:text" json:"bio"`
	UserID    *string   `gorm:"type:uuid;index" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);default:'author'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string { return "authors" }

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
