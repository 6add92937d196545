package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is one entry in a user's inbox. Shoutout creation appends one
// row per valid recipient; rows are never deleted, only marked read.
type Notification struct {
	ID      uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:char(36);index"`
	Title   string    `json:"title" gorm:"size:255;not null"`
	Content string    `json:"content" gorm:"type:text;not null"`
	IsRead  bool      `json:"is_read" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets the UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
