package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token is an opaque bearer token issued at login. Tokens never expire and
// are never revoked; presenting one identifies the bound user.
type Token struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Token  string    `json:"token" gorm:"uniqueIndex;size:255;not null"`
	UserID uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`

	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets the UUID before creating the record.
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
