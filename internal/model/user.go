package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Recipients of shoutouts must hold RoleEmployee.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User represents an authenticated account on the board.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email    string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FullName string    `json:"full_name" gorm:"size:255"`
	Password string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	Role     string    `json:"role" gorm:"size:50;default:'EMPLOYEE';index"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
