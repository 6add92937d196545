package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a directory entry created alongside a User at signup. Its
// lifecycle is independent: it can be deactivated without touching the User.
type Employee struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name   string    `json:"name" gorm:"size:255;not null"`
	Email  string    `json:"email" gorm:"uniqueIndex;size:255"`
	Active bool      `json:"active" gorm:"default:true;index"`
	Role   string    `json:"role" gorm:"size:50;default:'EMPLOYEE'"`
}

// BeforeCreate sets the UUID before creating the record.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
