package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shoutout is a public recognition post. The author is always the
// authenticated creator, never taken from the client.
type Shoutout struct {
	ID       uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title    string    `json:"title" gorm:"size:255;not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:char(36);index"`
	Cheers   int       `json:"cheers" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`

	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets the UUID before creating the record.
func (s *Shoutout) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ShoutoutRecipient links a shoutout to one recipient. The recipient set is
// replaced wholesale on update.
type ShoutoutRecipient struct {
	ShoutoutID uuid.UUID `json:"shoutout_id" gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey"`
}

// TableName keeps the singular join-table name.
func (ShoutoutRecipient) TableName() string {
	return "shoutout_recipient"
}

// LeaderboardEntry is one row of the shoutouts-received ranking.
type LeaderboardEntry struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	ShoutoutCount int       `json:"shoutout_count"`
}
