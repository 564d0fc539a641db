// Package domain holds the launch waitlist types.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Entry is one waitlist signup. Email is unique; joining twice is not an
// error, just a no-op.
type Entry struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	Email    string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name     string       `gorm:"type:text" json:"name,omitempty"`
	Source   string       `gorm:"type:text;not null" json:"source"`
	Notified bool         `gorm:"not null;default:false" json:"notified"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Entry) TableName() string { return "waitlist" }
