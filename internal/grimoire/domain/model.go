// Package domain holds the personal grimoire types: spells a paid member
// has saved for keeps.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SavedSpell is one spell kept in a member's grimoire. Title is lifted out
// of SpellData at save time so lists render without unpacking the document.
type SavedSpell struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID snowflake.ID `gorm:"not null;index" json:"user_id"`

	SpellData datatypes.JSONMap `gorm:"type:jsonb;not null" json:"spell_data"`
	Title     string            `gorm:"type:text;not null" json:"title"`

	ArchetypeID    string  `gorm:"type:text" json:"archetype_id,omitempty"`
	ArchetypeName  string  `gorm:"type:text" json:"archetype_name,omitempty"`
	ArchetypeTitle string  `gorm:"type:text" json:"archetype_title,omitempty"`
	ImageBase64    *string `gorm:"type:text" json:"image_base64,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SavedSpell) TableName() string { return "user_spells" }
