package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

// ErrSpellNotFound covers both a missing spell and one owned by someone
// else; callers cannot tell the two apart.
var ErrSpellNotFound = errors.New("spell not found")

// SaveRequest is a spell to keep, as returned by the generator.
type SaveRequest struct {
	SpellData      map[string]any `json:"spell_data" binding:"required"`
	ArchetypeID    string         `json:"archetype_id"`
	ArchetypeName  string         `json:"archetype_name"`
	ArchetypeTitle string         `json:"archetype_title"`
	ImageBase64    *string        `json:"image_base64"`
}

// Service manages a member's saved spells. Save enforces the paid-tier
// feature gate.
type Service interface {
	Save(ctx context.Context, user *authdomain.User, req SaveRequest) (*SavedSpell, error)
	List(ctx context.Context, userID snowflake.ID) ([]*SavedSpell, error)
	Delete(ctx context.Context, userID, spellID snowflake.ID) error
}
