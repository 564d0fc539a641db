package domain

import (
	"context"
	"errors"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

// ErrUnknownSpread is returned for a spread id that isn't in the catalog.
var ErrUnknownSpread = errors.New("unknown spread")

// DrawRequest asks for a reading. Question steers suit weighting but is
// never required.
type DrawRequest struct {
	SpreadID string `json:"spread_id" binding:"required"`
	Question string `json:"question"`
}

// Service deals oracle readings. Draw accepts a nil user; pro-only spreads
// then come back feature-locked.
type Service interface {
	Spreads() []Spread
	Cards() []Card
	Draw(ctx context.Context, user *authdomain.User, req DrawRequest) (*Reading, error)
}
