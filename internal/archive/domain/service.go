package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested archive entry does not exist.
var ErrNotFound = errors.New("archive entry not found")

// Service reads the archive. All content is public.
type Service interface {
	ListDeities(ctx context.Context) ([]*Deity, error)
	GetDeity(ctx context.Context, id string) (*Deity, error)

	ListFigures(ctx context.Context) ([]*HistoricalFigure, error)
	GetFigure(ctx context.Context, id string) (*HistoricalFigure, error)

	ListSites(ctx context.Context) ([]*SacredSite, error)
	GetSite(ctx context.Context, id string) (*SacredSite, error)

	// ListRituals filters by category when one is given.
	ListRituals(ctx context.Context, category string) ([]*Ritual, error)
	GetRitual(ctx context.Context, id string) (*Ritual, error)

	// Timeline returns events in ascending year order.
	Timeline(ctx context.Context) ([]*TimelineEvent, error)

	// ListSampleSpells filters by archetype when one is given.
	ListSampleSpells(ctx context.Context, archetypeID string) ([]*SampleSpell, error)

	// ContextNames returns archive names used to ground generation prompts.
	ContextNames(ctx context.Context) (deities, rituals, figures []string, err error)
}
