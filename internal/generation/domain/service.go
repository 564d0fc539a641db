package domain

import (
	"context"
	"errors"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

var (
	// ErrModelUnavailable is returned when the model backend cannot be
	// reached or refuses the request.
	ErrModelUnavailable = errors.New("model backend unavailable")
	// ErrNoImage is returned when the backend answered but produced no image.
	ErrNoImage = errors.New("no image was generated")
)

// ModelClient is the LLM backend: text completion in a given voice and
// image generation.
type ModelClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// ArchiveContext supplies archive names woven into generation prompts so
// spells reference the site's own deities, rituals, and figures.
type ArchiveContext interface {
	ContextNames(ctx context.Context) (deities, rituals, figures []string, err error)
}

// Service is the generation gateway. GenerateSpell accepts a nil user:
// anonymous generations are allowed and unmetered.
type Service interface {
	GenerateSpell(ctx context.Context, user *authdomain.User, req SpellRequest) (*SpellResult, error)
	Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}
