// Package service implements the spell generation gateway: quota checks,
// prompt assembly, model calls, and robust parsing of what comes back.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	"github.com/crowlands/grimoire/internal/generation/domain"
)

type Service struct {
	log         *zap.Logger
	model       domain.ModelClient
	catalog     *domain.Catalog
	archive     domain.ArchiveContext
	entitlement entitlementdomain.Service
}

func New(
	log *zap.Logger,
	model domain.ModelClient,
	catalog *domain.Catalog,
	archive domain.ArchiveContext,
	entitlement entitlementdomain.Service,
) domain.Service {
	return &Service{
		log:         log.Named("generation.service"),
		model:       model,
		catalog:     catalog,
		archive:     archive,
		entitlement: entitlement,
	}
}

// GenerateSpell produces a structured spell for the given intention. A nil
// user is an anonymous seeker: allowed, unmetered, and given no limit info.
// The quota counter moves only after the model call has succeeded.
func (s *Service) GenerateSpell(ctx context.Context, user *authdomain.User, req domain.SpellRequest) (*domain.SpellResult, error) {
	if user != nil {
		decision := s.entitlement.CheckGenerationAllowed(user)
		if !decision.Allowed {
			quotaDenials.Inc()
			return nil, &entitlementdomain.QuotaExceededError{
				Limit:        decision.Limit,
				CurrentCount: decision.CurrentCount,
			}
		}
	}

	persona, known := s.catalog.Lookup(req.Archetype)
	info := domain.ArchetypeInfo{Name: persona.Name, Title: persona.Title}
	if known {
		info.ID = persona.ID
	}

	deities, rituals, figures := s.archiveNames(ctx)
	prompt := buildSpellPrompt(req.Intention, persona, deities, rituals, figures)

	response, err := s.model.Complete(ctx, systemPromptFor(persona), prompt)
	if err != nil {
		spellGenerations.WithLabelValues("error").Inc()
		return nil, err
	}

	spell, degraded := parseSpell(response)
	if degraded {
		s.log.Warn("model reply was not structured JSON, serving degraded spell")
		spellGenerations.WithLabelValues("degraded").Inc()
	} else {
		spellGenerations.WithLabelValues("structured").Inc()
	}

	result := &domain.SpellResult{
		Spell:     spell,
		Archetype: info,
		SessionID: uuid.NewString(),
		Degraded:  degraded,
	}

	if req.GenerateImage {
		if imagePrompt, ok := spell["image_prompt"].(string); ok && imagePrompt != "" {
			image, err := s.model.GenerateImage(ctx, imagePromptFor(persona, imagePrompt))
			if err != nil {
				// The spell itself succeeded; a missing header image is
				// not worth failing the request over.
				s.log.Error("spell image generation failed", zap.Error(err))
				spellImages.WithLabelValues("error").Inc()
			} else {
				result.ImageBase64 = &image
				spellImages.WithLabelValues("ok").Inc()
			}
		}
	}

	if user != nil {
		if err := s.entitlement.RecordGeneration(ctx, user); err != nil {
			return nil, err
		}
		result.LimitInfo = s.limitInfoAfter(user)
	}

	return result, nil
}

// Chat runs one conversational turn, optionally in an archetype's voice.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResult, error) {
	persona, _ := s.catalog.Lookup(req.Archetype)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	response, err := s.model.Complete(ctx, persona.SystemPrompt, req.Message)
	if err != nil {
		return nil, err
	}
	return &domain.ChatResult{Response: response, SessionID: sessionID}, nil
}

// GenerateImage produces a standalone image in the house style.
func (s *Service) GenerateImage(ctx context.Context, req domain.ImageRequest) (*domain.ImageResult, error) {
	prompt := "1920s-1940s mystical art style, " + req.Prompt + ", art deco influences, rich jewel tones, Bloomsbury aesthetic"
	image, err := s.model.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return &domain.ImageResult{ImageBase64: image}, nil
}

func (s *Service) archiveNames(ctx context.Context) (deities, rituals, figures []string) {
	if s.archive == nil {
		return nil, nil, nil
	}
	deities, rituals, figures, err := s.archive.ContextNames(ctx)
	if err != nil {
		// Archive context enriches prompts but is not load-bearing.
		s.log.Warn("archive context unavailable", zap.Error(err))
		return nil, nil, nil
	}
	return deities, rituals, figures
}

// limitInfoAfter computes the caller's quota standing after this
// generation was recorded. The in-memory user predates the recording, so
// free-tier counts are advanced by one here rather than reloaded.
func (s *Service) limitInfoAfter(user *authdomain.User) *domain.LimitInfo {
	decision := s.entitlement.CheckGenerationAllowed(user)
	if user.IsPaid() {
		return &domain.LimitInfo{
			Remaining:        decision.Remaining,
			Limit:            decision.Limit,
			SubscriptionTier: string(user.SubscriptionTier),
		}
	}

	remaining := decision.Remaining - 1
	if remaining < 0 {
		remaining = 0
	}
	return &domain.LimitInfo{
		Remaining:        remaining,
		Limit:            decision.Limit,
		SubscriptionTier: string(user.SubscriptionTier),
	}
}
