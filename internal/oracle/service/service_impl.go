// Package service deals oracle readings and enforces the premium spread gate.
package service

import (
	"context"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	"github.com/crowlands/grimoire/internal/oracle/domain"
)

// suitKeywords steer the opening card toward the suit that fits the
// question. A miss just means a fully random draw.
var suitKeywords = map[string][]string{
	"Pints":   {"love", "grief", "belonging", "friendship", "emotional", "heart", "feel"},
	"Sparks":  {"confidence", "ambition", "reinvention", "bold", "motivation", "drive", "energy"},
	"Keys":    {"boundaries", "conflict", "lies", "truth", "consequences", "justice", "protect"},
	"Pennies": {"money", "home", "work", "routine", "stability", "practical", "long-term"},
}

type Service struct {
	log         *zap.Logger
	entitlement entitlementdomain.Service
	deck        []domain.Card
	spreads     map[string]domain.Spread
	order       []domain.Spread
}

func New(log *zap.Logger, entitlement entitlementdomain.Service) domain.Service {
	order := domain.Spreads()
	spreads := make(map[string]domain.Spread, len(order))
	for _, sp := range order {
		spreads[sp.ID] = sp
	}
	return &Service{
		log:         log.Named("oracle.service"),
		entitlement: entitlement,
		deck:        domain.Deck(),
		spreads:     spreads,
		order:       order,
	}
}

func (s *Service) Spreads() []domain.Spread { return s.order }

func (s *Service) Cards() []domain.Card { return s.deck }

func (s *Service) Draw(_ context.Context, user *authdomain.User, req domain.DrawRequest) (*domain.Reading, error) {
	spread, ok := s.spreads[req.SpreadID]
	if !ok {
		return nil, domain.ErrUnknownSpread
	}

	if spread.ProOnly {
		if user == nil {
			return nil, &entitlementdomain.FeatureLockedError{Feature: entitlementdomain.FeaturePremiumSpread}
		}
		if err := s.entitlement.RequireFeature(user, entitlementdomain.FeaturePremiumSpread); err != nil {
			return nil, err
		}
	}

	cards := s.deal(len(spread.Positions), req.Question)
	drawn := make([]domain.DrawnCard, len(cards))
	for i, card := range cards {
		drawn[i] = domain.DrawnCard{Position: spread.Positions[i], Card: card}
	}
	return &domain.Reading{Spread: spread, Cards: drawn}, nil
}

// deal picks n distinct cards. When the question leans toward a suit, a
// card from that suit leads the reading.
func (s *Service) deal(n int, question string) []domain.Card {
	perm := rand.Perm(len(s.deck))
	picked := make([]domain.Card, 0, n)
	for _, idx := range perm {
		picked = append(picked, s.deck[idx])
		if len(picked) == n {
			break
		}
	}

	if suit := routeSuit(question); suit != "" {
		for i, card := range picked {
			if card.Suit == suit {
				picked[0], picked[i] = picked[i], picked[0]
				return picked
			}
		}
		// Nothing from the suit was dealt; swap one in for the lead.
		for _, idx := range perm[n:] {
			if s.deck[idx].Suit == suit {
				picked[0] = s.deck[idx]
				break
			}
		}
	}
	return picked
}

func routeSuit(question string) string {
	q := strings.ToLower(question)
	if q == "" {
		return ""
	}
	for suit, keywords := range suitKeywords {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return suit
			}
		}
	}
	return ""
}
