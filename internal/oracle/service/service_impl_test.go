package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/config"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	entitlementservice "github.com/crowlands/grimoire/internal/entitlement/service"
	"github.com/crowlands/grimoire/internal/oracle/domain"
)

func setup(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	holder := config.StaticPolicyHolder(config.DefaultPolicy())
	entitlement := entitlementservice.New(db, zap.NewNop(), holder)
	return New(zap.NewNop(), entitlement)
}

func userWithTier(tier authdomain.Tier) *authdomain.User {
	return &authdomain.User{SubscriptionTier: tier}
}

func TestDrawFreeSpread(t *testing.T) {
	svc := setup(t)

	reading, err := svc.Draw(context.Background(), nil, domain.DrawRequest{SpreadID: "three_card"})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(reading.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(reading.Cards))
	}

	seen := map[string]bool{}
	for i, drawn := range reading.Cards {
		if drawn.Position != reading.Spread.Positions[i] {
			t.Fatalf("position %d = %q", i, drawn.Position)
		}
		if seen[drawn.Card.ID] {
			t.Fatalf("card %s dealt twice", drawn.Card.ID)
		}
		seen[drawn.Card.ID] = true
	}
}

func TestDrawProSpreadGated(t *testing.T) {
	svc := setup(t)

	for _, user := range []*authdomain.User{nil, userWithTier(authdomain.TierFree)} {
		_, err := svc.Draw(context.Background(), user, domain.DrawRequest{SpreadID: "street_spread"})
		var locked *entitlementdomain.FeatureLockedError
		if !errors.As(err, &locked) {
			t.Fatalf("err = %v, want FeatureLockedError", err)
		}
		if locked.Feature != entitlementdomain.FeaturePremiumSpread {
			t.Fatalf("feature = %q", locked.Feature)
		}
	}

	reading, err := svc.Draw(context.Background(), userWithTier(authdomain.TierPaid), domain.DrawRequest{SpreadID: "street_spread"})
	if err != nil {
		t.Fatalf("paid Draw: %v", err)
	}
	if len(reading.Cards) != 5 {
		t.Fatalf("cards = %d, want 5", len(reading.Cards))
	}
}

func TestDrawUnknownSpread(t *testing.T) {
	svc := setup(t)

	_, err := svc.Draw(context.Background(), nil, domain.DrawRequest{SpreadID: "celtic_cross"})
	if !errors.Is(err, domain.ErrUnknownSpread) {
		t.Fatalf("err = %v, want ErrUnknownSpread", err)
	}
}

func TestDrawRoutesQuestionSuit(t *testing.T) {
	svc := setup(t)

	// Money questions should lead with a Pennies card. The draw is random,
	// so check a handful of rounds.
	for i := 0; i < 10; i++ {
		reading, err := svc.Draw(context.Background(), nil, domain.DrawRequest{
			SpreadID: "one_card",
			Question: "I'm worried about money and rent",
		})
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if reading.Cards[0].Card.Suit != "Pennies" {
			t.Fatalf("round %d lead suit = %q, want Pennies", i, reading.Cards[0].Card.Suit)
		}
	}
}

func TestSpreadsAndCards(t *testing.T) {
	svc := setup(t)

	spreads := svc.Spreads()
	if len(spreads) == 0 {
		t.Fatal("no spreads")
	}
	var free, pro int
	for _, sp := range spreads {
		if sp.ProOnly {
			pro++
		} else {
			free++
		}
	}
	if free == 0 || pro == 0 {
		t.Fatalf("spread mix free=%d pro=%d", free, pro)
	}

	cards := svc.Cards()
	if len(cards) < 20 {
		t.Fatalf("deck size = %d", len(cards))
	}
}
