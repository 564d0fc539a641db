package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/config"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	entitlementservice "github.com/crowlands/grimoire/internal/entitlement/service"
	"github.com/crowlands/grimoire/internal/grimoire/domain"
)

func setup(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &domain.SavedSpell{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	holder := config.StaticPolicyHolder(config.DefaultPolicy())
	entitlement := entitlementservice.New(db, zap.NewNop(), holder)
	return New(db, zap.NewNop(), node, entitlement), db, node
}

func seedUser(t *testing.T, db *gorm.DB, node *snowflake.Node, tier authdomain.Tier) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		ID:               node.Generate(),
		Email:            "seeker-" + node.Generate().String() + "@example.com",
		Name:             "Seeker",
		PasswordHash:     "x",
		SubscriptionTier: tier,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestSaveRequiresPaidTier(t *testing.T) {
	svc, db, node := setup(t)
	free := seedUser(t, db, node, authdomain.TierFree)

	_, err := svc.Save(context.Background(), free, domain.SaveRequest{
		SpellData: map[string]any{"title": "The Dawn Cup"},
	})
	var locked *entitlementdomain.FeatureLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err = %v, want FeatureLockedError", err)
	}
	if locked.Feature != entitlementdomain.FeatureSaveSpell {
		t.Fatalf("feature = %q", locked.Feature)
	}

	var count int64
	db.Model(&domain.SavedSpell{}).Count(&count)
	if count != 0 {
		t.Fatal("gated save must not persist anything")
	}
}

func TestSaveAndList(t *testing.T) {
	svc, db, node := setup(t)
	paid := seedUser(t, db, node, authdomain.TierPaid)

	saved, err := svc.Save(context.Background(), paid, domain.SaveRequest{
		SpellData:     map[string]any{"title": "The Midnight Stitch"},
		ArchetypeID:   "catherine",
		ArchetypeName: "Katherine",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Title != "The Midnight Stitch" {
		t.Fatalf("title = %q", saved.Title)
	}

	if _, err := svc.Save(context.Background(), paid, domain.SaveRequest{
		SpellData: map[string]any{"no_title": true},
	}); err != nil {
		t.Fatalf("Save without title: %v", err)
	}

	spells, err := svc.List(context.Background(), paid.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(spells) != 2 {
		t.Fatalf("spells = %d, want 2", len(spells))
	}
	for _, sp := range spells {
		if sp.Title == "" {
			t.Fatal("every saved spell must carry a title")
		}
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", paid.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.TotalSpellsSaved != 2 {
		t.Fatalf("total saved = %d, want 2", stored.TotalSpellsSaved)
	}
}

func TestListIsOwnerScoped(t *testing.T) {
	svc, db, node := setup(t)
	alice := seedUser(t, db, node, authdomain.TierPaid)
	bob := seedUser(t, db, node, authdomain.TierPaid)

	if _, err := svc.Save(context.Background(), alice, domain.SaveRequest{
		SpellData: map[string]any{"title": "Alice's Spell"},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	spells, err := svc.List(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(spells) != 0 {
		t.Fatal("a member must not see another member's grimoire")
	}
}

func TestDeleteOwnerScoped(t *testing.T) {
	svc, db, node := setup(t)
	alice := seedUser(t, db, node, authdomain.TierPaid)
	bob := seedUser(t, db, node, authdomain.TierPaid)

	saved, err := svc.Save(context.Background(), alice, domain.SaveRequest{
		SpellData: map[string]any{"title": "Witch Bottle"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := svc.Delete(context.Background(), bob.ID, saved.ID); !errors.Is(err, domain.ErrSpellNotFound) {
		t.Fatalf("cross-owner delete err = %v, want ErrSpellNotFound", err)
	}

	if err := svc.Delete(context.Background(), alice.ID, saved.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	if err := svc.Delete(context.Background(), alice.ID, saved.ID); !errors.Is(err, domain.ErrSpellNotFound) {
		t.Fatalf("repeat delete err = %v, want ErrSpellNotFound", err)
	}
}
