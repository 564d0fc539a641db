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
	"github.com/crowlands/grimoire/internal/generation/domain"
)

type stubModel struct {
	completion    string
	completionErr error
	image         string
	imageErr      error
	completeCalls int
	imageCalls    int
}

func (m *stubModel) Complete(_ context.Context, _, _ string) (string, error) {
	m.completeCalls++
	return m.completion, m.completionErr
}

func (m *stubModel) GenerateImage(_ context.Context, _ string) (string, error) {
	m.imageCalls++
	return m.image, m.imageErr
}

type stubArchive struct{}

func (stubArchive) ContextNames(_ context.Context) (deities, rituals, figures []string, err error) {
	return []string{"The Morrígan"}, []string{"Crow's Vigil"}, []string{"Dion Fortune"}, nil
}

func setup(t *testing.T, model domain.ModelClient) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	holder := config.StaticPolicyHolder(config.DefaultPolicy())
	entitlement := entitlementservice.New(db, zap.NewNop(), holder)
	svc := New(zap.NewNop(), model, domain.NewCatalog(), stubArchive{}, entitlement)
	return svc, db, node
}

func seedUser(t *testing.T, db *gorm.DB, node *snowflake.Node, tier authdomain.Tier, count int) *authdomain.User {
	t.Helper()
	user := &authdomain.User{
		ID:                   node.Generate(),
		Email:                "seeker-" + node.Generate().String() + "@example.com",
		Name:                 "Seeker",
		PasswordHash:         "x",
		SubscriptionTier:     tier,
		SpellGenerationCount: count,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

const structuredReply = `{"title": "The Midnight Stitch", "introduction": "Come close.", "image_prompt": "a needle under moonlight"}`

func TestGenerateSpellStructured(t *testing.T) {
	model := &stubModel{completion: structuredReply, image: "aW1hZ2U="}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierFree, 0)

	result, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{
		Intention:     "protection for my home",
		Archetype:     "catherine",
		GenerateImage: true,
	})
	if err != nil {
		t.Fatalf("GenerateSpell: %v", err)
	}
	if result.Degraded {
		t.Fatal("structured reply must not degrade")
	}
	if result.Spell["title"] != "The Midnight Stitch" {
		t.Fatalf("title = %v", result.Spell["title"])
	}
	if result.Archetype.ID != "catherine" || result.Archetype.Name != "Katherine" {
		t.Fatalf("archetype = %+v", result.Archetype)
	}
	if result.ImageBase64 == nil || *result.ImageBase64 != "aW1hZ2U=" {
		t.Fatal("expected a generated image")
	}
	if result.SessionID == "" {
		t.Fatal("session id must be set")
	}

	if result.LimitInfo == nil {
		t.Fatal("authenticated caller must get limit info")
	}
	if result.LimitInfo.Remaining != 2 || result.LimitInfo.Limit != 3 {
		t.Fatalf("limit info = %+v", result.LimitInfo)
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.SpellGenerationCount != 1 {
		t.Fatalf("count = %d, want 1", stored.SpellGenerationCount)
	}
}

func TestGenerateSpellAnonymous(t *testing.T) {
	model := &stubModel{completion: structuredReply}
	svc, _, _ := setup(t, model)

	result, err := svc.GenerateSpell(context.Background(), nil, domain.SpellRequest{
		Intention: "courage before an interview",
	})
	if err != nil {
		t.Fatalf("GenerateSpell: %v", err)
	}
	if result.LimitInfo != nil {
		t.Fatal("anonymous callers must not get limit info")
	}
	if result.Archetype.ID != "" || result.Archetype.Name != "The Crowlands Guide" {
		t.Fatalf("archetype = %+v", result.Archetype)
	}
}

func TestGenerateSpellQuotaExhausted(t *testing.T) {
	model := &stubModel{completion: structuredReply}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierFree, 3)

	_, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{Intention: "one more"})
	var quotaErr *entitlementdomain.QuotaExceededError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("err = %v, want QuotaExceededError", err)
	}
	if quotaErr.Limit != 3 || quotaErr.CurrentCount != 3 {
		t.Fatalf("quota error = %+v", quotaErr)
	}
	if model.completeCalls != 0 {
		t.Fatal("model must not be called when the quota is exhausted")
	}
}

func TestGenerateSpellPaidUnmetered(t *testing.T) {
	model := &stubModel{completion: structuredReply}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierPaid, 0)

	result, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{Intention: "abundance"})
	if err != nil {
		t.Fatalf("GenerateSpell: %v", err)
	}
	if result.LimitInfo == nil || result.LimitInfo.Remaining != entitlementdomain.UnlimitedSentinel {
		t.Fatalf("limit info = %+v", result.LimitInfo)
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.SpellGenerationCount != 0 {
		t.Fatal("paid generations must not move the quota counter")
	}
}

func TestGenerateSpellDegradedStillCounts(t *testing.T) {
	model := &stubModel{completion: "Light a candle and breathe."}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierFree, 0)

	result, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{Intention: "calm"})
	if err != nil {
		t.Fatalf("GenerateSpell: %v", err)
	}
	if !result.Degraded {
		t.Fatal("plain-text reply must be degraded")
	}
	if result.Spell["raw_response"] != "Light a candle and breathe." {
		t.Fatal("degraded spell must carry the raw reply")
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.SpellGenerationCount != 1 {
		t.Fatal("a degraded but successful generation still consumes quota")
	}
}

func TestGenerateSpellModelFailureLeavesQuotaUntouched(t *testing.T) {
	model := &stubModel{completionErr: domain.ErrModelUnavailable}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierFree, 0)

	_, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{Intention: "focus"})
	if !errors.Is(err, domain.ErrModelUnavailable) {
		t.Fatalf("err = %v, want ErrModelUnavailable", err)
	}

	var stored authdomain.User
	if err := db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.SpellGenerationCount != 0 {
		t.Fatal("a failed generation must not consume quota")
	}
}

func TestGenerateSpellImageFailureIsNotFatal(t *testing.T) {
	model := &stubModel{completion: structuredReply, imageErr: domain.ErrNoImage}
	svc, db, node := setup(t, model)
	user := seedUser(t, db, node, authdomain.TierFree, 0)

	result, err := svc.GenerateSpell(context.Background(), user, domain.SpellRequest{
		Intention:     "clarity",
		GenerateImage: true,
	})
	if err != nil {
		t.Fatalf("GenerateSpell: %v", err)
	}
	if result.ImageBase64 != nil {
		t.Fatal("failed image must be omitted, not fabricated")
	}
}

func TestChatUsesArchetypeVoice(t *testing.T) {
	model := &stubModel{completion: "The birds have been speaking of you."}
	svc, _, _ := setup(t, model)

	result, err := svc.Chat(context.Background(), domain.ChatRequest{
		Message:   "What do the crows mean?",
		Archetype: "shiggy",
		SessionID: "session-1",
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.SessionID != "session-1" {
		t.Fatalf("session id = %q", result.SessionID)
	}
	if result.Response == "" {
		t.Fatal("expected a reply")
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	model := &stubModel{completion: "Welcome, seeker."}
	svc, _, _ := setup(t, model)

	result, err := svc.Chat(context.Background(), domain.ChatRequest{Message: "Hello"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.SessionID == "" {
		t.Fatal("a new session id must be minted")
	}
}
