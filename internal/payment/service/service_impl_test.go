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
	entitlementservice "github.com/crowlands/grimoire/internal/entitlement/service"
	"github.com/crowlands/grimoire/internal/payment/domain"
)

type stubProvider struct {
	status    *domain.CheckoutStatus
	statusErr error
	event     *domain.WebhookEvent
	eventErr  error
}

func (p *stubProvider) CreateSession(_ context.Context, req domain.CreateSessionRequest) (*domain.CheckoutSession, error) {
	return &domain.CheckoutSession{
		SessionID: "cs_test_1",
		URL:       "https://checkout.example.com/cs_test_1",
	}, nil
}

func (p *stubProvider) SessionStatus(_ context.Context, _ string) (*domain.CheckoutStatus, error) {
	return p.status, p.statusErr
}

func (p *stubProvider) ParseWebhook(_ []byte, _ string) (*domain.WebhookEvent, error) {
	return p.event, p.eventErr
}

func setup(t *testing.T, provider domain.CheckoutProvider) (domain.Service, *gorm.DB, *authdomain.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &domain.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	holder := config.StaticPolicyHolder(config.DefaultPolicy())
	entitlement := entitlementservice.New(db, zap.NewNop(), holder)

	user := &authdomain.User{
		ID:               node.Generate(),
		Email:            "seeker@example.com",
		Name:             "Seeker",
		PasswordHash:     "x",
		SubscriptionTier: authdomain.TierFree,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := New(db, zap.NewNop(), node, holder, provider, entitlement)
	return svc, db, user
}

func paidStatus() *domain.CheckoutStatus {
	return &domain.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: domain.PaymentStatusPaid,
		AmountTotal:   1900,
		Currency:      "usd",
		CustomerID:    "cus_123",
	}
}

func TestCreateCheckoutPersistsTransaction(t *testing.T) {
	svc, db, user := setup(t, &stubProvider{})

	result, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com/")
	if err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}
	if result.CheckoutURL == "" || result.SessionID != "cs_test_1" {
		t.Fatalf("unexpected result: %+v", result)
	}

	var trx domain.Transaction
	if err := db.Where("session_id = ?", "cs_test_1").First(&trx).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if trx.UserID != user.ID {
		t.Fatalf("transaction user = %v, want %v", trx.UserID, user.ID)
	}
	if trx.Processed {
		t.Fatal("new transaction must not be processed")
	}
	if trx.PaymentStatus != domain.PaymentStatusPending {
		t.Fatalf("payment status = %q, want pending", trx.PaymentStatus)
	}
}

func TestPollStatusUpgradesOnce(t *testing.T) {
	provider := &stubProvider{status: paidStatus()}
	svc, db, user := setup(t, provider)

	if _, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com"); err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	first, err := svc.PollStatus(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("first poll: %v", err)
	}
	if first.AlreadyProcessed {
		t.Fatal("first paid poll must apply the upgrade")
	}

	var upgraded authdomain.User
	if err := db.First(&upgraded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !upgraded.IsPaid() {
		t.Fatal("user should be paid after settlement")
	}
	if upgraded.SubscriptionEnd == nil {
		t.Fatal("subscription end should be stamped")
	}
	firstEnd := *upgraded.SubscriptionEnd

	second, err := svc.PollStatus(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("second poll: %v", err)
	}
	if !second.AlreadyProcessed {
		t.Fatal("second paid poll must report already_processed")
	}

	if err := db.First(&upgraded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !upgraded.SubscriptionEnd.Equal(firstEnd) {
		t.Fatal("replay must not move the subscription end date")
	}
}

func TestPollStatusUnknownSession(t *testing.T) {
	svc, _, _ := setup(t, &stubProvider{status: paidStatus()})

	_, err := svc.PollStatus(context.Background(), "cs_unknown")
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("err = %v, want ErrTransactionNotFound", err)
	}
}

func TestPollStatusPendingDoesNotSettle(t *testing.T) {
	provider := &stubProvider{status: &domain.CheckoutStatus{
		Status:        "open",
		PaymentStatus: "unpaid",
	}}
	svc, db, user := setup(t, provider)

	if _, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com"); err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	result, err := svc.PollStatus(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("PollStatus: %v", err)
	}
	if result.PaymentStatus != "unpaid" || result.AlreadyProcessed {
		t.Fatalf("unexpected result: %+v", result)
	}

	var trx domain.Transaction
	if err := db.Where("session_id = ?", "cs_test_1").First(&trx).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if trx.Processed {
		t.Fatal("unpaid session must not be marked processed")
	}
	if trx.Status != "open" || trx.PaymentStatus != "unpaid" {
		t.Fatalf("provider view not mirrored: status=%q payment_status=%q", trx.Status, trx.PaymentStatus)
	}
}

func TestFailedUpgradeReleasesTheClaim(t *testing.T) {
	provider := &stubProvider{status: paidStatus()}
	svc, db, user := setup(t, provider)

	if _, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com"); err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	// Make the upgrade fail after the claim: the user row is gone.
	if err := db.Delete(&authdomain.User{}, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.PollStatus(context.Background(), "cs_test_1"); err == nil {
		t.Fatal("PollStatus should fail when the upgrade cannot be applied")
	}

	// The claim must have rolled back with the failed upgrade, otherwise
	// the transaction is stuck settled with no paid tier behind it.
	var trx domain.Transaction
	if err := db.Where("session_id = ?", "cs_test_1").First(&trx).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if trx.Processed {
		t.Fatal("claim must roll back when the upgrade fails")
	}

	// Once the user row is back, the next delivery settles normally.
	user.SubscriptionTier = authdomain.TierFree
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("restore user: %v", err)
	}
	result, err := svc.PollStatus(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("PollStatus retry: %v", err)
	}
	if result.AlreadyProcessed {
		t.Fatal("retry after a rolled-back claim must settle, not short-circuit")
	}

	var reloaded authdomain.User
	if err := db.First(&reloaded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if reloaded.SubscriptionTier != authdomain.TierPaid {
		t.Fatalf("tier = %q, want paid", reloaded.SubscriptionTier)
	}
}

func TestWebhookSettlesAndReplaysAreIdempotent(t *testing.T) {
	provider := &stubProvider{
		status: paidStatus(),
		event:  &domain.WebhookEvent{Type: "checkout.session.completed", SessionID: "cs_test_1"},
	}
	svc, db, user := setup(t, provider)

	if _, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com"); err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	first, err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	if err != nil {
		t.Fatalf("first webhook: %v", err)
	}
	if first.Status != "processed" {
		t.Fatalf("first webhook status = %q, want processed", first.Status)
	}

	second, err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	if err != nil {
		t.Fatalf("second webhook: %v", err)
	}
	if second.Status != "already_processed" {
		t.Fatalf("second webhook status = %q, want already_processed", second.Status)
	}

	var upgraded authdomain.User
	if err := db.First(&upgraded, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !upgraded.IsPaid() {
		t.Fatal("user should be paid after webhook settlement")
	}
}

func TestWebhookInvalidSignature(t *testing.T) {
	provider := &stubProvider{eventErr: domain.ErrInvalidSignature}
	svc, db, user := setup(t, provider)

	if _, err := svc.CreateCheckout(context.Background(), user, "https://grimoire.example.com"); err != nil {
		t.Fatalf("CreateCheckout: %v", err)
	}

	_, err := svc.HandleWebhook(context.Background(), []byte("{}"), "bad-sig")
	if !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}

	var trx domain.Transaction
	if err := db.Where("session_id = ?", "cs_test_1").First(&trx).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if trx.Processed {
		t.Fatal("bad signature must not mutate state")
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	provider := &stubProvider{event: &domain.WebhookEvent{Type: "invoice.created"}}
	svc, _, _ := setup(t, provider)

	result, err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	if err != nil {
		t.Fatalf("HandleWebhook: %v", err)
	}
	if result.Status != "ignored" {
		t.Fatalf("status = %q, want ignored", result.Status)
	}
}
