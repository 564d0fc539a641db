package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/auth/repository"
	"github.com/crowlands/grimoire/internal/auth/token"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	issuer := token.NewIssuer("test-secret", time.Hour)
	return New(zap.NewNop(), repository.New(db), issuer, node)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "seeker@crowlands.test",
		Password: "hidden-knowledge",
		Name:     "Seeker",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token on registration")
	}
	if result.User.SubscriptionTier != domain.TierFree {
		t.Fatalf("new users start free, got %q", result.User.SubscriptionTier)
	}
	if result.User.SpellGenerationCount != 0 {
		t.Fatalf("new users start with zero generations, got %d", result.User.SpellGenerationCount)
	}

	login, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "seeker@crowlands.test",
		Password: "hidden-knowledge",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Fatal("login returned a different account")
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "seeker@crowlands.test",
		Password: "wrong-password",
	}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "not-an-email",
		Password: "long-enough-password",
		Name:     "Seeker",
	}); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	if _, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "seeker@example.com",
		Password: "short",
		Name:     "Seeker",
	}); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Email:    "dup@crowlands.test",
		Password: "hidden-knowledge",
		Name:     "First",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("register: %v", err)
	}

	req.Name = "Second"
	if _, err := svc.Register(ctx, req); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "auth@crowlands.test",
		Password: "hidden-knowledge",
		Name:     "Auth",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != result.User.ID {
		t.Fatal("authenticated as a different account")
	}

	if _, err := svc.Authenticate(ctx, "garbage"); !errors.Is(err, token.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUpdateEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, domain.RegisterRequest{
		Email:    "old@crowlands.test",
		Password: "hidden-knowledge",
		Name:     "Mover",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.UpdateEmail(ctx, result.User.ID, "new@crowlands.test", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected password recheck failure, got %v", err)
	}

	updated, err := svc.UpdateEmail(ctx, result.User.ID, "new@crowlands.test", "hidden-knowledge")
	if err != nil {
		t.Fatalf("update email: %v", err)
	}
	if updated.Email != "new@crowlands.test" {
		t.Fatalf("email not updated: %q", updated.Email)
	}
}
