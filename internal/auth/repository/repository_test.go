package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/crowlands/grimoire/internal/auth/domain"
)

func setupRepo(t *testing.T) (domain.Repository, *snowflake.Node) {
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
	return New(db), node
}

// Two inserts with the same email model a registration race that slips past
// the service's pre-check; the unique index must surface as ErrEmailTaken,
// not a raw driver error.
func TestCreateDuplicateEmailMapsToEmailTaken(t *testing.T) {
	repo, node := setupRepo(t)
	ctx := context.Background()

	first := &domain.User{
		ID:           node.Generate(),
		Email:        "seeker@example.com",
		Name:         "Seeker",
		PasswordHash: "x",
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := &domain.User{
		ID:           node.Generate(),
		Email:        "seeker@example.com",
		Name:         "Imposter",
		PasswordHash: "x",
	}
	if err := repo.Create(ctx, second); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
