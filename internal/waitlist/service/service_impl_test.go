package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crowlands/grimoire/internal/waitlist/domain"
)

func setup(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return New(db, zap.NewNop(), node), db
}

func TestJoin(t *testing.T) {
	svc, db := setup(t)

	result, err := svc.Join(context.Background(), domain.JoinRequest{
		Email: "Seeker@Example.com",
		Name:  "Seeker",
	})
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if !result.Success || result.AlreadyExists {
		t.Fatalf("result = %+v", result)
	}

	var entry domain.Entry
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.Email != "seeker@example.com" {
		t.Fatalf("email = %q, want normalized", entry.Email)
	}
	if entry.Source != "homepage" {
		t.Fatalf("source = %q, want default", entry.Source)
	}
}

func TestJoinTwice(t *testing.T) {
	svc, db := setup(t)

	if _, err := svc.Join(context.Background(), domain.JoinRequest{Email: "seeker@example.com"}); err != nil {
		t.Fatalf("first Join: %v", err)
	}

	result, err := svc.Join(context.Background(), domain.JoinRequest{Email: "seeker@example.com"})
	if err != nil {
		t.Fatalf("second Join: %v", err)
	}
	if !result.AlreadyExists {
		t.Fatal("second join must report already_exists")
	}

	var count int64
	db.Model(&domain.Entry{}).Count(&count)
	if count != 1 {
		t.Fatalf("entries = %d, want 1", count)
	}
}
