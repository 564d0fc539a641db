// Package service implements waitlist signups.
package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/crowlands/grimoire/internal/waitlist/domain"
	"github.com/crowlands/grimoire/pkg/db"
)

const defaultSource = "homepage"

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	node *snowflake.Node
}

func New(database *gorm.DB, log *zap.Logger, node *snowflake.Node) domain.Service {
	return &Service{
		db:   database,
		log:  log.Named("waitlist.service"),
		node: node,
	}
}

// Join registers an email for early access. Joining with an email that is
// already on the list succeeds and says so; the unique index arbitrates
// concurrent signups.
func (s *Service) Join(ctx context.Context, req domain.JoinRequest) (*domain.JoinResult, error) {
	source := req.Source
	if source == "" {
		source = defaultSource
	}

	entry := domain.Entry{
		ID:     s.node.Generate(),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Name:   req.Name,
		Source: source,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if db.IsDuplicateKeyErr(err) {
			return &domain.JoinResult{
				Success:       true,
				Message:       "Email already registered",
				AlreadyExists: true,
			}, nil
		}
		return nil, err
	}

	s.log.Info("waitlist signup", zap.String("source", source))
	return &domain.JoinResult{
		Success: true,
		Message: "Successfully joined the waitlist!",
	}, nil
}
