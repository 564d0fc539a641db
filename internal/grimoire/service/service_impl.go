// Package service implements saved-spell storage behind the paid feature gate.
package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	"github.com/crowlands/grimoire/internal/grimoire/domain"
)

const listLimit = 100

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	node        *snowflake.Node
	entitlement entitlementdomain.Service
}

func New(db *gorm.DB, log *zap.Logger, node *snowflake.Node, entitlement entitlementdomain.Service) domain.Service {
	return &Service{
		db:          db,
		log:         log.Named("grimoire.service"),
		node:        node,
		entitlement: entitlement,
	}
}

func (s *Service) Save(ctx context.Context, user *authdomain.User, req domain.SaveRequest) (*domain.SavedSpell, error) {
	if err := s.entitlement.RequireFeature(user, entitlementdomain.FeatureSaveSpell); err != nil {
		return nil, err
	}

	title := "Untitled Spell"
	if t, ok := req.SpellData["title"].(string); ok && t != "" {
		title = t
	}

	spell := &domain.SavedSpell{
		ID:             s.node.Generate(),
		UserID:         user.ID,
		SpellData:      datatypes.JSONMap(req.SpellData),
		Title:          title,
		ArchetypeID:    req.ArchetypeID,
		ArchetypeName:  req.ArchetypeName,
		ArchetypeTitle: req.ArchetypeTitle,
		ImageBase64:    req.ImageBase64,
	}
	if err := s.db.WithContext(ctx).Create(spell).Error; err != nil {
		return nil, err
	}

	if err := s.entitlement.RecordSave(ctx, user.ID); err != nil {
		return nil, err
	}

	s.log.Info("spell saved",
		zap.String("user_id", user.ID.String()),
		zap.String("title", title),
	)
	return spell, nil
}

func (s *Service) List(ctx context.Context, userID snowflake.ID) ([]*domain.SavedSpell, error) {
	var spells []*domain.SavedSpell
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&spells).Error
	if err != nil {
		return nil, err
	}
	return spells, nil
}

func (s *Service) Delete(ctx context.Context, userID, spellID snowflake.ID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", spellID, userID).
		Delete(&domain.SavedSpell{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSpellNotFound
	}
	return nil
}
