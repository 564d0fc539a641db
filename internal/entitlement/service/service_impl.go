package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/config"
	"github.com/crowlands/grimoire/internal/entitlement/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	policy *config.PolicyHolder
}

func New(db *gorm.DB, log *zap.Logger, policy *config.PolicyHolder) domain.Service {
	return &Service{
		db:     db,
		log:    log.Named("entitlement.service"),
		policy: policy,
	}
}

// WithTx returns a copy of the service bound to tx. Policy and logging are
// shared; only the database handle changes.
func (s *Service) WithTx(tx *gorm.DB) domain.Service {
	scoped := *s
	scoped.db = tx
	return &scoped
}

func (s *Service) CheckGenerationAllowed(user *authdomain.User) domain.Decision {
	if user.IsPaid() {
		return domain.Decision{
			Allowed:   true,
			Remaining: domain.UnlimitedSentinel,
			Limit:     domain.UnlimitedSentinel,
		}
	}

	limit := s.policy.Get().FreeSpellLimit
	count := user.SpellGenerationCount
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return domain.Decision{
		Allowed:      count < limit,
		Remaining:    remaining,
		Limit:        limit,
		CurrentCount: count,
	}
}

func (s *Service) RecordGeneration(ctx context.Context, user *authdomain.User) error {
	if user.IsPaid() {
		return nil
	}

	// Single UPDATE with SQL expressions so concurrent generations cannot
	// lose increments to a read-modify-write race.
	tx := s.db.WithContext(ctx).Model(&authdomain.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"spell_generation_count": gorm.Expr("spell_generation_count + 1"),
			"total_spells_generated": gorm.Expr("total_spells_generated + 1"),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return authdomain.ErrUserNotFound
	}
	return nil
}

func (s *Service) RecordSave(ctx context.Context, userID snowflake.ID) error {
	return s.db.WithContext(ctx).Model(&authdomain.User{}).
		Where("id = ?", userID).
		Update("total_spells_saved", gorm.Expr("total_spells_saved + 1")).Error
}

func (s *Service) CheckFeatureGate(user *authdomain.User, feature domain.Feature) bool {
	_ = feature // every gated feature is paid-only in the current policy
	return user.SubscriptionTier == authdomain.TierPaid
}

func (s *Service) RequireFeature(user *authdomain.User, feature domain.Feature) error {
	if s.CheckFeatureGate(user, feature) {
		return nil
	}
	return &domain.FeatureLockedError{Feature: feature}
}

func (s *Service) UpgradeToPaid(ctx context.Context, userID snowflake.ID, ref domain.UpgradeRef) error {
	now := time.Now().UTC()
	end := now.Add(s.policy.Get().PaidDuration())

	var user authdomain.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	// Never regress an already-granted period.
	if user.SubscriptionEnd != nil && user.SubscriptionEnd.After(end) {
		end = *user.SubscriptionEnd
	}

	fields := map[string]any{
		"subscription_tier":   authdomain.TierPaid,
		"subscription_status": authdomain.SubscriptionActive,
		"subscription_start":  now,
		"subscription_end":    end,
		"upgraded_at":         now,
	}
	if ref.StripeCustomerID != nil {
		fields["stripe_customer_id"] = *ref.StripeCustomerID
	}
	if ref.StripeSubscriptionID != nil {
		fields["stripe_subscription_id"] = *ref.StripeSubscriptionID
	}

	if err := s.db.WithContext(ctx).Model(&authdomain.User{}).
		Where("id = ?", userID).
		Updates(fields).Error; err != nil {
		return err
	}

	s.log.Info("user upgraded to paid tier",
		zap.String("user_id", userID.String()),
		zap.Time("subscription_end", end),
	)
	return nil
}
