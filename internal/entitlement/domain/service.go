package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

// UpgradeRef carries the payment-processor references stamped on upgrade.
type UpgradeRef struct {
	StripeCustomerID     *string
	StripeSubscriptionID *string
}

// Service is the entitlement engine: tier and quota decisions plus the
// counter mutations that back them.
type Service interface {
	// CheckGenerationAllowed is side-effect free.
	CheckGenerationAllowed(user *authdomain.User) Decision

	// RecordGeneration charges one generation against the user's quota.
	// Call it only after a generation has completed; it is a no-op for
	// paid users, whose counter is not meaningful.
	RecordGeneration(ctx context.Context, user *authdomain.User) error

	// RecordSave bumps the saved-spell counter.
	RecordSave(ctx context.Context, userID snowflake.ID) error

	// CheckFeatureGate reports whether the user's tier unlocks the feature.
	CheckFeatureGate(user *authdomain.User, feature Feature) bool

	// RequireFeature returns a FeatureLockedError when the gate is closed.
	RequireFeature(user *authdomain.User, feature Feature) error

	// UpgradeToPaid grants the paid tier for the policy duration. Re-applying
	// never shortens an already-granted period.
	UpgradeToPaid(ctx context.Context, userID snowflake.ID, ref UpgradeRef) error

	// WithTx returns a view of the service whose writes run on tx, so a
	// caller can make an upgrade atomic with its own state transition.
	WithTx(tx *gorm.DB) Service
}
