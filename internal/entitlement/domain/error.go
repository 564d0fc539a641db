package domain

import "fmt"

// QuotaExceededError is returned when a free-tier user has spent their
// generation allowance. It carries the numbers the client renders.
type QuotaExceededError struct {
	Limit        int
	CurrentCount int
}

func (e *QuotaExceededError) Error() string {
	return "spell_limit_reached"
}

// Message is the human-readable upsell line for the structured 403 body.
func (e *QuotaExceededError) Message() string {
	return fmt.Sprintf("You've reached your limit of %d free spells. Upgrade to Pro for unlimited spell generation!", e.Limit)
}

// FeatureLockedError is returned when a free-tier user touches a paid-only
// capability.
type FeatureLockedError struct {
	Feature Feature
}

func (e *FeatureLockedError) Error() string {
	return "feature_locked"
}

func (e *FeatureLockedError) Message() string {
	switch e.Feature {
	case FeatureSaveSpell:
		return "Upgrade to Pro to save spells to your grimoire! Only $19/year for unlimited saves."
	case FeaturePremiumSpread:
		return "Multi-card oracle spreads are a Pro feature. Upgrade to unlock the full deck."
	case FeaturePDFDownload:
		return "PDF downloads are a Pro feature. Upgrade to keep your spells offline."
	default:
		return "This feature requires a Pro subscription."
	}
}
