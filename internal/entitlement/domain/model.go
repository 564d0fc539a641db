// Package domain defines tier, quota and feature-gate decisions.
package domain

// UnlimitedSentinel marks "no limit" in quota responses for paid users.
const UnlimitedSentinel = -1

// Feature identifies a paid-only capability.
type Feature string

const (
	FeatureSaveSpell     Feature = "save_spell"
	FeaturePremiumSpread Feature = "premium_spread"
	FeaturePDFDownload   Feature = "pdf_download"
)

// Decision is the outcome of a generation-quota check. It is a pure
// function of the user's current state.
type Decision struct {
	Allowed      bool
	Remaining    int
	Limit        int
	CurrentCount int
}

// Unlimited reports whether the decision carries the paid-tier sentinel.
func (d Decision) Unlimited() bool { return d.Limit == UnlimitedSentinel }
