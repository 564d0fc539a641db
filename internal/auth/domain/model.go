// Package domain contains core types for user accounts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Tier is a user's entitlement class.
type Tier string

const (
	TierFree Tier = "free"
	TierPaid Tier = "paid"
)

// SubscriptionStatus tracks the lifecycle of a user's subscription.
const (
	SubscriptionActive = "active"
)

// Favorite is a bookmarked reference item on a user's account.
type Favorite struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// User represents an account with its entitlement state and usage counters.
type User struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Email        string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name         string       `gorm:"type:text;not null" json:"name"`
	PasswordHash string       `gorm:"type:text;not null" json:"-"`

	Favorites datatypes.JSONSlice[Favorite] `gorm:"type:jsonb" json:"-"`

	SubscriptionTier     Tier       `gorm:"type:text;not null;default:'free'" json:"subscription_tier"`
	SubscriptionStatus   string     `gorm:"type:text;not null;default:'active'" json:"subscription_status"`
	SubscriptionStart    *time.Time `gorm:"" json:"-"`
	SubscriptionEnd      *time.Time `gorm:"" json:"-"`
	StripeCustomerID     *string    `gorm:"type:text" json:"-"`
	StripeSubscriptionID *string    `gorm:"type:text" json:"-"`

	SpellGenerationCount int       `gorm:"not null;default:0" json:"spell_generation_count"`
	SpellGenerationReset time.Time `gorm:"not null" json:"-"`
	TotalSpellsGenerated int       `gorm:"not null;default:0" json:"-"`
	TotalSpellsSaved     int       `gorm:"not null;default:0" json:"-"`

	LastLoginAt *time.Time `gorm:"" json:"-"`
	UpgradedAt  *time.Time `gorm:"" json:"-"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// IsPaid reports whether the user currently holds an active paid subscription.
func (u *User) IsPaid() bool {
	return u.SubscriptionTier == TierPaid && u.SubscriptionStatus == SubscriptionActive
}
