// Package domain contains payment transaction types and the checkout
// provider contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Transaction lifecycle labels. A transaction is terminal once it is paid
// and processed; replays after that point are no-ops.
const (
	StatusInitiated = "initiated"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Transaction is the local record of one checkout attempt, keyed by the
// processor's session id.
type Transaction struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	SessionID string       `gorm:"type:text;not null;uniqueIndex" json:"session_id"`
	UserID    snowflake.ID `gorm:"not null;index" json:"user_id"`
	UserEmail string       `gorm:"type:text;not null" json:"user_email"`

	Amount   float64           `gorm:"not null" json:"amount"`
	Currency string            `gorm:"type:text;not null" json:"currency"`
	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`

	PaymentStatus string `gorm:"type:text;not null" json:"payment_status"`
	Status        string `gorm:"type:text;not null" json:"status"`

	// Processed flips false -> true exactly once; the paid-tier upgrade is
	// applied if and only if that transition happens.
	Processed   bool       `gorm:"not null;default:false" json:"processed"`
	ProcessedAt *time.Time `gorm:"" json:"processed_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "payment_transactions" }
