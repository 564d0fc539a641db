package domain

import (
	"context"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
)

// CreateSessionRequest is the provider-facing view of a new checkout.
type CreateSessionRequest struct {
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is a freshly created provider session.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider's current view of a session.
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerID    string
}

// WebhookEvent is a verified, parsed provider callback.
type WebhookEvent struct {
	Type      string
	SessionID string
}

// CheckoutProvider abstracts the external payment processor.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*CheckoutSession, error)
	SessionStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
	// ParseWebhook verifies the signature before parsing; a payload that
	// fails verification must never produce an event.
	ParseWebhook(payload []byte, sigHeader string) (*WebhookEvent, error)
}

// CheckoutResult is returned to the client starting a checkout.
type CheckoutResult struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}

// StatusResult is returned from a status poll.
type StatusResult struct {
	Status           string `json:"status"`
	PaymentStatus    string `json:"payment_status"`
	AmountTotal      int64  `json:"amount_total,omitempty"`
	Currency         string `json:"currency,omitempty"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
}

// WebhookResult acknowledges a processed webhook delivery.
type WebhookResult struct {
	Status    string `json:"status"`
	EventType string `json:"event_type"`
}

// Service reconciles checkout sessions against local transactions and
// applies the paid-tier upgrade at most once per transaction.
type Service interface {
	CreateCheckout(ctx context.Context, user *authdomain.User, originURL string) (*CheckoutResult, error)
	PollStatus(ctx context.Context, sessionID string) (*StatusResult, error)
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (*WebhookResult, error)
}
