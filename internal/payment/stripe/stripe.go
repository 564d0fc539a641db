// Package stripe adapts the Stripe checkout API to the payment domain.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crowlands/grimoire/internal/payment/domain"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

type Provider struct {
	api           *client.API
	webhookSecret string
}

func NewProvider(apiKey, webhookSecret string) *Provider {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &Provider{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

func (p *Provider) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	return &domain.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

func (p *Provider) SessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	status := &domain.CheckoutStatus{
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}
	if sess.Customer != nil {
		status.CustomerID = sess.Customer.ID
	}
	return status, nil
}

func (p *Provider) ParseWebhook(payload []byte, sigHeader string) (*domain.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	parsed := &domain.WebhookEvent{Type: string(event.Type)}
	if event.Type == "checkout.session.completed" {
		var sess struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
		}
		parsed.SessionID = sess.ID
	}
	return parsed, nil
}
