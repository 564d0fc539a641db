// Package service reconciles checkout sessions against local payment
// transactions and applies the paid-tier upgrade exactly once per session.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authdomain "github.com/crowlands/grimoire/internal/auth/domain"
	"github.com/crowlands/grimoire/internal/config"
	entitlementdomain "github.com/crowlands/grimoire/internal/entitlement/domain"
	"github.com/crowlands/grimoire/internal/payment/domain"
	"gorm.io/datatypes"
)

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	node        *snowflake.Node
	policy      *config.PolicyHolder
	provider    domain.CheckoutProvider
	entitlement entitlementdomain.Service
}

func New(
	db *gorm.DB,
	log *zap.Logger,
	node *snowflake.Node,
	policy *config.PolicyHolder,
	provider domain.CheckoutProvider,
	entitlement entitlementdomain.Service,
) domain.Service {
	return &Service{
		db:          db,
		log:         log.Named("payment.service"),
		node:        node,
		policy:      policy,
		provider:    provider,
		entitlement: entitlement,
	}
}

// CreateCheckout opens a provider checkout session for the yearly plan and
// records it locally before handing the redirect URL back.
func (s *Service) CreateCheckout(ctx context.Context, user *authdomain.User, originURL string) (*domain.CheckoutResult, error) {
	policy := s.policy.Get()
	origin := strings.TrimRight(originURL, "/")

	sess, err := s.provider.CreateSession(ctx, domain.CreateSessionRequest{
		AmountCents: int64(policy.PlanAmount * 100),
		Currency:    policy.PlanCurrency,
		ProductName: fmt.Sprintf("Grimoire %s plan (yearly)", policy.PlanName),
		SuccessURL:  origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/upgrade",
		Metadata: map[string]string{
			"user_id": user.ID.String(),
			"plan":    policy.PlanName,
		},
	})
	if err != nil {
		return nil, err
	}

	trx := domain.Transaction{
		ID:            s.node.Generate(),
		SessionID:     sess.SessionID,
		UserID:        user.ID,
		UserEmail:     user.Email,
		Amount:        policy.PlanAmount,
		Currency:      policy.PlanCurrency,
		Metadata:      datatypes.JSONMap{"plan": policy.PlanName},
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.StatusInitiated,
	}
	if err := s.db.WithContext(ctx).Create(&trx).Error; err != nil {
		return nil, err
	}

	s.log.Info("checkout session created",
		zap.String("session_id", sess.SessionID),
		zap.String("user_id", user.ID.String()),
	)

	return &domain.CheckoutResult{
		CheckoutURL: sess.URL,
		SessionID:   sess.SessionID,
	}, nil
}

// PollStatus fetches the provider's view of a session, mirrors it onto the
// local transaction, and settles the upgrade if the session is paid.
func (s *Service) PollStatus(ctx context.Context, sessionID string) (*domain.StatusResult, error) {
	status, err := s.provider.SessionStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var trx domain.Transaction
	if err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&trx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	// Mirror the provider's view onto the local record. This write is
	// idempotent; the processed flag is the only field that needs a guard.
	if err := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{
			"status":         status.Status,
			"payment_status": status.PaymentStatus,
			"updated_at":     time.Now(),
		}).Error; err != nil {
		return nil, err
	}

	result := &domain.StatusResult{
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
	}

	if status.PaymentStatus != domain.PaymentStatusPaid {
		return result, nil
	}

	applied, err := s.settle(ctx, &trx, status.CustomerID)
	if err != nil {
		return nil, err
	}
	result.AlreadyProcessed = !applied
	return result, nil
}

// HandleWebhook verifies and parses a provider callback. Only completed
// checkout sessions change state; other event types are acknowledged and
// ignored.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) (*domain.WebhookResult, error) {
	event, err := s.provider.ParseWebhook(payload, sigHeader)
	if err != nil {
		return nil, err
	}

	result := &domain.WebhookResult{Status: "ignored", EventType: event.Type}
	if event.Type != "checkout.session.completed" || event.SessionID == "" {
		return result, nil
	}

	var trx domain.Transaction
	if err := s.db.WithContext(ctx).Where("session_id = ?", event.SessionID).First(&trx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A session we never initiated. Acknowledge so the provider
			// stops retrying.
			s.log.Warn("webhook for unknown session", zap.String("session_id", event.SessionID))
			return result, nil
		}
		return nil, err
	}

	applied, err := s.settle(ctx, &trx, "")
	if err != nil {
		return nil, err
	}
	if applied {
		result.Status = "processed"
	} else {
		result.Status = "already_processed"
	}
	return result, nil
}

// settle claims the transaction's processed flag and, if this caller won the
// claim, applies the paid-tier upgrade. The conditional update makes the
// poll and webhook paths race safely: exactly one of them flips the flag.
// Claim and upgrade run in one database transaction, so a failed upgrade
// rolls the flag back and the next delivery retries instead of finding a
// claimed transaction with no upgrade behind it.
func (s *Service) settle(ctx context.Context, trx *domain.Transaction, customerID string) (applied bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&domain.Transaction{}).
			Where("session_id = ? AND processed = ?", trx.SessionID, false).
			Updates(map[string]any{
				"payment_status": domain.PaymentStatusPaid,
				"processed":      true,
				"processed_at":   now,
				"updated_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		ref := entitlementdomain.UpgradeRef{}
		if customerID != "" {
			ref.StripeCustomerID = &customerID
		}
		sessionID := trx.SessionID
		ref.StripeSubscriptionID = &sessionID

		if err := s.entitlement.WithTx(tx).UpgradeToPaid(ctx, trx.UserID, ref); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		s.log.Info("payment settled",
			zap.String("session_id", trx.SessionID),
			zap.String("user_id", trx.UserID.String()),
		)
	}
	return applied, nil
}
