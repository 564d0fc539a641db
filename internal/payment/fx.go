package payment

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/config"
	"github.com/crowlands/grimoire/internal/payment/domain"
	"github.com/crowlands/grimoire/internal/payment/service"
	"github.com/crowlands/grimoire/internal/payment/stripe"
)

func newProvider(cfg config.Config) domain.CheckoutProvider {
	return stripe.NewProvider(cfg.StripeAPIKey, cfg.StripeWebhookSecret)
}

var Module = fx.Module("payment",
	fx.Provide(
		newProvider,
		service.New,
	),
)
