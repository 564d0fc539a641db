package auth

import (
	"github.com/crowlands/grimoire/internal/auth/repository"
	"github.com/crowlands/grimoire/internal/auth/service"
	"github.com/crowlands/grimoire/internal/auth/token"
	"github.com/crowlands/grimoire/internal/config"
	"go.uber.org/fx"
)

func newIssuer(cfg config.Config) *token.Issuer {
	return token.NewIssuer(cfg.AuthJWTSecret, cfg.TokenTTL)
}

var Module = fx.Module("auth.service",
	fx.Provide(newIssuer),
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
