package generation

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/generation/domain"
	"github.com/crowlands/grimoire/internal/generation/openai"
	"github.com/crowlands/grimoire/internal/generation/service"
)

var Module = fx.Module("generation",
	fx.Provide(
		domain.NewCatalog,
		fx.Annotate(openai.NewClient, fx.As(new(domain.ModelClient))),
		service.New,
	),
)
