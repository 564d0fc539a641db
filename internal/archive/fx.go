package archive

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/archive/domain"
	"github.com/crowlands/grimoire/internal/archive/service"
	generationdomain "github.com/crowlands/grimoire/internal/generation/domain"
	"github.com/crowlands/grimoire/pkg/repository"
)

var Module = fx.Module("archive",
	fx.Provide(
		repository.ProvideStore[domain.Deity],
		repository.ProvideStore[domain.HistoricalFigure],
		repository.ProvideStore[domain.SacredSite],
		repository.ProvideStore[domain.Ritual],
		repository.ProvideStore[domain.TimelineEvent],
		repository.ProvideStore[domain.SampleSpell],
		service.New,
		func(svc domain.Service) generationdomain.ArchiveContext { return svc },
	),
	fx.Invoke(Seed),
)
