package grimoire

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/grimoire/service"
)

var Module = fx.Module("grimoire",
	fx.Provide(service.New),
)
