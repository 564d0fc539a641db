package oracle

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/oracle/service"
)

var Module = fx.Module("oracle",
	fx.Provide(service.New),
)
