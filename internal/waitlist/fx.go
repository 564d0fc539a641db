package waitlist

import (
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/waitlist/service"
)

var Module = fx.Module("waitlist",
	fx.Provide(service.New),
)
