package config

import "go.uber.org/fx"

// Module provides application config and the entitlement policy holder.
var Module = fx.Module("config",
	fx.Provide(
		Load,
		NewPolicyHolder,
	),
)
