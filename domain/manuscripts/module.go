package manuscripts

import "go.uber.org/fx"

// Module wires the manuscript domain.
var Module = fx.Module("manuscripts",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
