package edges

import "go.uber.org/fx"

// Module wires the edge domain.
var Module = fx.Module("edges",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
