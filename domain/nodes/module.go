package nodes

import "go.uber.org/fx"

// Module wires the node domain.
var Module = fx.Module("nodes",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
