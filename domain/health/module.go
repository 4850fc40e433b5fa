package health

import "go.uber.org/fx"

// Module wires the operational endpoints.
var Module = fx.Module("health",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
