package clock

import "go.uber.org/fx"

var Module = fx.Module("clock.system",
	fx.Provide(NewSystemClock),
)
