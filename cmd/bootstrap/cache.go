package bootstrap

import (
	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/clock"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		func(clk clock.Clock) *cache.Cache {
			return cache.New(clk)
		},
	),
)
