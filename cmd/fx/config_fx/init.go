package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"hiddengems/internal/config"
	"hiddengems/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(ProvideLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.Config) *zap.Logger {
	log := logger.New(cfg.Env)
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
	return log
}
