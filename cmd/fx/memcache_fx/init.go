package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"hiddengems/internal/config"
	mem "hiddengems/pkg/memcache"
	"hiddengems/pkg/metrics"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore also runs the janitor that drops expired sessions.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) mem.SessionStore {
	store := mem.NewSessions(cfg.Session.TTL)
	log = log.Named("sessions")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Session.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if removed := store.Sweep(); removed > 0 {
							log.Debug("expired sessions swept", zap.Int("removed", removed))
						}
						metrics.ActiveSessions.Set(float64(store.Len()))
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
	return store
}
