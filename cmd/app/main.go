package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"hiddengems/cmd/fx/config_fx"
	"hiddengems/cmd/fx/controllers_fx"
	"hiddengems/cmd/fx/llm_fx"
	"hiddengems/cmd/fx/locations_fx"
	"hiddengems/cmd/fx/memcache_fx"
	"hiddengems/cmd/fx/session_fx"
	"hiddengems/internal/api/controllers"
	"hiddengems/internal/config"
	"hiddengems/pkg/middleware"
	"hiddengems/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		llm_fx.Module,
		memcache_fx.Module,
		locations_fx.Module,
		session_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	tokens *utils.SessionTokens,
	locationController *controllers.LocationController,
	sessionController *controllers.SessionController,
	ideaController *controllers.IdeaController) *gin.Engine {

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.PrometheusMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, tokens, locationController, sessionController, ideaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.SessionTokens,
	locationController *controllers.LocationController,
	sessionController *controllers.SessionController,
	ideaController *controllers.IdeaController) {

	r.GET("/health", controllers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/generate-locations", locationController.GenerateLocationsHandler)
	api.GET("/ideas/random", ideaController.RandomIdeaHandler)
	api.POST("/sessions", sessionController.StartSessionHandler)

	sessionGroup := api.Group("/sessions", middleware.SessionAuthMiddleware(tokens))
	sessionGroup.POST("/search", sessionController.SearchHandler)
	sessionGroup.GET("/history", sessionController.HistoryHandler)
	sessionGroup.GET("/profile", sessionController.ProfileHandler)
	sessionGroup.GET("/countries", sessionController.CountriesHandler)
}
