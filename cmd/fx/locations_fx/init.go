package locations_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"hiddengems/internal/config"
	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

var Module = fx.Provide(
	ProvideLocationService,
	services.NewIdeaService,
)

func ProvideLocationService(
	client utils.CompletionClientInterface,
	cfg *config.Config,
	log *zap.Logger,
) services.LocationServiceInterface {
	return services.NewLocationService(client, cfg.LLM.Temperature, cfg.LLM.Timeout, log)
}
