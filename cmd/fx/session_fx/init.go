package session_fx

import (
	"go.uber.org/fx"

	"hiddengems/internal/config"
	"hiddengems/internal/services"
	"hiddengems/pkg/utils"
)

var Module = fx.Provide(
	ProvideSessionTokens,
	services.NewSessionService,
)

func ProvideSessionTokens(cfg *config.Config) (*utils.SessionTokens, error) {
	return utils.NewSessionTokens(cfg.Session.Secret, cfg.Session.TTL)
}
