package controllers_fx

import (
	"go.uber.org/fx"

	"hiddengems/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewIdeaController))
