package middlewares

import (
	"cosmek-web/internal/app/config"
	"cosmek-web/internal/app/contracts"
	"cosmek-web/internal/app/delivery/http/views"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ThemeStore     contracts.ThemeStore
	Renderer       *views.Renderer
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, themeStore contracts.ThemeStore, renderer *views.Renderer) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		ThemeStore:     themeStore,
		Renderer:       renderer,
	}
}
