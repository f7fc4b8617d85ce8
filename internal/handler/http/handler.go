package http

import (
	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/service"
)

type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
