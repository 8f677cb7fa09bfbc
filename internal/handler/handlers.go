package handler

import (
	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/internal/handler/http"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
