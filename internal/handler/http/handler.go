package http

import (
	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter throttles inbound requests per client. Nil when rate
	// limiting is disabled in the configuration.
	limiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	var limiter *rateLimiter
	if cfg.RateLimit > 0 {
		limiter = newRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		logger:   logger,
	}
}
