package http

import (
	"github.com/secretwall/secretwall/internal/config"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/service"
	"github.com/secretwall/secretwall/internal/view"
)

type Handler struct {
	services *service.Services
	renderer *view.Renderer

	// session carries the cookie attributes (Secure flag) for the cookies
	// this handler issues.
	session config.Session

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *view.Renderer, session config.Session, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		renderer: renderer,
		session:  session,
		logger:   logger,
	}
}
