package service

import (
	"github.com/secretwall/secretwall/internal/config"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
)

type Services struct {
	AuthService      AuthService
	FederatedService FederatedService
	SessionService   SessionService
	SecretService    SecretService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, logger),
		FederatedService: NewFederatedService(storages.UserRepository, cfg.OAuth, cfg.Session, logger),
		SessionService:   NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.Session, logger),
		SecretService:    NewSecretService(storages.UserRepository, logger),
	}
}
