package service

import (
	"github.com/tkoyuncu/itemkeeper/internal/auth"
	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	Guard        Guard
	UsersService UsersService
	ItemsService ItemsService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	tokenCodec := auth.NewTokenCodec(cfg.Auth)
	guard := NewGuard(storages.UserRepository, tokenCodec, logger)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, tokenCodec, cfg.Auth, logger),
		Guard:        guard,
		UsersService: NewUsersService(storages.UserRepository, guard, cfg.Auth, logger),
		ItemsService: NewItemsService(storages.ItemRepository, guard, logger),
	}
}
