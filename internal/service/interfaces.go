package service

import (
	"context"

	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/models"
)

type AuthService interface {
	Register(ctx context.Context, create models.UserCreate) (models.User, error)
	Login(ctx context.Context, username, password string) (models.Token, error)
	EnsureAdmin(ctx context.Context, cfg config.Admin) error
}

// Guard resolves bearer tokens to principals and enforces the access rules
// for every protected operation.
type Guard interface {
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
	Authorize(ctx context.Context, principal models.User, op Operation, targetID int64) error
}

type UsersService interface {
	ListUsers(ctx context.Context, principal models.User, limit, offset uint64) ([]models.User, error)
	GetUser(ctx context.Context, principal models.User, id int64) (models.User, error)
	CreateUser(ctx context.Context, principal models.User, create models.UserCreate) (models.User, error)
	UpdateUser(ctx context.Context, principal models.User, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, principal models.User, id int64) error
}

type ItemsService interface {
	ListItems(ctx context.Context, principal models.User, limit, offset uint64, includeOwner bool) ([]models.Item, error)
	ListMyItems(ctx context.Context, principal models.User, limit, offset uint64) ([]models.Item, error)
	GetItem(ctx context.Context, principal models.User, id int64) (models.Item, error)
	CreateItem(ctx context.Context, principal models.User, create models.ItemCreate) (models.Item, error)
	UpdateItem(ctx context.Context, principal models.User, id int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, principal models.User, id int64) error
}
