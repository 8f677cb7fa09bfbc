package store

import (
	"context"

	"github.com/tkoyuncu/itemkeeper/models"
)

// UserRepository is the data-access contract for user accounts.
// It is pure persistence: no authorization or business policy lives here.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemRepository is the data-access contract for user-owned items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, limit, offset uint64) ([]models.Item, error)
	ListItemsWithOwners(ctx context.Context, limit, offset uint64) ([]models.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Item, error)
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
