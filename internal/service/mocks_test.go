package service

import (
	"context"
	"errors"

	"github.com/tkoyuncu/itemkeeper/internal/store"
	"github.com/tkoyuncu/itemkeeper/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	listFn           func(ctx context.Context, limit, offset uint64) ([]models.User, error)
	updateFn         func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	createFn         func(ctx context.Context, item models.Item) (models.Item, error)
	findByIDFn       func(ctx context.Context, id int64) (models.Item, error)
	listFn           func(ctx context.Context, limit, offset uint64) ([]models.Item, error)
	listWithOwnersFn func(ctx context.Context, limit, offset uint64) ([]models.Item, error)
	listByOwnerFn    func(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Item, error)
	updateFn         func(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Item{}, store.ErrItemNotFound
}

func (m *mockItemRepository) ListItems(ctx context.Context, limit, offset uint64) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockItemRepository) ListItemsWithOwners(ctx context.Context, limit, offset uint64) ([]models.Item, error) {
	if m.listWithOwnersFn != nil {
		return m.listWithOwnersFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockItemRepository) ListItemsByOwner(ctx context.Context, ownerID int64, limit, offset uint64) ([]models.Item, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, limit, offset)
	}
	return nil, nil
}

func (m *mockItemRepository) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return models.Item{}, store.ErrItemNotFound
}

func (m *mockItemRepository) DeleteItem(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: Guard
// ─────────────────────────────────────────────

type mockGuard struct {
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
	authorizeFn    func(ctx context.Context, principal models.User, op Operation, targetID int64) error
}

func (m *mockGuard) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, tokenString)
	}
	return models.User{}, nil
}

func (m *mockGuard) Authorize(ctx context.Context, principal models.User, op Operation, targetID int64) error {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, principal, op, targetID)
	}
	return nil
}
