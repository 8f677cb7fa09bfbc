package http

import (
	"context"

	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/service"
	"github.com/tkoyuncu/itemkeeper/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, create models.UserCreate) (models.User, error)
	loginFn       func(ctx context.Context, username, password string) (models.Token, error)
	ensureAdminFn func(ctx context.Context, cfg config.Admin) error
}

func (m *mockAuthService) Register(ctx context.Context, create models.UserCreate) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, create)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) EnsureAdmin(ctx context.Context, cfg config.Admin) error {
	if m.ensureAdminFn != nil {
		return m.ensureAdminFn(ctx, cfg)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.Guard
// ─────────────────────────────────────────────

type mockGuard struct {
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
	authorizeFn    func(ctx context.Context, principal models.User, op service.Operation, targetID int64) error
}

func (m *mockGuard) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, tokenString)
	}
	return models.User{}, nil
}

func (m *mockGuard) Authorize(ctx context.Context, principal models.User, op service.Operation, targetID int64) error {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, principal, op, targetID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.UsersService
// ─────────────────────────────────────────────

type mockUsersService struct {
	listFn   func(ctx context.Context, principal models.User, limit, offset uint64) ([]models.User, error)
	getFn    func(ctx context.Context, principal models.User, id int64) (models.User, error)
	createFn func(ctx context.Context, principal models.User, create models.UserCreate) (models.User, error)
	updateFn func(ctx context.Context, principal models.User, id int64, update models.UserUpdate) (models.User, error)
	deleteFn func(ctx context.Context, principal models.User, id int64) error
}

func (m *mockUsersService) ListUsers(ctx context.Context, principal models.User, limit, offset uint64) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, principal, limit, offset)
	}
	return nil, nil
}

func (m *mockUsersService) GetUser(ctx context.Context, principal models.User, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, principal, id)
	}
	return models.User{}, nil
}

func (m *mockUsersService) CreateUser(ctx context.Context, principal models.User, create models.UserCreate) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, principal, create)
	}
	return models.User{}, nil
}

func (m *mockUsersService) UpdateUser(ctx context.Context, principal models.User, id int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, principal, id, update)
	}
	return models.User{}, nil
}

func (m *mockUsersService) DeleteUser(ctx context.Context, principal models.User, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, principal, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ItemsService
// ─────────────────────────────────────────────

type mockItemsService struct {
	listFn     func(ctx context.Context, principal models.User, limit, offset uint64, includeOwner bool) ([]models.Item, error)
	listMineFn func(ctx context.Context, principal models.User, limit, offset uint64) ([]models.Item, error)
	getFn      func(ctx context.Context, principal models.User, id int64) (models.Item, error)
	createFn   func(ctx context.Context, principal models.User, create models.ItemCreate) (models.Item, error)
	updateFn   func(ctx context.Context, principal models.User, id int64, update models.ItemUpdate) (models.Item, error)
	deleteFn   func(ctx context.Context, principal models.User, id int64) error
}

func (m *mockItemsService) ListItems(ctx context.Context, principal models.User, limit, offset uint64, includeOwner bool) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, principal, limit, offset, includeOwner)
	}
	return nil, nil
}

func (m *mockItemsService) ListMyItems(ctx context.Context, principal models.User, limit, offset uint64) ([]models.Item, error) {
	if m.listMineFn != nil {
		return m.listMineFn(ctx, principal, limit, offset)
	}
	return nil, nil
}

func (m *mockItemsService) GetItem(ctx context.Context, principal models.User, id int64) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, principal, id)
	}
	return models.Item{}, nil
}

func (m *mockItemsService) CreateItem(ctx context.Context, principal models.User, create models.ItemCreate) (models.Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, principal, create)
	}
	return models.Item{}, nil
}

func (m *mockItemsService) UpdateItem(ctx context.Context, principal models.User, id int64, update models.ItemUpdate) (models.Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, principal, id, update)
	}
	return models.Item{}, nil
}

func (m *mockItemsService) DeleteItem(ctx context.Context, principal models.User, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, principal, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth  *mockAuthService
	guard *mockGuard
	users *mockUsersService
	items *mockItemsService
}

func newTestServices() *testServices {
	return &testServices{
		auth:  &mockAuthService{},
		guard: &mockGuard{},
		users: &mockUsersService{},
		items: &mockItemsService{},
	}
}

func newHandlerWithServices(svcs *testServices) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:  svcs.auth,
			Guard:        svcs.guard,
			UsersService: svcs.users,
			ItemsService: svcs.items,
		},
		logger: logger.Nop(),
	}
}
