package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tkoyuncu/itemkeeper/internal/auth"
	"github.com/tkoyuncu/itemkeeper/internal/config"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/store"
	"github.com/tkoyuncu/itemkeeper/models"
)

// usersService is the concrete implementation of [UsersService]. Every
// operation consults the [Guard] before touching storage.
type usersService struct {
	userRepository store.UserRepository
	guard          Guard
	bcryptCost     int
	logger         *logger.Logger
}

// NewUsersService constructs a [UsersService] wired to the given repository
// and guard.
func NewUsersService(userRepository store.UserRepository, guard Guard, cfg config.Auth, logger *logger.Logger) UsersService {
	return &usersService{
		userRepository: userRepository,
		guard:          guard,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// ListUsers returns a page of accounts. Administrators only.
func (s *usersService) ListUsers(ctx context.Context, principal models.User, limit, offset uint64) ([]models.User, error) {
	if err := s.guard.Authorize(ctx, principal, OpListUsers, 0); err != nil {
		return nil, err
	}

	return s.userRepository.ListUsers(ctx, limit, offset)
}

// GetUser returns the account with the given id. Regular users may only read
// their own account; administrators may read any.
func (s *usersService) GetUser(ctx context.Context, principal models.User, id int64) (models.User, error) {
	if err := s.guard.Authorize(ctx, principal, OpReadUser, id); err != nil {
		return models.User{}, err
	}

	return s.userRepository.FindUserByID(ctx, id)
}

// CreateUser creates an account on behalf of an administrator. Unlike
// self-registration, the request may set the active and admin flags.
func (s *usersService) CreateUser(ctx context.Context, principal models.User, create models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.guard.Authorize(ctx, principal, OpCreateUser, 0); err != nil {
		return models.User{}, err
	}

	email, err := validateEmail(create.Email)
	if err != nil {
		return models.User{}, err
	}
	username, err := validateUsername(create.Username)
	if err != nil {
		return models.User{}, err
	}
	if err := validatePassword(create.Password); err != nil {
		return models.User{}, err
	}
	fullName, err := validateFullName(create.FullName)
	if err != nil {
		return models.User{}, err
	}

	if _, err := s.userRepository.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("email existence check failed: %w", err)
	}

	if _, err := s.userRepository.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("username existence check failed: %w", err)
	}

	passwordHash, err := auth.HashPassword(create.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}
	isAdmin := false
	if create.IsAdmin != nil {
		isAdmin = *create.IsAdmin
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     isActive,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation failed")
		return models.User{}, err
	}

	log.Info().Int64("id", created.UserID).Str("username", username).Bool("is_admin", isAdmin).Msg("user created")

	return created, nil
}

// UpdateUser applies a partial update to the account with the given id.
//
// Regular users may only update their own account, and their requests never
// touch the active or admin flags: those fields are stripped here so a user
// cannot deactivate themselves into a locked account or escalate to
// administrator. Administrators may update any account including flags.
func (s *usersService) UpdateUser(ctx context.Context, principal models.User, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.guard.Authorize(ctx, principal, OpUpdateUser, id); err != nil {
		return models.User{}, err
	}

	if !principal.IsAdmin {
		update.IsActive = nil
		update.IsAdmin = nil
	}

	if update.Email != nil {
		email, err := validateEmail(*update.Email)
		if err != nil {
			return models.User{}, err
		}
		update.Email = &email
	}
	if update.Username != nil {
		username, err := validateUsername(*update.Username)
		if err != nil {
			return models.User{}, err
		}
		update.Username = &username
	}
	if update.FullName != nil {
		fullName, err := validateFullName(*update.FullName)
		if err != nil {
			return models.User{}, err
		}
		update.FullName = &fullName
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNothingToUpdate) {
			return models.User{}, fmt.Errorf("%w: no fields to update", ErrInvalidDataProvided)
		}

		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser removes the account with the given id together with its items.
// Administrators only; deleting one's own account is rejected by the guard.
func (s *usersService) DeleteUser(ctx context.Context, principal models.User, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.guard.Authorize(ctx, principal, OpDeleteUser, id); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id", id).Int64("deleted_by", principal.UserID).Msg("user deleted")

	return nil
}
