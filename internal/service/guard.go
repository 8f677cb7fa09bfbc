package service

import (
	"context"

	"github.com/tkoyuncu/itemkeeper/internal/auth"
	"github.com/tkoyuncu/itemkeeper/internal/logger"
	"github.com/tkoyuncu/itemkeeper/internal/store"
	"github.com/tkoyuncu/itemkeeper/models"
)

// Operation names a protected action checked by the [Guard].
type Operation string

const (
	OpListUsers  Operation = "users.list"
	OpReadUser   Operation = "users.read"
	OpCreateUser Operation = "users.create"
	OpUpdateUser Operation = "users.update"
	OpDeleteUser Operation = "users.delete"

	OpCreateItem Operation = "items.create"
	OpReadItem   Operation = "items.read"
	OpUpdateItem Operation = "items.update"
	OpDeleteItem Operation = "items.delete"
)

// guard is the concrete implementation of [Guard]. Tokens carry only the
// username, so every request re-resolves the principal from storage; a
// deactivated or deleted account is locked out immediately regardless of any
// still-valid tokens it holds.
type guard struct {
	userRepository store.UserRepository
	tokenCodec     *auth.TokenCodec
	logger         *logger.Logger
}

// NewGuard constructs a [Guard] wired to the given repository and token codec.
// The returned guard is safe for concurrent use; all state is read-only after
// construction.
func NewGuard(userRepository store.UserRepository, tokenCodec *auth.TokenCodec, logger *logger.Logger) Guard {
	return &guard{
		userRepository: userRepository,
		tokenCodec:     tokenCodec,
		logger:         logger,
	}
}

// Authenticate verifies a bearer token and resolves it to a live principal.
//
// Returns:
//   - [auth.ErrTokenInvalid] when the token fails verification for any reason.
//   - [ErrInvalidCredentials] when the subject no longer maps to an account.
//   - [ErrAccountDisabled] when the account exists but is deactivated.
func (g *guard) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, err := g.tokenCodec.Verify(tokenString)
	if err != nil {
		return models.User{}, err
	}

	principal, err := g.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token subject lookup failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !principal.IsActive {
		return models.User{}, ErrAccountDisabled
	}

	return principal, nil
}

// Authorize checks whether principal may perform op.
//
// targetID identifies the affected resource: the target user's id for user
// operations, the item owner's id for item operations, and zero where no
// target applies (listings, creation).
//
// Administrators may perform every operation except deleting their own
// account, which returns [ErrSelfDeletion]. Regular users may read and update
// themselves, create and read items, and mutate only items they own. Anything
// else returns [ErrInsufficientPermissions].
func (g *guard) Authorize(ctx context.Context, principal models.User, op Operation, targetID int64) error {
	if !principal.IsActive {
		return ErrAccountDisabled
	}

	if principal.IsAdmin {
		if op == OpDeleteUser && targetID == principal.UserID {
			return ErrSelfDeletion
		}
		return nil
	}

	switch op {
	case OpReadUser, OpUpdateUser:
		if targetID == principal.UserID {
			return nil
		}
	case OpCreateItem, OpReadItem:
		return nil
	case OpUpdateItem, OpDeleteItem:
		if targetID == principal.UserID {
			return nil
		}
	}

	logger.FromContext(ctx).Warn().
		Int64("principal_id", principal.UserID).
		Str("operation", string(op)).
		Int64("target_id", targetID).
		Msg("operation denied")

	return ErrInsufficientPermissions
}
