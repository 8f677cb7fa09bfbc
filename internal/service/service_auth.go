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

// authService is the concrete implementation of [AuthService]. It handles
// self-registration, credential verification, token issuance, and the
// bootstrap administrator account.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenCodec signs tokens for authenticated principals.
	tokenCodec *auth.TokenCodec

	// bcryptCost is the work factor applied when hashing passwords.
	// Zero selects the library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository
// and token codec, with hashing parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenCodec *auth.TokenCodec, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenCodec:     tokenCodec,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new account from a self-registration request.
//
// The new account is always a regular, active user: any role flags in the
// request are ignored, so self-registration can never mint administrators.
//
// Duplicates are reported email first, username second. The pre-insert
// existence checks provide that ordering on the common path; the unique
// constraints on the insert itself remain authoritative when two requests
// race, so a duplicate can never be persisted.
//
// Returns the persisted user or:
//   - [ErrInvalidDataProvided] when a field fails validation.
//   - [store.ErrEmailAlreadyExists] / [store.ErrUsernameAlreadyExists] on
//     duplicates.
func (a *authService) Register(ctx context.Context, create models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

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

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("email existence check failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("username existence check failed: %w", err)
	}

	passwordHash, err := auth.HashPassword(create.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsAdmin:      false,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user registration failed")
		return models.User{}, err
	}

	log.Info().Int64("id", registered.UserID).Str("username", username).Msg("user registered")

	return registered, nil
}

// Login authenticates an existing account and issues a token.
//
// Unknown usernames and wrong passwords produce the same
// [ErrInvalidCredentials] so responses never reveal which usernames exist.
// [ErrAccountDisabled] is returned only after the password has been verified,
// since a disabled account is a fact about a confirmed identity.
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("login lookup failed")
		return models.Token{}, fmt.Errorf("login lookup failed: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		log.Warn().Str("username", username).Msg("failed login attempt")
		return models.Token{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return models.Token{}, ErrAccountDisabled
	}

	token, err := a.tokenCodec.Issue(user.Username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token issuance failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// EnsureAdmin creates the bootstrap administrator account when it does not
// exist yet. A zero-valued cfg disables seeding. The operation is idempotent:
// an account with the configured username, or a raced duplicate insert, both
// leave the store unchanged and return nil.
func (a *authService) EnsureAdmin(ctx context.Context, cfg config.Admin) error {
	if cfg.Username == "" {
		return nil
	}

	log := a.logger.GetChildLogger()

	if _, err := a.userRepository.FindUserByUsername(ctx, cfg.Username); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin existence check failed: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.Password, a.bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        cfg.Email,
		Username:     cfg.Username,
		FullName:     cfg.FullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("seeding admin account: %w", err)
	}

	log.Info().Int64("id", admin.UserID).Str("username", admin.Username).Msg("bootstrap admin created")

	return nil
}
