package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/platform/logger"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// UserService provides account registration and credential checks.
type UserService interface {
	// Register creates an account. A taken email yields a
	// *domain.ValidationError on the email field.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Authenticate returns the user owning email when password matches,
	// and auth.ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser returns store.ErrUserNotFound (wrapped) for unknown IDs.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// dummyComparer is implemented by verifiers that can burn comparison time
// for unknown accounts.
type dummyComparer interface {
	CompareDummy(password string)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users    store.UserStore
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, verifier auth.PasswordVerifier, logger *slog.Logger) (*UserServiceImpl, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		users:    users,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "user_service")),
	}, nil
}

var _ UserService = (*UserServiceImpl)(nil)

func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		log.Debug("invalid registration", slog.String("error", err.Error()))
		return nil, userValidationError(err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register an existing email")
			return nil, domain.NewValidationError("email", domain.MsgTaken("email"), err)
		}
		log.Error("failed to save user", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", "failed to save user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			if d, ok := s.verifier.(dummyComparer); ok {
				d.CompareDummy(password)
			}
			log.Debug("login for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		log.Error("failed to load user for login", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "authenticate", "failed to load user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", slog.String("user_id", user.ID.String()))
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		if store.IsNotFoundError(err) {
			log.Debug("user not found", slog.String("user_id", id.String()))
		} else {
			log.Error("failed to load user", slog.String("user_id", id.String()), slog.String("error", err.Error()))
		}
		return nil, NewServiceError("user", "get", "failed to load user", err)
	}
	return user, nil
}

// userValidationError maps domain user errors onto field messages.
func userValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyUserName):
		return domain.NewValidationError("name", domain.MsgRequired("name"), err)
	case errors.Is(err, domain.ErrEmptyEmail):
		return domain.NewValidationError("email", domain.MsgRequired("email"), err)
	case errors.Is(err, domain.ErrInvalidEmail):
		return domain.NewValidationError("email", domain.MsgInvalidEmail("email"), err)
	case errors.Is(err, domain.ErrEmptyPassword):
		return domain.NewValidationError("password", domain.MsgRequired("password"), err)
	case errors.Is(err, domain.ErrPasswordTooShort):
		return domain.NewValidationError("password",
			domain.MsgMinLength("password", strconv.Itoa(domain.MinPasswordLength)), err)
	case errors.Is(err, domain.ErrPasswordTooLong):
		return domain.NewValidationError("password",
			domain.MsgMaxLength("password", strconv.Itoa(domain.MaxPasswordLength)), err)
	default:
		return err
	}
}
