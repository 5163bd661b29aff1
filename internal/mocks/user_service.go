package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/service"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// MockUserService implements service.UserService for testing. The default
// implementation stores plaintext passwords, which is fine for tests only.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, name, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	Err error

	mu        sync.Mutex
	byEmail   map[string]*domain.User
	passwords map[uuid.UUID]string
}

var _ service.UserService = (*MockUserService)(nil)

// NewMockUserService creates a mock with no registered users
func NewMockUserService() *MockUserService {
	return &MockUserService{
		byEmail:   make(map[string]*domain.User),
		passwords: make(map[uuid.UUID]string),
	}
}

// Register implements the service.UserService interface
func (m *MockUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, domain.NewValidationError("user", err.Error(), err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[user.Email]; exists {
		return nil, domain.NewValidationError("email", domain.MsgTaken("email"), store.ErrEmailExists)
	}
	m.passwords[user.ID] = user.Password
	user.Password = ""
	m.byEmail[user.Email] = user

	c := *user
	return &c, nil
}

// Authenticate implements the service.UserService interface
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.byEmail[email]
	if !ok || m.passwords[user.ID] != password {
		return nil, auth.ErrInvalidCredentials
	}
	c := *user
	return &c, nil
}

// GetUser implements the service.UserService interface
func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, store.ErrUserNotFound
}
