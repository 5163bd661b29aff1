package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/service/auth"
	"github.com/phrazzld/taskpost-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (*UserServiceImpl, *MockUserStore, *MockPasswordVerifier) {
	t.Helper()

	users := &MockUserStore{}
	verifier := &MockPasswordVerifier{}
	svc, err := NewUserService(users, verifier, nil)
	require.NoError(t, err)
	return svc, users, verifier
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		svc, users, _ := newTestUserService(t)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "ada@example.com" && u.Name == "Ada"
		})).Return(nil)

		user, err := svc.Register(context.Background(), "Ada", "Ada@example.com", "password123")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("duplicate email is a field error", func(t *testing.T) {
		svc, users, _ := newTestUserService(t)
		users.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"The email has already been taken."}, vErr.Fields["email"])
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("short password", func(t *testing.T) {
		svc, users, _ := newTestUserService(t)

		_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "short")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"The password field must be at least 8 characters."}, vErr.Fields["password"])
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	stored := &domain.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", HashedPassword: "hash"}

	t.Run("valid credentials", func(t *testing.T) {
		svc, users, verifier := newTestUserService(t)
		users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
		verifier.On("Compare", "hash", "password123").Return(nil)

		user, err := svc.Authenticate(context.Background(), "ada@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, verifier := newTestUserService(t)
		users.On("GetByEmail", mock.Anything, "ada@example.com").Return(stored, nil)
		verifier.On("Compare", "hash", "nope").Return(errors.New("mismatch"))

		_, err := svc.Authenticate(context.Background(), "ada@example.com", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email burns a dummy comparison", func(t *testing.T) {
		svc, users, verifier := newTestUserService(t)
		users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, store.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Equal(t, 1, verifier.dummyCalls)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, users, _ := newTestUserService(t)
		users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := svc.Authenticate(context.Background(), "ada@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
