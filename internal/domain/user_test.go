package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ada", "  Ada@Example.com ", "correct-horse")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Email != "ada@example.com" {
		t.Errorf("Expected normalized email, got %s", user.Email)
	}

	if user.Password != "correct-horse" {
		t.Errorf("Expected plaintext password to be kept until hashing")
	}

	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	cases := []struct {
		name, email, password string
		want                  error
	}{
		{"", "a@b.co", "long-enough", ErrEmptyUserName},
		{"Ada", "", "long-enough", ErrEmptyEmail},
		{"Ada", "invalidemail", "long-enough", ErrInvalidEmail},
		{"Ada", "a@b.co", "short", ErrPasswordTooShort},
		{"Ada", "a@b.co", strings.Repeat("x", 73), ErrPasswordTooLong},
		{"Ada", "a@b.co", "", ErrEmptyPassword},
	}
	for _, c := range cases {
		if _, err := NewUser(c.name, c.email, c.password); err != c.want {
			t.Errorf("NewUser(%q, %q, ...) error = %v, want %v", c.name, c.email, err, c.want)
		}
	}
}

func TestUserValidate_HashedOnly(t *testing.T) {
	u := User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := u.Validate(); err != nil {
		t.Errorf("Expected stored user to validate, got %v", err)
	}
}
