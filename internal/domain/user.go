package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the application.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates the given fields and returns a new User with a fresh ID
// and timestamps. The password hash is set separately by the auth layer.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	firstName, err := ValidateName("first name", firstName)
	if err != nil {
		return nil, err
	}
	lastName, err = ValidateName("last name", lastName)
	if err != nil {
		return nil, err
	}
	email, err = ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch advances the update timestamp. Called after every mutation.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

const maxNameLength = 50

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateName normalizes and validates a first or last name.
// The field name is included in the error so the API layer can report it.
func ValidateName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxNameLength {
		return "", fmt.Errorf("%w: %s must be a non-empty string of at most %d characters", ErrInvalidInput, field, maxNameLength)
	}
	return value, nil
}

// ValidateEmail normalizes and validates an email address. Uniqueness is
// checked against the repository by the caller, not here.
func ValidateEmail(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !emailPattern.MatchString(value) {
		return "", fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return value, nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
