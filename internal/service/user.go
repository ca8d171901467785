package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mgirard/hbnb/internal/domain"
)

// CreateUserInput carries the fields for user creation.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UpdateUserInput carries an update patch; nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// CreateUser validates the input and persists a new user.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	user.PasswordHash, err = f.hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// The repository enforces email uniqueness too, but checking first keeps
	// the error specific.
	if _, err := f.store.Users().GetByEmail(ctx, user.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := f.store.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser returns a user by ID.
func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.store.Users().GetByID(ctx, id)
}

// GetUserByEmail returns a user by email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.store.Users().GetByEmail(ctx, email)
}

// ListUsers returns all users in insertion order.
func (f *Facade) ListUsers(ctx context.Context) ([]domain.User, error) {
	return f.store.Users().List(ctx)
}

// UpdateUser applies a patch to an existing user. Every provided field is
// re-validated before anything is written.
func (f *Facade) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error) {
	user, err := f.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		if user.FirstName, err = domain.ValidateName("first name", *in.FirstName); err != nil {
			return nil, err
		}
	}
	if in.LastName != nil {
		if user.LastName, err = domain.ValidateName("last name", *in.LastName); err != nil {
			return nil, err
		}
	}
	if in.Email != nil {
		email, err := domain.ValidateEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing, err := f.store.Users().GetByEmail(ctx, email); err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if in.Password != nil {
		if user.PasswordHash, err = f.hashPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}

	user.Touch()
	if err := f.store.Users().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
