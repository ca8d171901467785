// Package service contains the application facade and the auth service. The
// facade is the single entry point used by the HTTP layer: each method
// validates its inputs, resolves cross-entity references through the
// repositories, and only then persists, so a failed call leaves prior state
// untouched.
package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mgirard/hbnb/internal/domain"
)

// Facade orchestrates the entity repositories for every use case the API
// needs. It is stateless given the current store contents.
type Facade struct {
	store      domain.Store
	bcryptCost int
}

// NewFacade creates a Facade over the given store.
func NewFacade(store domain.Store, bcryptCost int) *Facade {
	return &Facade{store: store, bcryptCost: bcryptCost}
}

const minPasswordLength = 8

func (f *Facade) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), f.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
