// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the salt rounds the records were historically created with.
const DefaultCost = 10

var (
	// ErrMismatchedPassword is returned by Verify when the password does not
	// produce the stored hash.
	ErrMismatchedPassword = errors.New("password does not match hash")

	// ErrEmptyPassword is returned by Hash for an empty password. An empty
	// password is never hashed; edits keep the previous hash instead.
	ErrEmptyPassword = errors.New("empty password")

	// ErrMalformedHash is returned by Verify when the stored value is not a
	// bcrypt hash.
	ErrMalformedHash = errors.New("malformed password hash")
)

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewBcryptHasher constructs a [PasswordHasher] using bcrypt with the given
// cost. Costs outside bcrypt's accepted range fall back to [DefaultCost].
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatchedPassword
	default:
		return fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

// VerifyDummy implements [PasswordHasher].
func (h *bcryptHasher) VerifyDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lyra-dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
