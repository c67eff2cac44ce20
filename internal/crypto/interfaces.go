// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hash policy: how passwords are turned
// into the opaque hashes stored in the "senha" attribute and how a submitted
// password is checked against them.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies passwords with a salted, one-way,
// cost-configurable function. The original password can never be recovered
// from a hash.
type PasswordHasher interface {
	// Hash returns a fresh salted hash of password. Two calls with the same
	// password produce different hashes.
	Hash(password string) (string, error)

	// Verify returns nil when password matches hash, ErrMismatchedPassword
	// when it does not, and another error when hash is malformed. The
	// comparison is constant-time.
	Verify(hash, password string) error

	// VerifyDummy performs a comparison of the same cost as Verify against an
	// internal throwaway hash. It is used when no stored hash exists so that
	// the caller's response time does not depend on whether a record matched.
	VerifyDummy(password string)
}
