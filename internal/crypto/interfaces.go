// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks salted password digests.
// It knows nothing about users, storage or transport.
//
// Digests have the form "saltHex:keyHex" and are produced with fixed
// parameters; a digest written with other parameters does not verify.
type PasswordHasher interface {
	// Hash draws a fresh random salt and returns the digest of password.
	// The only failure is an exhausted random source.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest.
	// A malformed digest yields false, never an error.
	Verify(password, digest string) bool
}
