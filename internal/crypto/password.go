// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the number of random bytes drawn for every digest.
	SaltLength = 16
	// KeyLength is the length of the derived key in bytes.
	KeyLength = 64
	// Iterations is the PBKDF2 round count.
	Iterations = 10000

	digestSeparator = ":"
)

type pbkdf2Hasher struct{}

// NewPasswordHasher returns the PBKDF2-HMAC-SHA512 [PasswordHasher].
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{}
}

func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	key := deriveKey(password, saltHex)

	return saltHex + digestSeparator + hex.EncodeToString(key), nil
}

func (h *pbkdf2Hasher) Verify(password, digest string) bool {
	saltHex, keyHex, ok := strings.Cut(digest, digestSeparator)
	if !ok {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != SaltLength {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) != KeyLength {
		return false
	}

	got := deriveKey(password, saltHex)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// deriveKey feeds the hex text of the salt to the KDF, which keeps digests
// stored by earlier releases verifiable.
func deriveKey(password, saltHex string) []byte {
	return pbkdf2.Key([]byte(password), []byte(saltHex), Iterations, KeyLength, sha512.New)
}
