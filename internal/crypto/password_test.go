// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("Secret123")
	require.NoError(t, err)

	saltHex, keyHex, ok := strings.Cut(digest, ":")
	require.True(t, ok, "digest must contain a separator")
	assert.Len(t, saltHex, SaltLength*2)
	assert.Len(t, keyHex, KeyLength*2)

	_, err = hex.DecodeString(saltHex)
	assert.NoError(t, err)
	_, err = hex.DecodeString(keyHex)
	assert.NoError(t, err)
}

func TestHash_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	for _, password := range []string{"Secret123", "", "пароль-Ω1a", strings.Repeat("x", 500)} {
		digest, err := h.Hash(password)
		require.NoError(t, err)
		assert.True(t, h.Verify(password, digest), "password %q must verify", password)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("Secret123")
	require.NoError(t, err)

	assert.False(t, h.Verify("Secret124", digest))
	assert.False(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("", digest))
}

func TestHash_FreshSaltEveryCall(t *testing.T) {
	h := NewPasswordHasher()

	d1, err := h.Hash("same password")
	require.NoError(t, err)
	d2, err := h.Hash("same password")
	require.NoError(t, err)

	s1, _, _ := strings.Cut(d1, ":")
	s2, _, _ := strings.Cut(d2, ":")
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, d1, d2)
}

// TestVerify_LegacyDigest checks digests whose KDF salt input is the hex text
// of the salt, as stored by earlier releases.
func TestVerify_LegacyDigest(t *testing.T) {
	saltHex := "00112233445566778899aabbccddeeff"
	key := pbkdf2.Key([]byte("Legacy1pass"), []byte(saltHex), 10000, 64, sha512.New)
	digest := saltHex + ":" + hex.EncodeToString(key)

	assert.True(t, NewPasswordHasher().Verify("Legacy1pass", digest))
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher()

	valid, err := h.Hash("Secret123")
	require.NoError(t, err)
	saltHex, keyHex, _ := strings.Cut(valid, ":")

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"no separator", saltHex + keyHex},
		{"salt not hex", "zz" + saltHex[2:] + ":" + keyHex},
		{"key not hex", saltHex + ":" + "zz" + keyHex[2:]},
		{"short salt", saltHex[:30] + ":" + keyHex},
		{"short key", saltHex + ":" + keyHex[:126]},
		{"extra separator", saltHex + ":" + keyHex + ":"},
		{"only separator", ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("Secret123", tt.digest))
		})
	}
}
