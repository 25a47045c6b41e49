// Package credentials implements salted one-way password hashing for user
// accounts. A credential is stored as a single opaque blob: a fresh random
// salt followed by a PBKDF2-derived key, so the verifier needs nothing but
// the blob and the candidate password.
package credentials

import (
	"crypto/sha1"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/flightbook/internal/common"
)

// Derivation parameters. Changing any of these invalidates stored blobs.
const (
	saltLength = 16
	keyLength  = 128
	iterations = 65536
)

// Generate derives a storable credential blob from a plaintext password.
// A new random salt is drawn on every call, so two blobs for the same
// password never match. The layout is salt‖derivedKey.
func Generate(password string) []byte {
	salt := common.GenerateRandByteArray(saltLength)
	key := hashWithSalt(password, salt)

	blob := make([]byte, 0, saltLength+keyLength)
	blob = append(blob, salt...)
	blob = append(blob, key...)
	return blob
}

// Verify reports whether the plaintext password matches the stored credential
// blob. The comparison is constant-time. Malformed blobs verify false.
func Verify(password string, blob []byte) bool {
	if len(blob) <= saltLength {
		return false
	}
	salt := blob[:saltLength]
	storedKey := blob[saltLength:]

	candidate := hashWithSalt(password, salt)
	return subtle.ConstantTimeCompare(candidate, storedKey) == 1
}

// hashWithSalt derives a keyLength-byte key from (password, salt) with
// PBKDF2-HMAC-SHA1. Deterministic for a given pair, expensive per guess.
func hashWithSalt(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha1.New)
}
