package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 100_000
)

// CreateHash derives salted credential material for a new password.
func CreateHash(password string) (salt, hash []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("error generating salt: %w", err)
	}
	hash = pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return salt, hash, nil
}

// Verify recomputes the derivation and compares in constant time.
func Verify(password string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	computed := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

// RandomToken returns n random bytes hex-encoded, for session identifiers.
func RandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
