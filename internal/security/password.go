// Package security provides one-way password hashing.
package security

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for new hashes.
const DefaultCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password with bcrypt. The returned digest
// embeds its own salt and cost.
func HashPassword(plaintext string) (string, error) {
	return HashPasswordWithCost(plaintext, DefaultCost)
}

// HashPasswordWithCost hashes with an explicit cost. Tests use bcrypt.MinCost
// to stay fast.
func HashPasswordWithCost(plaintext string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored digest. Malformed
// digests verify false rather than erroring, so callers cannot distinguish a
// bad hash from a wrong password.
func CheckPassword(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
