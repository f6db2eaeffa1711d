// Package password wraps bcrypt hashing of user passwords. It is invoked
// explicitly by the service layer before any persistence write that changes
// the password field.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when the configured cost is out of
// bcrypt's accepted range.
const DefaultCost = 10

// Hash derives a salted one-way hash of plaintext at the given cost.
func Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Compare checks plaintext against a stored hash. A mismatch or a malformed
// hash both yield false; bcrypt's comparison is not subject to timing
// shortcuts on mismatched input.
func Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
