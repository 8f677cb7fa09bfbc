package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when the plaintext exceeds bcrypt's 72-byte
// input limit. Longer inputs would be silently truncated by the algorithm,
// so they are rejected instead.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword hashes a plaintext password with bcrypt and returns the
// digest in modular crypt format ($2a$cost$salthash). The salt is generated
// by the library and embedded in the digest, so no separate storage is
// needed. cost selects the work factor; zero or any value below the bcrypt
// minimum selects the library default.
//
// The plaintext is never logged or returned.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt digest.
// The comparison inside bcrypt is constant-time with respect to the derived
// keys. Returns true only when the password matches; any error (malformed
// digest, mismatch) yields false.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
