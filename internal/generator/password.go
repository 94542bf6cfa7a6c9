// Package generator produces cryptographically random passwords from a
// fixed alphabet.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the fixed character set passwords are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*()"

// DefaultLength is used when the caller does not ask for a specific length.
const DefaultLength = 16

// ErrInvalidLength is returned for lengths below 1.
var ErrInvalidLength = errors.New("password length must be at least 1")

// Generate returns a password of exactly length characters, each drawn
// independently and uniformly (with replacement) from Alphabet using
// crypto/rand.
func Generate(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	var b strings.Builder
	b.Grow(length)
	alphabetSize := big.NewInt(int64(len(Alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("random index: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}
