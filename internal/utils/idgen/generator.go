package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Prefixes used for public identifiers.
const (
	PrefixMessage = "msg"
	PrefixLead    = "lead"
	PrefixUpdate  = "upd"
	PrefixUser    = "usr"
	PrefixSession = "sess"
)

// DefaultLength is the random suffix length used for public identifiers.
const DefaultLength = 16

// GenerateSecureID returns prefix_ followed by length random base36 characters.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("id length must be positive, got %d", length)
	}

	base := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(len(prefix) + 1 + length)
	b.WriteString(prefix)
	b.WriteByte('_')
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// New generates an identifier with the default length.
func New(prefix string) (string, error) {
	return GenerateSecureID(prefix, DefaultLength)
}

// ValidateIDFormat reports whether id is expectedPrefix_ followed by at least
// one lowercase base36 character.
func ValidateIDFormat(id, expectedPrefix string) bool {
	suffix, ok := strings.CutPrefix(id, expectedPrefix+"_")
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
