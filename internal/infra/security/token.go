package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateSecureToken returns a base64 URL-safe random string using the specified number of random bytes.
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashToken calculates a SHA-256 hash of the provided value.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// recoveryAlphabet excludes characters easy to confuse when read aloud.
const recoveryAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ23456789"

// GenerateRecoveryCode returns a human-readable code in the form
// XXXX-XXXX-XXXX-XXXX drawn from an unambiguous alphabet.
func GenerateRecoveryCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate recovery code: %w", err)
	}

	groups := make([]string, 0, 4)
	for i := 0; i < 16; i += 4 {
		var b strings.Builder
		for _, c := range buf[i : i+4] {
			b.WriteByte(recoveryAlphabet[int(c)%len(recoveryAlphabet)])
		}
		groups = append(groups, b.String())
	}

	return strings.Join(groups, "-"), nil
}

// ConstantTimeEquals compares two strings without leaking a length-dependent
// early exit for equal-length inputs.
func ConstantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
