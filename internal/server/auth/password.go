// Package auth implements the credential primitives used by the user
// service: bcrypt password digests, the registration password policy, and
// session tokens.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// specialChars is the fixed set a valid password must draw at least one
// character from.
const specialChars = "_@$#!"

// ValidPassword reports whether pw satisfies the registration policy:
// at least 7 characters, one uppercase letter, one digit, and one of the
// special characters.
func ValidPassword(pw string) bool {
	if len(pw) < 7 {
		return false
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// HashPassword returns the bcrypt digest of pw.
func HashPassword(pw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether pw matches the stored digest.
func CheckPassword(pw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pw)) == nil
}
