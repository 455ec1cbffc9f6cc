package usecase

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var passwordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash stored for a console password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares password with stored. Rows created before hashing
// hold the plaintext; those match once and report legacy so the caller can
// rehash them.
func checkPassword(stored, password string) (ok bool, legacy bool) {
	if isBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	if stored == "" {
		return false, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, true
}

func isBcrypt(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// secretMatches gates account management on the configured admin secret.
// An unset secret disables management entirely.
func secretMatches(configured, given string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}
