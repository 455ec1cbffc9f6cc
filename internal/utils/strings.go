package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphanumeric returns n characters drawn uniformly from [A-Za-z0-9]
// using crypto/rand.
func RandomAlphanumeric(n int) (string, error) {
	return randomFrom(alphanumeric, n)
}

// RandomDigits returns n random decimal digits
func RandomDigits(n int) (string, error) {
	return randomFrom("0123456789", n)
}

func randomFrom(alphabet string, n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// GenerateRandomHex generates a random hex string of the specified length
func GenerateRandomHex(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes)[:length], nil
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := nonDigit.ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
