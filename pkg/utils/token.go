package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// confirmTokenBytes is the raw entropy of a confirmation token. 32 bytes
// gives 256 bits, well above the point where enumeration is feasible.
const confirmTokenBytes = 32

// GenerateConfirmToken returns a URL-safe opaque token for email
// confirmation links.
func GenerateConfirmToken() (string, error) {
	b := make([]byte, confirmTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
