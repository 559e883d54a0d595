package security

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenKeyLength is the length of a hex-encoded token key.
const TokenKeyLength = 40

func NewTokenKey() (string, error) {
	buf := make([]byte, TokenKeyLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
