// Package client manages registered API clients and their signing keys
package client

import (
	"crypto/rand"
	"fmt"
	"time"
)

// KeySize is the length of generated signing keys
const KeySize = 64

type Client struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	SigningKey []byte    `json:"-"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// GenerateSigningKey returns a new random signing key
func GenerateSigningKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}
