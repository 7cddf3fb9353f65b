package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zazzlife/zazz-api/cmd/zazzctl/ui"
	"github.com/zazzlife/zazz-api/internal/client"
	"github.com/zazzlife/zazz-api/internal/config"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate TOKEN_SECRET, PASETO_KEY and a client signing key",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := generateKeys()
			if err != nil {
				return err
			}
			ui.PrintKeys(keys)
			return nil
		},
	}
}

// generateKeys returns fresh secrets in the encodings config.Load expects
func generateKeys() ([]ui.Key, error) {
	tokenSecret := make([]byte, config.TokenSecretSize)
	if _, err := rand.Read(tokenSecret); err != nil {
		return nil, fmt.Errorf("failed to generate token secret: %w", err)
	}

	// PASETO_KEY is read as raw bytes, so hex keeps it printable at the right length
	pasetoKey := make([]byte, config.PasetoKeySize/2)
	if _, err := rand.Read(pasetoKey); err != nil {
		return nil, fmt.Errorf("failed to generate paseto key: %w", err)
	}

	clientKey, err := client.GenerateSigningKey()
	if err != nil {
		return nil, err
	}

	return []ui.Key{
		{Name: "TOKEN_SECRET", Value: base64.StdEncoding.EncodeToString(tokenSecret)},
		{Name: "PASETO_KEY", Value: hex.EncodeToString(pasetoKey)},
		{Name: "ZAZZ_CLIENT_KEY", Value: base64.StdEncoding.EncodeToString(clientKey)},
	}, nil
}
