package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zazzlife/zazz-api/cmd/zazzctl/ui"
	"github.com/zazzlife/zazz-api/internal/token"
)

func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect bearer tokens",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <token>",
		Short: "Verify a token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			t, err := decodeToken(args[0], secret)
			if err != nil {
				return err
			}
			ui.PrintToken(t)
			return nil
		},
	}
	decodeCmd.Flags().String("secret", "", "Base64 token secret (defaults to $TOKEN_SECRET)")

	tokenCmd.AddCommand(decodeCmd)
	return tokenCmd
}

func decodeToken(raw, encodedSecret string) (*token.Token, error) {
	if encodedSecret == "" {
		_ = godotenv.Load()
		encodedSecret = os.Getenv("TOKEN_SECRET")
	}

	secret, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("token secret must be base64 encoded: %w", err)
	}

	codec, err := token.NewCodec(secret)
	if err != nil {
		return nil, err
	}

	return codec.Decode(raw)
}
