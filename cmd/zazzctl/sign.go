package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zazzlife/zazz-api/cmd/zazzctl/ui"
	"github.com/zazzlife/zazz-api/internal/apiauth"
)

// signedHeaders lists the headers a signed request carries, in print order
var signedHeaders = []string{
	apiauth.HeaderAuthorization,
	apiauth.HeaderDate,
	apiauth.HeaderNonce,
	apiauth.HeaderAccessToken,
}

func newSignCmd() *cobra.Command {
	signCmd := &cobra.Command{
		Use:   "sign <method> <url>",
		Short: "Print the headers of a signed request",
		Long:  "Sign a request the way API clients do and print the headers to send with it.",
		Args:  cobra.ExactArgs(2),
		RunE:  runSign,
	}

	signCmd.Flags().Int64("client-id", 0, "Client id")
	signCmd.Flags().String("key", "", "Base64 signing key (defaults to $ZAZZ_CLIENT_KEY)")
	signCmd.Flags().String("body", "", "Request body")
	signCmd.Flags().String("token", "", "Access token to send in "+apiauth.HeaderAccessToken)
	return signCmd
}

func runSign(cmd *cobra.Command, args []string) error {
	clientID, _ := cmd.Flags().GetInt64("client-id")
	rawKey, _ := cmd.Flags().GetString("key")
	body, _ := cmd.Flags().GetString("body")
	accessToken, _ := cmd.Flags().GetString("token")

	if rawKey == "" {
		rawKey = os.Getenv("ZAZZ_CLIENT_KEY")
	}

	req, err := buildSignedRequest(args[0], args[1], body, clientID, rawKey, accessToken)
	if err != nil {
		return err
	}

	ui.PrintHeaders(req.Header, signedHeaders)
	return nil
}

// buildSignedRequest creates and signs a request without sending it
func buildSignedRequest(method, url, body string, clientID int64, rawKey, accessToken string) (*http.Request, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("--client-id is required")
	}

	key, err := base64.StdEncoding.DecodeString(rawKey)
	if err != nil || len(key) == 0 {
		return nil, fmt.Errorf("signing key must be non-empty base64")
	}

	req, err := http.NewRequest(strings.ToUpper(method), url, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	if err := apiauth.NewSigner(clientID, key).SignRequest(req, accessToken); err != nil {
		return nil, err
	}
	return req, nil
}
