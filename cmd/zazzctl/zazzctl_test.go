package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/client"
	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/token"
)

func TestBuildSignedRequest(t *testing.T) {
	key := bytes.Repeat([]byte{3}, client.KeySize)
	encoded := base64.StdEncoding.EncodeToString(key)

	req, err := buildSignedRequest("post", "http://api.test/api/v1/posts?draft=1", `{"message":"hi"}`, 7, encoded, "access")
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "access", req.Header.Get(apiauth.HeaderAccessToken))
	assert.NotEmpty(t, req.Header.Get(apiauth.HeaderNonce))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"message":"hi"}`, string(body))

	want := apiauth.FormatAuthorization(7, apiauth.Sign(key, apiauth.FromHTTP(req, body)))
	assert.Equal(t, want, req.Header.Get(apiauth.HeaderAuthorization))
}

func TestBuildSignedRequestValidatesInput(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("key"))

	_, err := buildSignedRequest("GET", "http://api.test/", "", 0, encoded, "")
	assert.Error(t, err)

	_, err = buildSignedRequest("GET", "http://api.test/", "", 7, "not base64!", "")
	assert.Error(t, err)

	_, err = buildSignedRequest("GET", "http://api.test/", "", 7, "", "")
	assert.Error(t, err)
}

func TestDecodeToken(t *testing.T) {
	secret := bytes.Repeat([]byte{5}, token.SecretSize)
	codec, err := token.NewCodec(secret)
	require.NoError(t, err)

	raw, err := codec.Encode(token.Token{UserID: 42, ClientID: 7, Type: token.TypeAccess, Scopes: []string{"full"}})
	require.NoError(t, err)

	decoded, err := decodeToken(raw, base64.StdEncoding.EncodeToString(secret))
	require.NoError(t, err)
	assert.Equal(t, int64(42), decoded.UserID)
	assert.Equal(t, int64(7), decoded.ClientID)
	assert.Equal(t, []string{"full"}, decoded.Scopes)

	other := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{6}, token.SecretSize))
	_, err = decodeToken(raw, other)
	assert.ErrorIs(t, err, token.ErrInvalidSignature)

	_, err = decodeToken(raw, base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, token.ErrInvalidSecret)
}

func TestGenerateKeysMatchConfigSizes(t *testing.T) {
	keys, err := generateKeys()
	require.NoError(t, err)
	require.Len(t, keys, 3)

	secret, err := base64.StdEncoding.DecodeString(keys[0].Value)
	require.NoError(t, err)
	assert.Len(t, secret, config.TokenSecretSize)

	assert.Len(t, keys[1].Value, config.PasetoKeySize)
	_, err = hex.DecodeString(keys[1].Value)
	assert.NoError(t, err)

	clientKey, err := base64.StdEncoding.DecodeString(keys[2].Value)
	require.NoError(t, err)
	assert.Len(t, clientKey, client.KeySize)
}

func TestValidateClientName(t *testing.T) {
	assert.NoError(t, validateClientName("zazz-ios"))
	assert.Error(t, validateClientName(""))
	assert.Error(t, validateClientName(strings.Repeat("a", 101)))
}
