package foursquare

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationURL(t *testing.T) {
	client, err := NewClient("client-id", "client-secret", "https://example.com/callback", zerolog.Nop())
	require.NoError(t, err)

	raw, err := client.AuthenticationURL()
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "foursquare.com", u.Host)
	assert.Equal(t, "/oauth2/authenticate", u.Path)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Equal(t, "https://example.com/callback", u.Query().Get("redirect_uri"))

	client, err = NewClient("client-id", "client-secret", "", zerolog.Nop())
	require.NoError(t, err)
	_, err = client.AuthenticationURL()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAuthenticateCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/access_token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "the-code", r.Form.Get("code"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))
		assert.Equal(t, "https://example.com/callback", r.Form.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "fresh-token"}`))
	}))
	defer server.Close()

	client, err := NewClient("client-id", "client-secret", "https://example.com/callback", zerolog.Nop(),
		WithOAuthEndpoint(server.URL+"/oauth2/"))
	require.NoError(t, err)
	assert.False(t, client.Authenticated())

	token, err := client.AuthenticateCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.True(t, client.Authenticated())
	assert.Equal(t, "fresh-token", client.OAuthToken())

	_, err = client.AuthenticateCode(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthenticateCodeRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer server.Close()

	client, err := NewClient("client-id", "client-secret", "https://example.com/callback", zerolog.Nop(),
		WithOAuthEndpoint(server.URL+"/oauth2/"))
	require.NoError(t, err)

	_, err = client.AuthenticateCode(context.Background(), "stale")
	assert.Error(t, err)
	assert.False(t, client.Authenticated())
}
