package foursquare

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// AuthenticationURL returns the page the user visits to grant access. After
// approval Foursquare redirects to the configured redirect URL with a code
// parameter for AuthenticateCode.
func (c *Client) AuthenticationURL() (string, error) {
	if c.oauth.RedirectURL == "" {
		return "", fmt.Errorf("%w: redirect url is required for authentication", ErrInvalidConfig)
	}
	return c.oauth.AuthCodeURL(""), nil
}

// AuthenticateCode exchanges an authorization code for an access token,
// stores it on the client and returns it.
func (c *Client) AuthenticateCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("authorization code is required")
	}
	if c.oauth.RedirectURL == "" {
		return "", fmt.Errorf("%w: redirect url is required for authentication", ErrInvalidConfig)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	c.SetOAuthToken(token.AccessToken)
	c.logger.Debug().Msg("Exchanged authorization code for access token")

	return token.AccessToken, nil
}
