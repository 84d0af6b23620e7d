package foursquare

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/s0up4200/foursquare/envelope"
	"github.com/s0up4200/foursquare/transport"
)

// auth selects the credentials attached to a request
type auth int

const (
	// authUser requires an OAuth token
	authUser auth = iota
	// authUserless sends the token when set and client credentials otherwise
	authUserless
)

type request struct {
	method transport.Method
	path   string
	params any // struct with url tags, or nil
	auth   auth
}

func get(path string, params any, a auth) request {
	return request{method: transport.MethodGet, path: path, params: params, auth: a}
}

func post(path string, params any) request {
	return request{method: transport.MethodPost, path: path, params: params, auth: authUser}
}

// endpoint joins escaped path segments
func endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

// buildURL composes the request URL: endpoint parameters with zero values
// omitted, then credentials, version and the callback name.
func (c *Client) buildURL(req request) (string, error) {
	values := url.Values{}
	if req.params != nil {
		v, err := query.Values(req.params)
		if err != nil {
			return "", fmt.Errorf("failed to encode parameters: %w", err)
		}
		values = v
	}

	token := c.OAuthToken()
	switch {
	case token != "":
		values.Set("oauth_token", token)
	case req.auth == authUser:
		return "", fmt.Errorf("%s: %w", req.path, ErrNotAuthenticated)
	default:
		values.Set("client_id", c.clientID)
		values.Set("client_secret", c.clientSecret)
	}

	values.Set("v", c.version)
	if c.callback {
		values.Set("callback", "c")
	}

	return c.baseURL + req.path + "?" + values.Encode(), nil
}

// doRequest performs a request and decodes its envelope
func (c *Client) doRequest(ctx context.Context, req request) (*envelope.Envelope, error) {
	u, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	start := time.Now()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", string(req.method)).
		Str("path", req.path).
		Msg("Making Foursquare API request")

	resp, err := c.fetcher.Fetch(ctx, req.method, u)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}

	env, err := envelope.Decode(resp, c.callback)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}

	event := c.logger.Debug()
	if !env.OK() {
		event = c.logger.Warn().
			Str("error_type", env.Meta.ErrorType).
			Str("error_detail", env.Meta.ErrorDetail)
	}
	event.
		Str("request_id", requestID).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Int("code", env.Meta.Code).
		Dur("elapsed", time.Since(start)).
		Msg("Foursquare API response")

	return env, nil
}
