package foursquare

import (
	"net/http"
	"time"

	"github.com/s0up4200/foursquare/transport"
)

const (
	DefaultBaseURL     = "https://api.foursquare.com/v2/"
	DefaultOAuthURL    = "https://foursquare.com/oauth2/"
	DefaultVersion     = "20110525"
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 5
	DefaultUserAgent   = "foursquare-go"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	oauthToken       string
	version          string
	callback         bool
	tolerant         bool
	keepUnrecognized bool
	fetcher          transport.Fetcher
	httpClient       *http.Client
	timeout          time.Duration
	baseURL          string
	oauthURL         string
	concurrency      int
	userAgent        string
}

func defaultOptions() clientOptions {
	return clientOptions{
		version:     DefaultVersion,
		callback:    true,
		tolerant:    true,
		timeout:     DefaultTimeout,
		baseURL:     DefaultBaseURL,
		oauthURL:    DefaultOAuthURL,
		concurrency: DefaultConcurrency,
		userAgent:   DefaultUserAgent,
	}
}

// WithOAuthToken authenticates requests as the token's user.
func WithOAuthToken(token string) Option {
	return func(o *clientOptions) {
		o.oauthToken = token
	}
}

// WithVersion sets the v parameter, a YYYYMMDD date pinning API behavior.
func WithVersion(version string) Option {
	return func(o *clientOptions) {
		o.version = version
	}
}

// WithCallback toggles the c(...); callback wrapping of response bodies.
func WithCallback(enabled bool) Option {
	return func(o *clientOptions) {
		o.callback = enabled
	}
}

// WithSkipNonExistingFields toggles tolerant mapping. When enabled, a
// response field whose value has an unexpected type is left unset instead
// of failing the call.
func WithSkipNonExistingFields(skip bool) Option {
	return func(o *clientOptions) {
		o.tolerant = skip
	}
}

// WithKeepUnrecognized returns notifications of unknown type as
// notification.Unrecognized instead of dropping them.
func WithKeepUnrecognized(keep bool) Option {
	return func(o *clientOptions) {
		o.keepUnrecognized = keep
	}
}

// WithTransport replaces the HTTP transport used for API calls.
func WithTransport(fetcher transport.Fetcher) Option {
	return func(o *clientOptions) {
		o.fetcher = fetcher
	}
}

// WithHTTPClient sets the HTTP client used for API calls and token exchange.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithOAuthEndpoint points the authorization flow at a different OAuth2 root.
func WithOAuthEndpoint(oauthURL string) Option {
	return func(o *clientOptions) {
		o.oauthURL = oauthURL
	}
}

// WithConcurrency limits the number of requests batch calls run at once.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
