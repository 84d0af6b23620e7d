package foursquare

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/s0up4200/foursquare/mapping"
	"github.com/s0up4200/foursquare/notification"
	"github.com/s0up4200/foursquare/transport"
)

// Client represents a Foursquare v2 API client
type Client struct {
	baseURL     string
	version     string
	callback    bool
	concurrency int

	clientID     string
	clientSecret string
	oauth        *oauth2.Config
	httpClient   *http.Client

	mu         sync.RWMutex
	oauthToken string

	fetcher    transport.Fetcher
	mapper     *mapping.Mapper
	dispatcher *notification.Dispatcher
	logger     zerolog.Logger
}

// NewClient creates a new Foursquare client. Client credentials are
// required; the redirect URL is only needed for the OAuth2 code flow.
func NewClient(clientID, clientSecret, redirectURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidConfig)
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: client secret is required", ErrInvalidConfig)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if _, err := time.Parse("20060102", options.version); err != nil {
		return nil, fmt.Errorf("%w: version %q is not a YYYYMMDD date", ErrInvalidConfig, options.version)
	}

	baseURL, err := normalizeURL(options.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrInvalidConfig, err)
	}
	oauthURL, err := normalizeURL(options.oauthURL)
	if err != nil {
		return nil, fmt.Errorf("%w: oauth url: %v", ErrInvalidConfig, err)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	fetcher := options.fetcher
	if fetcher == nil {
		fetcher = transport.NewHTTPFetcher(httpClient, options.userAgent)
	}

	mapper := mapping.NewMapper(options.tolerant, logger)

	return &Client{
		baseURL:      baseURL,
		version:      options.version,
		callback:     options.callback,
		concurrency:  options.concurrency,
		clientID:     clientID,
		clientSecret: clientSecret,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   oauthURL + "authenticate",
				TokenURL:  oauthURL + "access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
		oauthToken: options.oauthToken,
		fetcher:    fetcher,
		mapper:     mapper,
		dispatcher: notification.NewDispatcher(mapper, options.keepUnrecognized, logger),
		logger:     logger,
	}, nil
}

// OAuthToken returns the token requests are authenticated with
func (c *Client) OAuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.oauthToken
}

// SetOAuthToken replaces the token used for authenticated requests
func (c *Client) SetOAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.oauthToken = token
}

// Authenticated reports whether an OAuth token is set
func (c *Client) Authenticated() bool {
	return c.OAuthToken() != ""
}

// Version returns the v parameter sent with every request
func (c *Client) Version() string {
	return c.version
}

// normalizeURL validates an absolute URL and ensures a trailing slash
func normalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}
