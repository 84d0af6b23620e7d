package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "foursquare-test", r.Header.Get("User-Agent"))

		switch r.URL.Path {
		case "/v2/venues/5104":
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"meta":{"code":200}}`))
		case "/v2/checkins/add":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(nil, "foursquare-test")
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		resp, err := fetcher.Fetch(ctx, MethodGet, server.URL+"/v2/venues/5104")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", resp.Message)
		assert.JSONEq(t, `{"meta":{"code":200}}`, string(resp.Body))
	})

	t.Run("post", func(t *testing.T) {
		resp, err := fetcher.Fetch(ctx, MethodPost, server.URL+"/v2/checkins/add")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := fetcher.Fetch(ctx, MethodGet, server.URL+"/v2/nope")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Not Found", resp.Message)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := fetcher.Fetch(cctx, MethodGet, server.URL+"/v2/venues/5104")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewHTTPFetcherDefaults(t *testing.T) {
	fetcher := NewHTTPFetcher(nil, "")
	assert.Equal(t, 30*time.Second, fetcher.Client().Timeout)

	custom := &http.Client{Timeout: time.Second}
	assert.Same(t, custom, NewHTTPFetcher(custom, "").Client())
}

func TestFetcherFunc(t *testing.T) {
	var got string
	f := FetcherFunc(func(ctx context.Context, method Method, url string) (*Response, error) {
		got = string(method) + " " + url
		return &Response{StatusCode: 200}, nil
	})

	resp, err := f.Fetch(context.Background(), MethodPost, "https://api.foursquare.com/v2/tips/add")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "POST https://api.foursquare.com/v2/tips/add", got)
}
