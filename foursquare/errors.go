package foursquare

import (
	"errors"
	"fmt"

	"github.com/s0up4200/foursquare/envelope"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid foursquare configuration")
	// ErrNotAuthenticated indicates an endpoint that needs an OAuth token was called without one
	ErrNotAuthenticated = errors.New("endpoint requires an OAuth token")
)

// APIError converts a non-200 meta into an error for callers that prefer
// to treat API-level failures as errors.
type APIError struct {
	Meta envelope.Meta
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Meta.ErrorType != "" {
		return fmt.Sprintf("foursquare API error: status %d: %s: %s", e.Meta.Code, e.Meta.ErrorType, e.Meta.ErrorDetail)
	}
	return fmt.Sprintf("foursquare API error: status %d: %s", e.Meta.Code, e.Meta.ErrorDetail)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Meta.IsNotFound()
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Meta.IsUnauthorized()
}
