package foursquare

import (
	"context"
	"fmt"

	"github.com/s0up4200/foursquare/envelope"
	"github.com/s0up4200/foursquare/mapping"
	"github.com/s0up4200/foursquare/notification"
)

// Result is the typed outcome of an API call. When Meta.Code is not 200,
// Result holds the zero value and Meta carries the error details.
type Result[T any] struct {
	Meta          envelope.Meta                `json:"meta"`
	Result        T                            `json:"result"`
	Notifications []notification.Notification `json:"notifications,omitempty"`
}

// Err returns an *APIError when the call was not successful
func (r *Result[T]) Err() error {
	if r.Meta.OK() {
		return nil
	}
	return &APIError{Meta: r.Meta}
}

// call performs req and, when the meta code is 200, maps the response with build
func call[T any](ctx context.Context, c *Client, req request, build func(env *envelope.Envelope) (T, error)) (*Result[T], error) {
	env, err := c.doRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	notifications, err := c.dispatcher.DispatchAll(env.Notifications)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.path, err)
	}

	res := &Result[T]{
		Meta:          env.Meta,
		Notifications: notifications,
	}
	if !env.OK() {
		return res, nil
	}

	res.Result, err = build(env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.path, err)
	}
	return res, nil
}

func object[T any](c *Client, key string, shape *mapping.Shape[T]) func(*envelope.Envelope) (*T, error) {
	return func(env *envelope.Envelope) (*T, error) {
		raw, err := env.Value(key)
		if err != nil {
			return nil, err
		}
		return mapping.Map(c.mapper, shape, raw)
	}
}

func array[T any](c *Client, key string, shape *mapping.Shape[T]) func(*envelope.Envelope) ([]T, error) {
	return func(env *envelope.Envelope) ([]T, error) {
		raw, err := env.Value(key)
		if err != nil {
			return nil, err
		}
		return mapping.MapArray(c.mapper, shape, raw)
	}
}

func none(*envelope.Envelope) (struct{}, error) {
	return struct{}{}, nil
}

// optionalObject maps key when present and returns nil otherwise
func optionalObject[T any](c *Client, env *envelope.Envelope, key string, shape *mapping.Shape[T]) (*T, error) {
	if !env.Has(key) {
		return nil, nil
	}
	return object(c, key, shape)(env)
}
