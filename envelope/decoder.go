package envelope

import (
	"bytes"
	"net/http"

	"github.com/s0up4200/foursquare/mapping"
	"github.com/s0up4200/foursquare/transport"
)

const (
	callbackPrefix = "c("
	callbackSuffix = ");"
)

// Meta is the status block every response carries
type Meta struct {
	Code        int    `json:"code" yaml:"code"`
	ErrorType   string `json:"errorType,omitempty" yaml:"errorType,omitempty"`
	ErrorDetail string `json:"errorDetail,omitempty" yaml:"errorDetail,omitempty"`
}

// OK reports whether the API accepted the request
func (m Meta) OK() bool {
	return m.Code == http.StatusOK
}

// IsNotFound checks if the meta reports a missing resource
func (m Meta) IsNotFound() bool {
	return m.Code == http.StatusNotFound
}

// IsUnauthorized checks if the meta reports an authentication failure
func (m Meta) IsUnauthorized() bool {
	return m.Code == http.StatusUnauthorized || m.Code == http.StatusForbidden
}

// Envelope is a decoded response body
type Envelope struct {
	Meta          Meta
	Response      map[string]any // nil unless Meta.Code is 200
	Notifications []any          // nil when the body has no notifications key
}

// Decode splits a raw response into meta, response and notifications. In
// callback mode the body must be wrapped as c(<json>);.
func Decode(resp *transport.Response, callback bool) (*Envelope, error) {
	if resp.StatusCode != http.StatusOK {
		return &Envelope{
			Meta: Meta{Code: resp.StatusCode, ErrorDetail: resp.Message},
		}, nil
	}

	body := bytes.TrimSpace(resp.Body)
	if callback {
		if !bytes.HasPrefix(body, []byte(callbackPrefix)) || !bytes.HasSuffix(body, []byte(callbackSuffix)) ||
			len(body) < len(callbackPrefix)+len(callbackSuffix) {
			return nil, &ProtocolError{Err: ErrMissingCallback}
		}
		body = body[len(callbackPrefix) : len(body)-len(callbackSuffix)]
	}

	tree, err := mapping.Parse(body)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	root, ok := tree.(map[string]any)
	if !ok {
		return nil, wrongType("", "object", mapping.JSONType(tree))
	}

	meta, err := decodeMeta(root)
	if err != nil {
		return nil, err
	}

	env := &Envelope{Meta: meta}

	if meta.OK() {
		raw, ok := root["response"]
		if !ok || raw == nil {
			return nil, missing("response")
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, wrongType("response", "object", mapping.JSONType(raw))
		}
		env.Response = obj
	}

	if raw, ok := root["notifications"]; ok && raw != nil {
		arr, ok := raw.([]any)
		if !ok {
			return nil, wrongType("notifications", "array", mapping.JSONType(raw))
		}
		env.Notifications = arr
	}

	return env, nil
}

func decodeMeta(root map[string]any) (Meta, error) {
	raw, ok := root["meta"]
	if !ok || raw == nil {
		return Meta{}, missing("meta")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Meta{}, wrongType("meta", "object", mapping.JSONType(raw))
	}

	rawCode, ok := obj["code"]
	if !ok || rawCode == nil {
		return Meta{}, missing("meta.code")
	}
	code, err := mapping.CoerceInt(rawCode)
	if err != nil {
		return Meta{}, &ProtocolError{Key: "meta.code", Err: err}
	}

	meta := Meta{Code: code}
	if meta.ErrorType, err = optionalString(obj, "errorType"); err != nil {
		return Meta{}, err
	}
	if meta.ErrorDetail, err = optionalString(obj, "errorDetail"); err != nil {
		return Meta{}, err
	}
	return meta, nil
}

func optionalString(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, err := mapping.CoerceString(raw)
	if err != nil {
		return "", &ProtocolError{Key: "meta." + key, Err: err}
	}
	return s, nil
}

// Has reports whether the response holds a non-null value under key
func (e *Envelope) Has(key string) bool {
	raw, ok := e.Response[key]
	return ok && raw != nil
}

// OK reports whether the meta code is 200
func (e *Envelope) OK() bool {
	return e.Meta.OK()
}

// Value returns the raw response value under key
func (e *Envelope) Value(key string) (any, error) {
	raw, ok := e.Response[key]
	if !ok || raw == nil {
		return nil, missing("response." + key)
	}
	return raw, nil
}

// Object returns the response value under key, which must be a JSON object
func (e *Envelope) Object(key string) (map[string]any, error) {
	raw, err := e.Value(key)
	if err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, wrongType("response."+key, "object", mapping.JSONType(raw))
	}
	return obj, nil
}

// Array returns the response value under key, which must be a JSON array
func (e *Envelope) Array(key string) ([]any, error) {
	raw, err := e.Value(key)
	if err != nil {
		return nil, err
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, wrongType("response."+key, "array", mapping.JSONType(raw))
	}
	return arr, nil
}

// String returns the response value under key as a string
func (e *Envelope) String(key string) (string, error) {
	raw, err := e.Value(key)
	if err != nil {
		return "", err
	}
	s, err := mapping.CoerceString(raw)
	if err != nil {
		return "", &ProtocolError{Key: "response." + key, Err: err}
	}
	return s, nil
}
