package mapping

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData is returned by Parse when the input holds more than one JSON value
var ErrTrailingData = errors.New("unexpected data after JSON value")

// Parse decodes a single JSON value into the untyped tree the mapper consumes:
// map[string]any, []any, json.Number, string, bool and nil.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}

	return tree, nil
}
