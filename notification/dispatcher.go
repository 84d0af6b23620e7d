package notification

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s0up4200/foursquare/mapping"
)

// Dispatcher routes raw notifications to their typed decoders
type Dispatcher struct {
	mapper           *mapping.Mapper
	keepUnrecognized bool
	logger           zerolog.Logger
}

// NewDispatcher creates a dispatcher. Notifications of an unknown type are
// dropped unless keepUnrecognized is set, in which case they are returned
// as Unrecognized.
func NewDispatcher(mapper *mapping.Mapper, keepUnrecognized bool, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		mapper:           mapper,
		keepUnrecognized: keepUnrecognized,
		logger:           logger,
	}
}

// DispatchAll decodes every element of a notifications array in order.
// A nil array yields an empty result.
func (d *Dispatcher) DispatchAll(raw []any) ([]Notification, error) {
	out := make([]Notification, 0, len(raw))

	for i, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, &mapping.StructureError{
				Shape:    "Notification",
				Path:     fmt.Sprintf("notifications[%d]", i),
				Expected: "object",
				Got:      mapping.JSONType(el),
			}
		}

		n, err := d.dispatch(obj)
		if err != nil {
			return nil, fmt.Errorf("notifications[%d]: %w", i, err)
		}
		if n != nil {
			out = append(out, n)
		}
	}

	return out, nil
}

func (d *Dispatcher) dispatch(obj map[string]any) (Notification, error) {
	typ, _ := obj["type"].(string)
	item := obj["item"]

	decode, ok := registry[Kind(typ)]
	if !ok {
		if d.keepUnrecognized {
			payload, _ := item.(map[string]any)
			return Unrecognized{Type: typ, Item: payload}, nil
		}
		d.logger.Debug().
			Str("type", typ).
			Msg("Skipping unrecognized notification")
		return nil, nil
	}

	if item == nil {
		item = map[string]any{}
	}

	n, err := decode(d.mapper, item)
	if err != nil {
		return nil, fmt.Errorf("decoding %s notification: %w", typ, err)
	}
	return n, nil
}

// Of returns the notifications of concrete type T, in order
func Of[T Notification](ns []Notification) []T {
	var out []T
	for _, n := range ns {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
