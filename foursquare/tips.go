package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
)

// Tip returns a single tip
func (c *Client) Tip(ctx context.Context, tipID string) (*Result[*entities.CompleteTip], error) {
	return call(ctx, c, get(endpoint("tips", tipID), nil, authUserless),
		object(c, "tip", entities.CompleteTipShape))
}

// TipsAdd leaves a tip at a venue
func (c *Client) TipsAdd(ctx context.Context, params *TipsAddParams) (*Result[*entities.CompleteTip], error) {
	return call(ctx, c, post("tips/add", params),
		object(c, "tip", entities.CompleteTipShape))
}

// TipsMarkTodo saves a tip to the acting user's todo list
func (c *Client) TipsMarkTodo(ctx context.Context, tipID string) (*Result[*entities.Todo], error) {
	return call(ctx, c, post(endpoint("tips", tipID, "marktodo"), nil),
		object(c, "todo", entities.TodoShape))
}
