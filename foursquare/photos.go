package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
)

// Photo returns a single photo
func (c *Client) Photo(ctx context.Context, photoID string) (*Result[*entities.Photo], error) {
	return call(ctx, c, get(endpoint("photos", photoID), nil, authUser),
		object(c, "photo", entities.PhotoShape))
}
