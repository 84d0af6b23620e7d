package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
)

type specialParams struct {
	VenueID string `url:"venueId,omitempty"`
}

// Special returns a special as offered at a venue
func (c *Client) Special(ctx context.Context, specialID, venueID string) (*Result[*entities.CompleteSpecial], error) {
	return call(ctx, c, get(endpoint("specials", specialID), specialParams{VenueID: venueID}, authUserless),
		object(c, "special", entities.CompleteSpecialShape))
}

// SpecialsSearch returns specials near a point
func (c *Client) SpecialsSearch(ctx context.Context, params *SpecialsSearchParams) (*Result[*entities.SpecialGroup], error) {
	return call(ctx, c, get("specials/search", params, authUser),
		object(c, "specials", entities.SpecialGroupShape))
}
