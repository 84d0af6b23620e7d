package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/envelope"
)

// Venue returns the full details of a venue
func (c *Client) Venue(ctx context.Context, venueID string) (*Result[*entities.CompleteVenue], error) {
	return call(ctx, c, get(endpoint("venues", venueID), nil, authUserless),
		object(c, "venue", entities.CompleteVenueShape))
}

// VenuesCategories returns the venue category hierarchy
func (c *Client) VenuesCategories(ctx context.Context) (*Result[[]entities.Category], error) {
	return call(ctx, c, get("venues/categories", nil, authUserless),
		array(c, "categories", entities.CategoryShape))
}

// VenuesSearch returns venues near a point. A response without groups
// yields an empty list.
func (c *Client) VenuesSearch(ctx context.Context, params *VenuesSearchParams) (*Result[[]entities.VenueGroup], error) {
	return call(ctx, c, get("venues/search", params, authUserless),
		func(env *envelope.Envelope) ([]entities.VenueGroup, error) {
			if !env.Has("groups") {
				return []entities.VenueGroup{}, nil
			}
			return array(c, "groups", entities.VenueGroupShape)(env)
		})
}

// VenuesTrending returns nearby venues with the most people checked in
func (c *Client) VenuesTrending(ctx context.Context, params *VenuesTrendingParams) (*Result[[]entities.CompactVenue], error) {
	return call(ctx, c, get("venues/trending", params, authUserless),
		array(c, "venues", entities.CompactVenueShape))
}

// VenuesExplore returns recommended venues near a point
func (c *Client) VenuesExplore(ctx context.Context, params *VenuesExploreParams) (*Result[*entities.Recommended], error) {
	return call(ctx, c, get("venues/explore", params, authUserless),
		func(env *envelope.Envelope) (*entities.Recommended, error) {
			keywords, err := optionalObject(c, env, "keywords", entities.KeywordGroupShape)
			if err != nil {
				return nil, err
			}
			warning, err := optionalObject(c, env, "warning", entities.WarningShape)
			if err != nil {
				return nil, err
			}
			groups, err := array(c, "groups", entities.RecommendationGroupShape)(env)
			if err != nil {
				return nil, err
			}
			return &entities.Recommended{Keywords: keywords, Groups: groups, Warning: warning}, nil
		})
}

// VenuesHereNow returns the people checked in to a venue
func (c *Client) VenuesHereNow(ctx context.Context, venueID string, params *VenuesHereNowParams) (*Result[*entities.CheckinGroup], error) {
	return call(ctx, c, get(endpoint("venues", venueID, "herenow"), params, authUserless),
		object(c, "hereNow", entities.CheckinGroupShape))
}

// VenuesLinks returns the pages of a venue on other services
func (c *Client) VenuesLinks(ctx context.Context, venueID string) (*Result[*entities.LinkGroup], error) {
	return call(ctx, c, get(endpoint("venues", venueID, "links"), nil, authUserless),
		object(c, "links", entities.LinkGroupShape))
}

// VenuesAdd creates a venue
func (c *Client) VenuesAdd(ctx context.Context, params *VenueParams) (*Result[*entities.CompleteVenue], error) {
	return call(ctx, c, post("venues/add", params),
		object(c, "venue", entities.CompleteVenueShape))
}

// VenuesFlag reports a problem with a venue, such as mislocated or closed
func (c *Client) VenuesFlag(ctx context.Context, venueID, problem string) (*Result[struct{}], error) {
	return call[struct{}](ctx, c, post(endpoint("venues", venueID, "flag"), flagParams{Problem: problem}), none)
}

// VenuesProposeEdit suggests changes to a venue
func (c *Client) VenuesProposeEdit(ctx context.Context, venueID string, params *VenueParams) (*Result[struct{}], error) {
	return call[struct{}](ctx, c, post(endpoint("venues", venueID, "proposeedit"), params), none)
}
