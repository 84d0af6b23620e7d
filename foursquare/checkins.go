package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
)

// Checkin returns a single checkin. Reading another user's checkin needs the
// signature from the link it was shared with; pass "" for the acting user's.
func (c *Client) Checkin(ctx context.Context, checkinID, signature string) (*Result[*entities.Checkin], error) {
	return call(ctx, c, get(endpoint("checkins", checkinID), checkinParams{Signature: signature}, authUser),
		object(c, "checkin", entities.CheckinShape))
}

// CheckinsAdd checks the acting user in. The result's notifications carry
// the badges, points and mayorship changes the checkin earned.
func (c *Client) CheckinsAdd(ctx context.Context, params *CheckinsAddParams) (*Result[*entities.Checkin], error) {
	return call(ctx, c, post("checkins/add", params),
		object(c, "checkin", entities.CheckinShape))
}

// CheckinsRecent returns recent checkins by friends
func (c *Client) CheckinsRecent(ctx context.Context, params *CheckinsRecentParams) (*Result[[]entities.Checkin], error) {
	return call(ctx, c, get("checkins/recent", params, authUser),
		array(c, "recent", entities.CheckinShape))
}
