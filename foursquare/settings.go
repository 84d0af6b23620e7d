package foursquare

import (
	"context"

	"github.com/s0up4200/foursquare/entities"
)

// Setting names accepted by SettingSet
const (
	SettingSendToTwitter            = "sendToTwitter"
	SettingSendMayorshipsToTwitter  = "sendMayorshipsToTwitter"
	SettingSendBadgesToTwitter      = "sendBadgesToTwitter"
	SettingSendToFacebook           = "sendToFacebook"
	SettingSendMayorshipsToFacebook = "sendMayorshipsToFacebook"
	SettingSendBadgesToFacebook     = "sendBadgesToFacebook"
	SettingReceivePings             = "receivePings"
	SettingReceiveCommentPings      = "receiveCommentPings"
)

// SettingsAll returns the acting user's settings
func (c *Client) SettingsAll(ctx context.Context) (*Result[*entities.Setting], error) {
	return call(ctx, c, get("settings/all", nil, authUser),
		object(c, "settings", entities.SettingShape))
}

// SettingSet changes one setting and returns the updated settings. The value
// is sent as 1 or 0.
func (c *Client) SettingSet(ctx context.Context, name string, value bool) (*Result[*entities.Setting], error) {
	return call(ctx, c, post(endpoint("settings", name, "set"), boolValueParams{Value: value}),
		object(c, "settings", entities.SettingShape))
}
