package foursquare

import (
	"context"
	"fmt"

	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/envelope"
	"github.com/s0up4200/foursquare/mapping"
)

// self substitutes the acting user for an empty id
func self(userID string) string {
	if userID == "" {
		return "self"
	}
	return userID
}

// User returns a user's profile. An empty id means the acting user.
func (c *Client) User(ctx context.Context, userID string) (*Result[*entities.CompleteUser], error) {
	return call(ctx, c, get(endpoint("users", self(userID)), nil, authUser),
		object(c, "user", entities.CompleteUserShape))
}

// UsersLeaderboard returns the acting user's friends leaderboard
func (c *Client) UsersLeaderboard(ctx context.Context, params *LeaderboardParams) (*Result[*entities.LeaderboardItemGroup], error) {
	return call(ctx, c, get("users/leaderboard", params, authUser),
		object(c, "leaderboard", entities.LeaderboardItemGroupShape))
}

// UsersBadges returns a user's badges and badge sets. The badges object is
// keyed by badge id and returned ordered by that id.
func (c *Client) UsersBadges(ctx context.Context, userID string) (*Result[*entities.Badges], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "badges"), nil, authUser),
		func(env *envelope.Envelope) (*entities.Badges, error) {
			sets, err := object(c, "sets", entities.BadgeSetsShape)(env)
			if err != nil {
				return nil, err
			}
			raw, err := env.Value("badges")
			if err != nil {
				return nil, err
			}
			badges, err := mapping.MapHash(c.mapper, entities.BadgeShape, raw)
			if err != nil {
				return nil, err
			}
			result := &entities.Badges{Sets: sets, Badges: badges}
			if env.Has("defaultSetType") {
				if result.DefaultSetType, err = env.String("defaultSetType"); err != nil {
					return nil, err
				}
			}
			return result, nil
		})
}

// UsersCheckins returns the acting user's checkin history
func (c *Client) UsersCheckins(ctx context.Context, userID string, params *UsersCheckinsParams) (*Result[*entities.CheckinGroup], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "checkins"), params, authUser),
		object(c, "checkins", entities.CheckinGroupShape))
}

// UsersTips returns the tips a user has left
func (c *Client) UsersTips(ctx context.Context, userID string, params *UsersTipsParams) (*Result[*entities.TipGroup], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "tips"), params, authUser),
		object(c, "tips", entities.TipGroupShape))
}

// UsersTodos returns a user's todo list
func (c *Client) UsersTodos(ctx context.Context, userID string, params *UsersTodosParams) (*Result[*entities.TodoGroup], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "todos"), params, authUser),
		object(c, "todos", entities.TodoGroupShape))
}

// UsersVenueHistory returns the venues a user has been to
func (c *Client) UsersVenueHistory(ctx context.Context, userID string, params *UsersVenueHistoryParams) (*Result[*entities.VenueHistoryGroup], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "venuehistory"), params, authUser),
		object(c, "venues", entities.VenueHistoryGroupShape))
}

// UsersSearch finds users by phone, email, twitter, facebook id or name
func (c *Client) UsersSearch(ctx context.Context, params *UsersSearchParams) (*Result[[]entities.CompactUser], error) {
	return call(ctx, c, get("users/search", params, authUser),
		array(c, "results", entities.CompactUserShape))
}

// UsersRequests returns pending friend requests
func (c *Client) UsersRequests(ctx context.Context) (*Result[[]entities.CompactUser], error) {
	return call(ctx, c, get("users/requests", nil, authUser),
		array(c, "requests", entities.CompactUserShape))
}

// UsersFriends returns a user's friends
func (c *Client) UsersFriends(ctx context.Context, userID string) (*Result[*entities.UserGroup], error) {
	return call(ctx, c, get(endpoint("users", self(userID), "friends"), nil, authUser),
		object(c, "friends", entities.UserGroupShape))
}

// UsersRequest sends a friend request
func (c *Client) UsersRequest(ctx context.Context, userID string) (*Result[*entities.CompleteUser], error) {
	return c.userAction(ctx, userID, "request", nil)
}

// UsersUnfriend removes a friend
func (c *Client) UsersUnfriend(ctx context.Context, userID string) (*Result[*entities.CompleteUser], error) {
	return c.userAction(ctx, userID, "unfriend", nil)
}

// UsersApprove approves a pending friend request
func (c *Client) UsersApprove(ctx context.Context, userID string) (*Result[*entities.CompleteUser], error) {
	return c.userAction(ctx, userID, "approve", nil)
}

// UsersDeny denies a pending friend request
func (c *Client) UsersDeny(ctx context.Context, userID string) (*Result[*entities.CompleteUser], error) {
	return c.userAction(ctx, userID, "deny", nil)
}

// UsersSetPings toggles pings for checkins by a friend
func (c *Client) UsersSetPings(ctx context.Context, userID string, value bool) (*Result[*entities.CompleteUser], error) {
	return c.userAction(ctx, userID, "setpings", pingsParams{Value: value})
}

func (c *Client) userAction(ctx context.Context, userID, action string, params any) (*Result[*entities.CompleteUser], error) {
	if userID == "" {
		return nil, fmt.Errorf("users/%s: user id is required", action)
	}
	return call(ctx, c, post(endpoint("users", userID, action), params),
		object(c, "user", entities.CompleteUserShape))
}
