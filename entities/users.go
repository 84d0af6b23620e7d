package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// CompactUser is the user summary embedded in checkins, tips and lists
type CompactUser struct {
	ID           string `json:"id,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Photo        string `json:"photo,omitempty"`
	Gender       string `json:"gender,omitempty"`
	HomeCity     string `json:"homeCity,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Type         string `json:"type,omitempty"`
}

// CompleteUser is the full profile returned by users/{id}
type CompleteUser struct {
	CompactUser
	Contact    *Contact      `json:"contact,omitempty"`
	Pings      bool          `json:"pings,omitempty"`
	Badges     *Count        `json:"badges,omitempty"`
	Mayorships *VenueGroup   `json:"mayorships,omitempty"`
	Checkins   *CheckinGroup `json:"checkins,omitempty"`
	Friends    *FriendGroups `json:"friends,omitempty"`
	Following  *Count        `json:"following,omitempty"`
	Requests   *Count        `json:"requests,omitempty"`
	Tips       *Count        `json:"tips,omitempty"`
	Todos      *Count        `json:"todos,omitempty"`
	Photos     *Count        `json:"photos,omitempty"`
	Scores     *Scores       `json:"scores,omitempty"`
	ReferralID string        `json:"referralId,omitempty"`
}

// UserGroup is a counted, optionally typed list of users
type UserGroup struct {
	Count int64         `json:"count"`
	Type  string        `json:"type,omitempty"`
	Name  string        `json:"name,omitempty"`
	Items []CompactUser `json:"items,omitempty"`
}

// UserGroups is a counted list of user groups
type UserGroups struct {
	Count  int64       `json:"count"`
	Groups []UserGroup `json:"groups,omitempty"`
}

// FriendGroup is one group of a user's friends, such as "friends" or "others"
type FriendGroup struct {
	Count int64         `json:"count"`
	Type  string        `json:"type,omitempty"`
	Name  string        `json:"name,omitempty"`
	Items []CompactUser `json:"items,omitempty"`
}

// FriendGroups is the friends summary on a complete user
type FriendGroups struct {
	Count  int64         `json:"count"`
	Groups []FriendGroup `json:"groups,omitempty"`
}

var (
	CompactUserShape  = mapping.NewShape[CompactUser]("CompactUser")
	CompleteUserShape = mapping.NewShape[CompleteUser]("CompleteUser")
	UserGroupShape    = mapping.NewShape[UserGroup]("UserGroup")
	UserGroupsShape   = mapping.NewShape[UserGroups]("UserGroups")
	FriendGroupShape  = mapping.NewShape[FriendGroup]("FriendGroup")
	FriendGroupsShape = mapping.NewShape[FriendGroups]("FriendGroups")
)

func init() {
	CompactUserShape.Define(
		mapping.String("id", func(u *CompactUser) *string { return &u.ID }),
		mapping.String("firstName", func(u *CompactUser) *string { return &u.FirstName }),
		mapping.String("lastName", func(u *CompactUser) *string { return &u.LastName }),
		mapping.String("photo", func(u *CompactUser) *string { return &u.Photo }),
		mapping.String("gender", func(u *CompactUser) *string { return &u.Gender }),
		mapping.String("homeCity", func(u *CompactUser) *string { return &u.HomeCity }),
		mapping.String("relationship", func(u *CompactUser) *string { return &u.Relationship }),
		mapping.String("type", func(u *CompactUser) *string { return &u.Type }),
	)

	CompleteUserShape.Define(
		mapping.Embed(CompactUserShape, func(u *CompleteUser) *CompactUser { return &u.CompactUser }),
		mapping.Object("contact", ContactShape, func(u *CompleteUser) **Contact { return &u.Contact }),
		mapping.Bool("pings", func(u *CompleteUser) *bool { return &u.Pings }),
		mapping.Object("badges", CountShape, func(u *CompleteUser) **Count { return &u.Badges }),
		mapping.Object("mayorships", VenueGroupShape, func(u *CompleteUser) **VenueGroup { return &u.Mayorships }),
		mapping.Object("checkins", CheckinGroupShape, func(u *CompleteUser) **CheckinGroup { return &u.Checkins }),
		mapping.Object("friends", FriendGroupsShape, func(u *CompleteUser) **FriendGroups { return &u.Friends }),
		mapping.Object("following", CountShape, func(u *CompleteUser) **Count { return &u.Following }),
		mapping.Object("requests", CountShape, func(u *CompleteUser) **Count { return &u.Requests }),
		mapping.Object("tips", CountShape, func(u *CompleteUser) **Count { return &u.Tips }),
		mapping.Object("todos", CountShape, func(u *CompleteUser) **Count { return &u.Todos }),
		mapping.Object("photos", CountShape, func(u *CompleteUser) **Count { return &u.Photos }),
		mapping.Object("scores", ScoresShape, func(u *CompleteUser) **Scores { return &u.Scores }),
		mapping.String("referralId", func(u *CompleteUser) *string { return &u.ReferralID }),
	)

	UserGroupShape.Define(
		mapping.Long("count", func(g *UserGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *UserGroup) *string { return &g.Type }),
		mapping.String("name", func(g *UserGroup) *string { return &g.Name }),
		mapping.Array("items", CompactUserShape, func(g *UserGroup) *[]CompactUser { return &g.Items }),
	)

	UserGroupsShape.Define(
		mapping.Long("count", func(g *UserGroups) *int64 { return &g.Count }),
		mapping.Array("groups", UserGroupShape, func(g *UserGroups) *[]UserGroup { return &g.Groups }),
	)

	FriendGroupShape.Define(
		mapping.Long("count", func(g *FriendGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *FriendGroup) *string { return &g.Type }),
		mapping.String("name", func(g *FriendGroup) *string { return &g.Name }),
		mapping.Array("items", CompactUserShape, func(g *FriendGroup) *[]CompactUser { return &g.Items }),
	)

	FriendGroupsShape.Define(
		mapping.Long("count", func(g *FriendGroups) *int64 { return &g.Count }),
		mapping.Array("groups", FriendGroupShape, func(g *FriendGroups) *[]FriendGroup { return &g.Groups }),
	)
}
