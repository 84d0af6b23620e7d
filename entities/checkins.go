package entities

import (
	"time"

	"github.com/s0up4200/foursquare/mapping"
)

// Checkin is a user's presence at a venue, or a venueless shout
type Checkin struct {
	ID        string        `json:"id,omitempty"`
	Type      string        `json:"type,omitempty"`
	Private   bool          `json:"private,omitempty"`
	User      *CompactUser  `json:"user,omitempty"`
	Venue     *CompactVenue `json:"venue,omitempty"`
	Location  *Location     `json:"location,omitempty"`
	Shout     string        `json:"shout,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitzero"`
	TimeZone  string        `json:"timeZone,omitempty"`
	Source    *Source       `json:"source,omitempty"`
	Photos    *PhotoGroup   `json:"photos,omitempty"`
	Comments  *CommentGroup `json:"comments,omitempty"`
	IsMayor   bool          `json:"isMayor,omitempty"`
}

// CheckinGroup is a counted list of checkins
type CheckinGroup struct {
	Count int64     `json:"count"`
	Type  string    `json:"type,omitempty"`
	Name  string    `json:"name,omitempty"`
	Items []Checkin `json:"items,omitempty"`
}

// Comment is a comment on a checkin
type Comment struct {
	ID        string       `json:"id,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	User      *CompactUser `json:"user,omitempty"`
	Text      string       `json:"text,omitempty"`
}

// CommentGroup lists the comments on a checkin
type CommentGroup struct {
	Count int64     `json:"count"`
	Items []Comment `json:"items,omitempty"`
}

var (
	CheckinShape      = mapping.NewShape[Checkin]("Checkin")
	CheckinGroupShape = mapping.NewShape[CheckinGroup]("CheckinGroup")
	CommentShape      = mapping.NewShape[Comment]("Comment")
	CommentGroupShape = mapping.NewShape[CommentGroup]("CommentGroup")
)

func init() {
	CheckinShape.Define(
		mapping.String("id", func(c *Checkin) *string { return &c.ID }),
		mapping.String("type", func(c *Checkin) *string { return &c.Type }),
		mapping.Bool("private", func(c *Checkin) *bool { return &c.Private }),
		mapping.Object("user", CompactUserShape, func(c *Checkin) **CompactUser { return &c.User }),
		mapping.Object("venue", CompactVenueShape, func(c *Checkin) **CompactVenue { return &c.Venue }),
		mapping.Object("location", LocationShape, func(c *Checkin) **Location { return &c.Location }),
		mapping.String("shout", func(c *Checkin) *string { return &c.Shout }),
		mapping.Timestamp("createdAt", func(c *Checkin) *time.Time { return &c.CreatedAt }),
		mapping.String("timeZone", func(c *Checkin) *string { return &c.TimeZone }),
		mapping.Object("source", SourceShape, func(c *Checkin) **Source { return &c.Source }),
		mapping.Object("photos", PhotoGroupShape, func(c *Checkin) **PhotoGroup { return &c.Photos }),
		mapping.Object("comments", CommentGroupShape, func(c *Checkin) **CommentGroup { return &c.Comments }),
		mapping.Bool("isMayor", func(c *Checkin) *bool { return &c.IsMayor }),
	)

	CheckinGroupShape.Define(
		mapping.Long("count", func(g *CheckinGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *CheckinGroup) *string { return &g.Type }),
		mapping.String("name", func(g *CheckinGroup) *string { return &g.Name }),
		mapping.Array("items", CheckinShape, func(g *CheckinGroup) *[]Checkin { return &g.Items }),
	)

	CommentShape.Define(
		mapping.String("id", func(c *Comment) *string { return &c.ID }),
		mapping.Timestamp("createdAt", func(c *Comment) *time.Time { return &c.CreatedAt }),
		mapping.Object("user", CompactUserShape, func(c *Comment) **CompactUser { return &c.User }),
		mapping.String("text", func(c *Comment) *string { return &c.Text }),
	)

	CommentGroupShape.Define(
		mapping.Long("count", func(g *CommentGroup) *int64 { return &g.Count }),
		mapping.Array("items", CommentShape, func(g *CommentGroup) *[]Comment { return &g.Items }),
	)
}
