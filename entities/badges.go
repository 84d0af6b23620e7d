package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// Badge is a badge a user has unlocked or can unlock
type Badge struct {
	ID          string         `json:"id,omitempty"`
	BadgeID     string         `json:"badgeId,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Hint        string         `json:"hint,omitempty"`
	Image       *Image         `json:"image,omitempty"`
	Unlocks     []CheckinGroup `json:"unlocks,omitempty"`
}

// BadgeSet groups badge ids for display. Sets nest.
type BadgeSet struct {
	Type   string     `json:"type,omitempty"`
	Name   string     `json:"name,omitempty"`
	Image  *Image     `json:"image,omitempty"`
	Items  []string   `json:"items,omitempty"`
	Groups []BadgeSet `json:"groups,omitempty"`
}

// BadgeSets is the sets key of users/{id}/badges
type BadgeSets struct {
	Groups []BadgeSet `json:"groups,omitempty"`
}

// Badges is the users/{id}/badges result. The API returns badges as an
// object keyed by badge id; Badges holds them ordered by that id.
type Badges struct {
	Sets           *BadgeSets `json:"sets,omitempty"`
	Badges         []Badge    `json:"badges,omitempty"`
	DefaultSetType string     `json:"defaultSetType,omitempty"`
}

var (
	BadgeShape     = mapping.NewShape[Badge]("Badge")
	BadgeSetShape  = mapping.NewShape[BadgeSet]("BadgeSet")
	BadgeSetsShape = mapping.NewShape[BadgeSets]("BadgeSets")
)

func init() {
	BadgeShape.Define(
		mapping.String("id", func(b *Badge) *string { return &b.ID }),
		mapping.String("badgeId", func(b *Badge) *string { return &b.BadgeID }),
		mapping.String("name", func(b *Badge) *string { return &b.Name }),
		mapping.String("description", func(b *Badge) *string { return &b.Description }),
		mapping.String("hint", func(b *Badge) *string { return &b.Hint }),
		mapping.Object("image", ImageShape, func(b *Badge) **Image { return &b.Image }),
		mapping.Array("unlocks", CheckinGroupShape, func(b *Badge) *[]CheckinGroup { return &b.Unlocks }),
	)

	BadgeSetShape.Define(
		mapping.String("type", func(s *BadgeSet) *string { return &s.Type }),
		mapping.String("name", func(s *BadgeSet) *string { return &s.Name }),
		mapping.Object("image", ImageShape, func(s *BadgeSet) **Image { return &s.Image }),
		mapping.Strings("items", func(s *BadgeSet) *[]string { return &s.Items }),
		mapping.Array("groups", BadgeSetShape, func(s *BadgeSet) *[]BadgeSet { return &s.Groups }),
	)

	BadgeSetsShape.Define(
		mapping.Array("groups", BadgeSetShape, func(s *BadgeSets) *[]BadgeSet { return &s.Groups }),
	)
}
