package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// CompleteSpecial is a venue special and the user's progress towards it
type CompleteSpecial struct {
	ID                  string        `json:"id,omitempty"`
	Type                string        `json:"type,omitempty"`
	Message             string        `json:"message,omitempty"`
	Description         string        `json:"description,omitempty"`
	FinePrint           string        `json:"finePrint,omitempty"`
	Unlocked            bool          `json:"unlocked,omitempty"`
	Icon                string        `json:"icon,omitempty"`
	Title               string        `json:"title,omitempty"`
	State               string        `json:"state,omitempty"`
	Progress            int           `json:"progress,omitempty"`
	ProgressDescription string        `json:"progressDescription,omitempty"`
	Detail              string        `json:"detail,omitempty"`
	Target              int           `json:"target,omitempty"`
	FriendsHere         []CompactUser `json:"friendsHere,omitempty"`
	Venue               *CompactVenue `json:"venue,omitempty"`
}

// SpecialGroup lists specials found by specials/search
type SpecialGroup struct {
	Count int64             `json:"count"`
	Items []CompleteSpecial `json:"items,omitempty"`
}

var (
	CompleteSpecialShape = mapping.NewShape[CompleteSpecial]("CompleteSpecial")
	SpecialGroupShape    = mapping.NewShape[SpecialGroup]("SpecialGroup")
)

func init() {
	CompleteSpecialShape.Define(
		mapping.String("id", func(s *CompleteSpecial) *string { return &s.ID }),
		mapping.String("type", func(s *CompleteSpecial) *string { return &s.Type }),
		mapping.String("message", func(s *CompleteSpecial) *string { return &s.Message }),
		mapping.String("description", func(s *CompleteSpecial) *string { return &s.Description }),
		mapping.String("finePrint", func(s *CompleteSpecial) *string { return &s.FinePrint }),
		mapping.Bool("unlocked", func(s *CompleteSpecial) *bool { return &s.Unlocked }),
		mapping.String("icon", func(s *CompleteSpecial) *string { return &s.Icon }),
		mapping.String("title", func(s *CompleteSpecial) *string { return &s.Title }),
		mapping.String("state", func(s *CompleteSpecial) *string { return &s.State }),
		mapping.Int("progress", func(s *CompleteSpecial) *int { return &s.Progress }),
		mapping.String("progressDescription", func(s *CompleteSpecial) *string { return &s.ProgressDescription }),
		mapping.String("detail", func(s *CompleteSpecial) *string { return &s.Detail }),
		mapping.Int("target", func(s *CompleteSpecial) *int { return &s.Target }),
		mapping.Array("friendsHere", CompactUserShape, func(s *CompleteSpecial) *[]CompactUser { return &s.FriendsHere }),
		mapping.Object("venue", CompactVenueShape, func(s *CompleteSpecial) **CompactVenue { return &s.Venue }),
	)

	SpecialGroupShape.Define(
		mapping.Long("count", func(g *SpecialGroup) *int64 { return &g.Count }),
		mapping.Array("items", CompleteSpecialShape, func(g *SpecialGroup) *[]CompleteSpecial { return &g.Items }),
	)
}
