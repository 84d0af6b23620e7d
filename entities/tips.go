package entities

import (
	"time"

	"github.com/s0up4200/foursquare/mapping"
)

// CompactTip is a tip as it appears in lists
type CompactTip struct {
	ID        string        `json:"id,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitzero"`
	Text      string        `json:"text,omitempty"`
	URL       string        `json:"url,omitempty"`
	Status    string        `json:"status,omitempty"`
	Photo     *Photo        `json:"photo,omitempty"`
	User      *CompactUser  `json:"user,omitempty"`
	Venue     *CompactVenue `json:"venue,omitempty"`
}

// CompleteTip adds the users who saved or completed the tip
type CompleteTip struct {
	CompactTip
	Todo *UserGroups `json:"todo,omitempty"`
	Done *UserGroups `json:"done,omitempty"`
}

// TipGroup is a named list of tips
type TipGroup struct {
	Count int64        `json:"count"`
	Type  string       `json:"type,omitempty"`
	Name  string       `json:"name,omitempty"`
	Items []CompactTip `json:"items,omitempty"`
}

// TipGroups is the tips summary on a complete venue
type TipGroups struct {
	Count  int64      `json:"count"`
	Groups []TipGroup `json:"groups,omitempty"`
}

// Todo is a tip a user has saved
type Todo struct {
	ID        string       `json:"id,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	Tip       *CompleteTip `json:"tip,omitempty"`
}

// TodoGroup is a user's todo list
type TodoGroup struct {
	Count int64  `json:"count"`
	Items []Todo `json:"items,omitempty"`
}

var (
	CompactTipShape  = mapping.NewShape[CompactTip]("CompactTip")
	CompleteTipShape = mapping.NewShape[CompleteTip]("CompleteTip")
	TipGroupShape    = mapping.NewShape[TipGroup]("TipGroup")
	TipGroupsShape   = mapping.NewShape[TipGroups]("TipGroups")
	TodoShape        = mapping.NewShape[Todo]("Todo")
	TodoGroupShape   = mapping.NewShape[TodoGroup]("TodoGroup")
)

func init() {
	CompactTipShape.Define(
		mapping.String("id", func(t *CompactTip) *string { return &t.ID }),
		mapping.Timestamp("createdAt", func(t *CompactTip) *time.Time { return &t.CreatedAt }),
		mapping.String("text", func(t *CompactTip) *string { return &t.Text }),
		mapping.String("url", func(t *CompactTip) *string { return &t.URL }),
		mapping.String("status", func(t *CompactTip) *string { return &t.Status }),
		mapping.Object("photo", PhotoShape, func(t *CompactTip) **Photo { return &t.Photo }),
		mapping.Object("user", CompactUserShape, func(t *CompactTip) **CompactUser { return &t.User }),
		mapping.Object("venue", CompactVenueShape, func(t *CompactTip) **CompactVenue { return &t.Venue }),
	)

	CompleteTipShape.Define(
		mapping.Embed(CompactTipShape, func(t *CompleteTip) *CompactTip { return &t.CompactTip }),
		mapping.Object("todo", UserGroupsShape, func(t *CompleteTip) **UserGroups { return &t.Todo }),
		mapping.Object("done", UserGroupsShape, func(t *CompleteTip) **UserGroups { return &t.Done }),
	)

	TipGroupShape.Define(
		mapping.Long("count", func(g *TipGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *TipGroup) *string { return &g.Type }),
		mapping.String("name", func(g *TipGroup) *string { return &g.Name }),
		mapping.Array("items", CompactTipShape, func(g *TipGroup) *[]CompactTip { return &g.Items }),
	)

	TipGroupsShape.Define(
		mapping.Long("count", func(g *TipGroups) *int64 { return &g.Count }),
		mapping.Array("groups", TipGroupShape, func(g *TipGroups) *[]TipGroup { return &g.Groups }),
	)

	TodoShape.Define(
		mapping.String("id", func(t *Todo) *string { return &t.ID }),
		mapping.Timestamp("createdAt", func(t *Todo) *time.Time { return &t.CreatedAt }),
		mapping.Object("tip", CompleteTipShape, func(t *Todo) **CompleteTip { return &t.Tip }),
	)

	TodoGroupShape.Define(
		mapping.Long("count", func(g *TodoGroup) *int64 { return &g.Count }),
		mapping.Array("items", TodoShape, func(g *TodoGroup) *[]Todo { return &g.Items }),
	)
}
