package entities

import (
	"time"

	"github.com/s0up4200/foursquare/mapping"
)

// CompactVenue is the venue summary used in search results, checkins and lists
type CompactVenue struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Contact    *Contact          `json:"contact,omitempty"`
	Location   *Location         `json:"location,omitempty"`
	Categories []Category        `json:"categories,omitempty"`
	Verified   bool              `json:"verified,omitempty"`
	Stats      *Stats            `json:"stats,omitempty"`
	URL        string            `json:"url,omitempty"`
	HereNow    *HereNow          `json:"hereNow,omitempty"`
	Specials   []CompleteSpecial `json:"specials,omitempty"`
	Todos      *Count            `json:"todos,omitempty"`
}

// PrimaryCategory returns the category flagged primary, or the first one
func (v *CompactVenue) PrimaryCategory() *Category {
	for i := range v.Categories {
		if v.Categories[i].Primary {
			return &v.Categories[i]
		}
	}
	if len(v.Categories) > 0 {
		return &v.Categories[0]
	}
	return nil
}

// CompleteVenue is the full venue returned by venues/{id}
type CompleteVenue struct {
	CompactVenue
	CreatedAt      time.Time         `json:"createdAt,omitzero"`
	Mayor          *Mayor            `json:"mayor,omitempty"`
	Tips           *TipGroups        `json:"tips,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	ShortURL       string            `json:"shortUrl,omitempty"`
	TimeZone       string            `json:"timeZone,omitempty"`
	SpecialsNearby []CompleteSpecial `json:"specialsNearby,omitempty"`
	Photos         *PhotoGroups      `json:"photos,omitempty"`
	Description    string            `json:"description,omitempty"`
	BeenHere       *Count            `json:"beenHere,omitempty"`
}

// HereNow counts the people currently checked in to a venue
type HereNow struct {
	Count  int64          `json:"count"`
	Groups []CheckinGroup `json:"groups,omitempty"`
}

// VenueGroup is a named list of venues, such as a search result group
type VenueGroup struct {
	Count int64          `json:"count"`
	Type  string         `json:"type,omitempty"`
	Name  string         `json:"name,omitempty"`
	Items []CompactVenue `json:"items,omitempty"`
}

// Venues flattens the items of several groups, keeping group order
func Venues(groups []VenueGroup) []CompactVenue {
	var out []CompactVenue
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Mayor is the current mayor of a venue
type Mayor struct {
	Count int64        `json:"count"`
	User  *CompactUser `json:"user,omitempty"`
}

// VenueHistory is one venue a user has been to
type VenueHistory struct {
	BeenHere int64         `json:"beenHere"`
	Venue    *CompactVenue `json:"venue,omitempty"`
}

// VenueHistoryGroup is a user's venue history
type VenueHistoryGroup struct {
	Count int64          `json:"count"`
	Items []VenueHistory `json:"items,omitempty"`
}

// Link points a venue at its page on another service
type Link struct {
	Provider *Provider `json:"provider,omitempty"`
	LinkedID string    `json:"linkedId,omitempty"`
	URL      string    `json:"url,omitempty"`
}

// LinkGroup lists the links of a venue
type LinkGroup struct {
	Count int64  `json:"count"`
	Items []Link `json:"items,omitempty"`
}

var (
	CompactVenueShape      = mapping.NewShape[CompactVenue]("CompactVenue")
	CompleteVenueShape     = mapping.NewShape[CompleteVenue]("CompleteVenue")
	HereNowShape           = mapping.NewShape[HereNow]("HereNow")
	VenueGroupShape        = mapping.NewShape[VenueGroup]("VenueGroup")
	MayorShape             = mapping.NewShape[Mayor]("Mayor")
	VenueHistoryShape      = mapping.NewShape[VenueHistory]("VenueHistory")
	VenueHistoryGroupShape = mapping.NewShape[VenueHistoryGroup]("VenueHistoryGroup")
	LinkShape              = mapping.NewShape[Link]("Link")
	LinkGroupShape         = mapping.NewShape[LinkGroup]("LinkGroup")
)

func init() {
	CompactVenueShape.Define(
		mapping.String("id", func(v *CompactVenue) *string { return &v.ID }),
		mapping.String("name", func(v *CompactVenue) *string { return &v.Name }),
		mapping.Object("contact", ContactShape, func(v *CompactVenue) **Contact { return &v.Contact }),
		mapping.Object("location", LocationShape, func(v *CompactVenue) **Location { return &v.Location }),
		mapping.Array("categories", CategoryShape, func(v *CompactVenue) *[]Category { return &v.Categories }),
		mapping.Bool("verified", func(v *CompactVenue) *bool { return &v.Verified }),
		mapping.Object("stats", StatsShape, func(v *CompactVenue) **Stats { return &v.Stats }),
		mapping.String("url", func(v *CompactVenue) *string { return &v.URL }),
		mapping.Object("hereNow", HereNowShape, func(v *CompactVenue) **HereNow { return &v.HereNow }),
		mapping.Array("specials", CompleteSpecialShape, func(v *CompactVenue) *[]CompleteSpecial { return &v.Specials }),
		mapping.Object("todos", CountShape, func(v *CompactVenue) **Count { return &v.Todos }),
	)

	CompleteVenueShape.Define(
		mapping.Embed(CompactVenueShape, func(v *CompleteVenue) *CompactVenue { return &v.CompactVenue }),
		mapping.Timestamp("createdAt", func(v *CompleteVenue) *time.Time { return &v.CreatedAt }),
		mapping.Object("mayor", MayorShape, func(v *CompleteVenue) **Mayor { return &v.Mayor }),
		mapping.Object("tips", TipGroupsShape, func(v *CompleteVenue) **TipGroups { return &v.Tips }),
		mapping.Strings("tags", func(v *CompleteVenue) *[]string { return &v.Tags }),
		mapping.String("shortUrl", func(v *CompleteVenue) *string { return &v.ShortURL }),
		mapping.String("timeZone", func(v *CompleteVenue) *string { return &v.TimeZone }),
		mapping.Array("specialsNearby", CompleteSpecialShape, func(v *CompleteVenue) *[]CompleteSpecial { return &v.SpecialsNearby }),
		mapping.Object("photos", PhotoGroupsShape, func(v *CompleteVenue) **PhotoGroups { return &v.Photos }),
		mapping.String("description", func(v *CompleteVenue) *string { return &v.Description }),
		mapping.Object("beenHere", CountShape, func(v *CompleteVenue) **Count { return &v.BeenHere }),
	)

	HereNowShape.Define(
		mapping.Long("count", func(h *HereNow) *int64 { return &h.Count }),
		mapping.Array("groups", CheckinGroupShape, func(h *HereNow) *[]CheckinGroup { return &h.Groups }),
	)

	VenueGroupShape.Define(
		mapping.Long("count", func(g *VenueGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *VenueGroup) *string { return &g.Type }),
		mapping.String("name", func(g *VenueGroup) *string { return &g.Name }),
		mapping.Array("items", CompactVenueShape, func(g *VenueGroup) *[]CompactVenue { return &g.Items }),
	)

	MayorShape.Define(
		mapping.Long("count", func(m *Mayor) *int64 { return &m.Count }),
		mapping.Object("user", CompactUserShape, func(m *Mayor) **CompactUser { return &m.User }),
	)

	VenueHistoryShape.Define(
		mapping.Long("beenHere", func(h *VenueHistory) *int64 { return &h.BeenHere }),
		mapping.Object("venue", CompactVenueShape, func(h *VenueHistory) **CompactVenue { return &h.Venue }),
	)

	VenueHistoryGroupShape.Define(
		mapping.Long("count", func(g *VenueHistoryGroup) *int64 { return &g.Count }),
		mapping.Array("items", VenueHistoryShape, func(g *VenueHistoryGroup) *[]VenueHistory { return &g.Items }),
	)

	LinkShape.Define(
		mapping.Object("provider", ProviderShape, func(l *Link) **Provider { return &l.Provider }),
		mapping.String("linkedId", func(l *Link) *string { return &l.LinkedID }),
		mapping.String("url", func(l *Link) *string { return &l.URL }),
	)

	LinkGroupShape.Define(
		mapping.Long("count", func(g *LinkGroup) *int64 { return &g.Count }),
		mapping.Array("items", LinkShape, func(g *LinkGroup) *[]Link { return &g.Items }),
	)
}
