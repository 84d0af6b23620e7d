package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// Contact holds the contact details of a user or venue
type Contact struct {
	Email    string `json:"email,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Count is a bare counter object such as a user's badge count
type Count struct {
	Count int64 `json:"count"`
}

// Size is one rendition of a photo
type Size struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// SizeGroup lists the renditions of a photo
type SizeGroup struct {
	Count int64  `json:"count"`
	Items []Size `json:"items,omitempty"`
}

// Source names the application that created a checkin or photo
type Source struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Image is a badge or special image template. The full URL is prefix + size + name.
type Image struct {
	Prefix string `json:"prefix,omitempty"`
	Sizes  []int  `json:"sizes,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Location is a venue or checkin location
type Location struct {
	Address     string  `json:"address,omitempty"`
	CrossStreet string  `json:"crossStreet,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	PostalCode  string  `json:"postalCode,omitempty"`
	Country     string  `json:"country,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	Distance    int     `json:"distance,omitempty"`
	IsFuzzed    bool    `json:"isFuzzed,omitempty"`
}

// Category is a venue category. Top level categories nest their children.
type Category struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	PluralName string     `json:"pluralName,omitempty"`
	Icon       string     `json:"icon,omitempty"`
	Parents    []string   `json:"parents,omitempty"`
	Primary    bool       `json:"primary,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

// Stats are the public venue counters
type Stats struct {
	CheckinsCount int64 `json:"checkinsCount"`
	UsersCount    int64 `json:"usersCount"`
	TipCount      int64 `json:"tipCount"`
}

// Provider identifies an external service a venue is linked to
type Provider struct {
	ID string `json:"id,omitempty"`
}

// Warning is an advisory attached to explore results
type Warning struct {
	Text string `json:"text,omitempty"`
}

var (
	ContactShape   = mapping.NewShape[Contact]("Contact")
	CountShape     = mapping.NewShape[Count]("Count")
	SizeShape      = mapping.NewShape[Size]("Size")
	SizeGroupShape = mapping.NewShape[SizeGroup]("SizeGroup")
	SourceShape    = mapping.NewShape[Source]("Source")
	ImageShape     = mapping.NewShape[Image]("Image")
	LocationShape  = mapping.NewShape[Location]("Location")
	CategoryShape  = mapping.NewShape[Category]("Category")
	StatsShape     = mapping.NewShape[Stats]("Stats")
	ProviderShape  = mapping.NewShape[Provider]("Provider")
	WarningShape   = mapping.NewShape[Warning]("Warning")
)

func init() {
	ContactShape.Define(
		mapping.String("email", func(c *Contact) *string { return &c.Email }),
		mapping.String("facebook", func(c *Contact) *string { return &c.Facebook }),
		mapping.String("twitter", func(c *Contact) *string { return &c.Twitter }),
		mapping.String("phone", func(c *Contact) *string { return &c.Phone }),
	)

	CountShape.Define(
		mapping.Long("count", func(c *Count) *int64 { return &c.Count }),
	)

	SizeShape.Define(
		mapping.String("url", func(s *Size) *string { return &s.URL }),
		mapping.Int("width", func(s *Size) *int { return &s.Width }),
		mapping.Int("height", func(s *Size) *int { return &s.Height }),
	)

	SizeGroupShape.Define(
		mapping.Long("count", func(g *SizeGroup) *int64 { return &g.Count }),
		mapping.Array("items", SizeShape, func(g *SizeGroup) *[]Size { return &g.Items }),
	)

	SourceShape.Define(
		mapping.String("name", func(s *Source) *string { return &s.Name }),
		mapping.String("url", func(s *Source) *string { return &s.URL }),
	)

	ImageShape.Define(
		mapping.String("prefix", func(i *Image) *string { return &i.Prefix }),
		mapping.Primitives("sizes", mapping.CoerceInt, func(i *Image) *[]int { return &i.Sizes }),
		mapping.String("name", func(i *Image) *string { return &i.Name }),
	)

	LocationShape.Define(
		mapping.String("address", func(l *Location) *string { return &l.Address }),
		mapping.String("crossStreet", func(l *Location) *string { return &l.CrossStreet }),
		mapping.String("city", func(l *Location) *string { return &l.City }),
		mapping.String("state", func(l *Location) *string { return &l.State }),
		mapping.String("postalCode", func(l *Location) *string { return &l.PostalCode }),
		mapping.String("country", func(l *Location) *string { return &l.Country }),
		mapping.Double("lat", func(l *Location) *float64 { return &l.Lat }),
		mapping.Double("lng", func(l *Location) *float64 { return &l.Lng }),
		mapping.Int("distance", func(l *Location) *int { return &l.Distance }),
		mapping.Bool("isFuzzed", func(l *Location) *bool { return &l.IsFuzzed }),
	)

	CategoryShape.Define(
		mapping.String("id", func(c *Category) *string { return &c.ID }),
		mapping.String("name", func(c *Category) *string { return &c.Name }),
		mapping.String("pluralName", func(c *Category) *string { return &c.PluralName }),
		mapping.String("icon", func(c *Category) *string { return &c.Icon }),
		mapping.Strings("parents", func(c *Category) *[]string { return &c.Parents }),
		mapping.Bool("primary", func(c *Category) *bool { return &c.Primary }),
		mapping.Array("categories", CategoryShape, func(c *Category) *[]Category { return &c.Categories }),
	)

	StatsShape.Define(
		mapping.Long("checkinsCount", func(s *Stats) *int64 { return &s.CheckinsCount }),
		mapping.Long("usersCount", func(s *Stats) *int64 { return &s.UsersCount }),
		mapping.Long("tipCount", func(s *Stats) *int64 { return &s.TipCount }),
	)

	ProviderShape.Define(
		mapping.String("id", func(p *Provider) *string { return &p.ID }),
	)

	WarningShape.Define(
		mapping.String("text", func(w *Warning) *string { return &w.Text }),
	)
}
