package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// Keyword is a search suggestion returned by venues/explore
type Keyword struct {
	DisplayName string `json:"displayName,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
}

// KeywordGroup lists explore keywords
type KeywordGroup struct {
	Count int64     `json:"count"`
	Items []Keyword `json:"items,omitempty"`
}

// Reason explains why a venue was recommended
type Reason struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}

// ReasonGroup lists the reasons for a recommendation
type ReasonGroup struct {
	Count int64    `json:"count"`
	Items []Reason `json:"items,omitempty"`
}

// Recommendation is a venue suggested by venues/explore
type Recommendation struct {
	Reasons *ReasonGroup  `json:"reasons,omitempty"`
	Venue   *CompactVenue `json:"venue,omitempty"`
	Tips    []CompactTip  `json:"tips,omitempty"`
}

// RecommendationGroup is a named list of recommendations
type RecommendationGroup struct {
	Type  string           `json:"type,omitempty"`
	Name  string           `json:"name,omitempty"`
	Items []Recommendation `json:"items,omitempty"`
}

// Recommended is the venues/explore result
type Recommended struct {
	Keywords *KeywordGroup         `json:"keywords,omitempty"`
	Groups   []RecommendationGroup `json:"groups,omitempty"`
	Warning  *Warning              `json:"warning,omitempty"`
}

var (
	KeywordShape             = mapping.NewShape[Keyword]("Keyword")
	KeywordGroupShape        = mapping.NewShape[KeywordGroup]("KeywordGroup")
	ReasonShape              = mapping.NewShape[Reason]("Reason")
	ReasonGroupShape         = mapping.NewShape[ReasonGroup]("ReasonGroup")
	RecommendationShape      = mapping.NewShape[Recommendation]("Recommendation")
	RecommendationGroupShape = mapping.NewShape[RecommendationGroup]("RecommendationGroup")
)

func init() {
	KeywordShape.Define(
		mapping.String("displayName", func(k *Keyword) *string { return &k.DisplayName }),
		mapping.String("keyword", func(k *Keyword) *string { return &k.Keyword }),
	)

	KeywordGroupShape.Define(
		mapping.Long("count", func(g *KeywordGroup) *int64 { return &g.Count }),
		mapping.Array("items", KeywordShape, func(g *KeywordGroup) *[]Keyword { return &g.Items }),
	)

	ReasonShape.Define(
		mapping.String("type", func(r *Reason) *string { return &r.Type }),
		mapping.String("message", func(r *Reason) *string { return &r.Message }),
	)

	ReasonGroupShape.Define(
		mapping.Long("count", func(g *ReasonGroup) *int64 { return &g.Count }),
		mapping.Array("items", ReasonShape, func(g *ReasonGroup) *[]Reason { return &g.Items }),
	)

	RecommendationShape.Define(
		mapping.Object("reasons", ReasonGroupShape, func(r *Recommendation) **ReasonGroup { return &r.Reasons }),
		mapping.Object("venue", CompactVenueShape, func(r *Recommendation) **CompactVenue { return &r.Venue }),
		mapping.Array("tips", CompactTipShape, func(r *Recommendation) *[]CompactTip { return &r.Tips }),
	)

	RecommendationGroupShape.Define(
		mapping.String("type", func(g *RecommendationGroup) *string { return &g.Type }),
		mapping.String("name", func(g *RecommendationGroup) *string { return &g.Name }),
		mapping.Array("items", RecommendationShape, func(g *RecommendationGroup) *[]Recommendation { return &g.Items }),
	)
}
