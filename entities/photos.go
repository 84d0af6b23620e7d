package entities

import (
	"time"

	"github.com/s0up4200/foursquare/mapping"
)

// Photo is a photo attached to a checkin, tip or venue
type Photo struct {
	ID        string       `json:"id,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
	URL       string       `json:"url,omitempty"`
	Sizes     *SizeGroup   `json:"sizes,omitempty"`
	Source    *Source      `json:"source,omitempty"`
	User      *CompactUser `json:"user,omitempty"`
	Tip       *CompactTip  `json:"tip,omitempty"`
	Checkin   *Checkin     `json:"checkin,omitempty"`
}

// Largest returns the widest rendition, or nil when the photo has no sizes
func (p *Photo) Largest() *Size {
	if p.Sizes == nil || len(p.Sizes.Items) == 0 {
		return nil
	}
	best := &p.Sizes.Items[0]
	for i := range p.Sizes.Items {
		if p.Sizes.Items[i].Width > best.Width {
			best = &p.Sizes.Items[i]
		}
	}
	return best
}

// PhotoGroup is a named list of photos
type PhotoGroup struct {
	Count int64   `json:"count"`
	Type  string  `json:"type,omitempty"`
	Name  string  `json:"name,omitempty"`
	Items []Photo `json:"items,omitempty"`
}

// PhotoGroups is the photos summary on a complete venue
type PhotoGroups struct {
	Count  int64        `json:"count"`
	Groups []PhotoGroup `json:"groups,omitempty"`
}

var (
	PhotoShape       = mapping.NewShape[Photo]("Photo")
	PhotoGroupShape  = mapping.NewShape[PhotoGroup]("PhotoGroup")
	PhotoGroupsShape = mapping.NewShape[PhotoGroups]("PhotoGroups")
)

func init() {
	PhotoShape.Define(
		mapping.String("id", func(p *Photo) *string { return &p.ID }),
		mapping.Timestamp("createdAt", func(p *Photo) *time.Time { return &p.CreatedAt }),
		mapping.String("url", func(p *Photo) *string { return &p.URL }),
		mapping.Object("sizes", SizeGroupShape, func(p *Photo) **SizeGroup { return &p.Sizes }),
		mapping.Object("source", SourceShape, func(p *Photo) **Source { return &p.Source }),
		mapping.Object("user", CompactUserShape, func(p *Photo) **CompactUser { return &p.User }),
		mapping.Object("tip", CompactTipShape, func(p *Photo) **CompactTip { return &p.Tip }),
		mapping.Object("checkin", CheckinShape, func(p *Photo) **Checkin { return &p.Checkin }),
	)

	PhotoGroupShape.Define(
		mapping.Long("count", func(g *PhotoGroup) *int64 { return &g.Count }),
		mapping.String("type", func(g *PhotoGroup) *string { return &g.Type }),
		mapping.String("name", func(g *PhotoGroup) *string { return &g.Name }),
		mapping.Array("items", PhotoShape, func(g *PhotoGroup) *[]Photo { return &g.Items }),
	)

	PhotoGroupsShape.Define(
		mapping.Long("count", func(g *PhotoGroups) *int64 { return &g.Count }),
		mapping.Array("groups", PhotoGroupShape, func(g *PhotoGroups) *[]PhotoGroup { return &g.Groups }),
	)
}
