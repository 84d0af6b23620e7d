package entities

import (
	"maps"
	"slices"

	"github.com/s0up4200/foursquare/mapping"
)

var registry = map[string]mapping.Decoder{
	"Badge":                BadgeShape.Decoder(),
	"BadgeSet":             BadgeSetShape.Decoder(),
	"BadgeSets":            BadgeSetsShape.Decoder(),
	"Category":             CategoryShape.Decoder(),
	"Checkin":              CheckinShape.Decoder(),
	"CheckinGroup":         CheckinGroupShape.Decoder(),
	"Comment":              CommentShape.Decoder(),
	"CommentGroup":         CommentGroupShape.Decoder(),
	"CompactTip":           CompactTipShape.Decoder(),
	"CompactUser":          CompactUserShape.Decoder(),
	"CompactVenue":         CompactVenueShape.Decoder(),
	"CompleteSpecial":      CompleteSpecialShape.Decoder(),
	"CompleteTip":          CompleteTipShape.Decoder(),
	"CompleteUser":         CompleteUserShape.Decoder(),
	"CompleteVenue":        CompleteVenueShape.Decoder(),
	"Contact":              ContactShape.Decoder(),
	"Count":                CountShape.Decoder(),
	"FriendGroup":          FriendGroupShape.Decoder(),
	"FriendGroups":         FriendGroupsShape.Decoder(),
	"HereNow":              HereNowShape.Decoder(),
	"Image":                ImageShape.Decoder(),
	"Keyword":              KeywordShape.Decoder(),
	"KeywordGroup":         KeywordGroupShape.Decoder(),
	"LeaderboardItem":      LeaderboardItemShape.Decoder(),
	"LeaderboardItemGroup": LeaderboardItemGroupShape.Decoder(),
	"Link":                 LinkShape.Decoder(),
	"LinkGroup":            LinkGroupShape.Decoder(),
	"Location":             LocationShape.Decoder(),
	"Mayor":                MayorShape.Decoder(),
	"Photo":                PhotoShape.Decoder(),
	"PhotoGroup":           PhotoGroupShape.Decoder(),
	"PhotoGroups":          PhotoGroupsShape.Decoder(),
	"Provider":             ProviderShape.Decoder(),
	"Reason":               ReasonShape.Decoder(),
	"ReasonGroup":          ReasonGroupShape.Decoder(),
	"Recommendation":       RecommendationShape.Decoder(),
	"RecommendationGroup":  RecommendationGroupShape.Decoder(),
	"Score":                ScoreShape.Decoder(),
	"Scores":               ScoresShape.Decoder(),
	"Setting":              SettingShape.Decoder(),
	"Size":                 SizeShape.Decoder(),
	"SizeGroup":            SizeGroupShape.Decoder(),
	"Source":               SourceShape.Decoder(),
	"SpecialGroup":         SpecialGroupShape.Decoder(),
	"Stats":                StatsShape.Decoder(),
	"TipGroup":             TipGroupShape.Decoder(),
	"TipGroups":            TipGroupsShape.Decoder(),
	"Todo":                 TodoShape.Decoder(),
	"TodoGroup":            TodoGroupShape.Decoder(),
	"UserGroup":            UserGroupShape.Decoder(),
	"UserGroups":           UserGroupsShape.Decoder(),
	"VenueGroup":           VenueGroupShape.Decoder(),
	"VenueHistory":         VenueHistoryShape.Decoder(),
	"VenueHistoryGroup":    VenueHistoryGroupShape.Decoder(),
	"Warning":              WarningShape.Decoder(),
}

// Lookup returns the decoder for an entity by its type name
func Lookup(name string) (mapping.Decoder, bool) {
	d, ok := registry[name]
	return d, ok
}

// Names returns the registered entity names, sorted
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}
