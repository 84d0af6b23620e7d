package foursquare

// Request parameters. Zero values are not sent.

// UsersSearchParams finds users by contact details or name
type UsersSearchParams struct {
	Phone         string `url:"phone,omitempty"`
	Email         string `url:"email,omitempty"`
	Twitter       string `url:"twitter,omitempty"`
	TwitterSource string `url:"twitterSource,omitempty"`
	FacebookID    string `url:"fbid,omitempty"`
	Name          string `url:"name,omitempty"`
}

// LeaderboardParams controls users/leaderboard
type LeaderboardParams struct {
	Neighbors int `url:"neighbors,omitempty"`
}

// UsersCheckinsParams pages through a user's checkin history
type UsersCheckinsParams struct {
	Limit           int   `url:"limit,omitempty"`
	Offset          int   `url:"offset,omitempty"`
	AfterTimestamp  int64 `url:"afterTimestamp,omitempty"`
	BeforeTimestamp int64 `url:"beforeTimestamp,omitempty"`
}

// UsersTipsParams sorts a user's tips. Sort is recent, nearby or popular;
// nearby needs LL.
type UsersTipsParams struct {
	Sort   string `url:"sort,omitempty"`
	LL     string `url:"ll,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Offset int    `url:"offset,omitempty"`
}

// UsersTodosParams sorts a user's todos
type UsersTodosParams struct {
	Sort string `url:"sort,omitempty"`
	LL   string `url:"ll,omitempty"`
}

// UsersVenueHistoryParams restricts a user's venue history
type UsersVenueHistoryParams struct {
	BeforeTimestamp int64  `url:"beforeTimestamp,omitempty"`
	AfterTimestamp  int64  `url:"afterTimestamp,omitempty"`
	CategoryID      string `url:"categoryId,omitempty"`
}

// VenuesSearchParams searches for venues near a point
type VenuesSearchParams struct {
	LL         string  `url:"ll,omitempty"`
	LLAcc      float64 `url:"llAcc,omitempty"`
	Alt        float64 `url:"alt,omitempty"`
	AltAcc     float64 `url:"altAcc,omitempty"`
	Query      string  `url:"query,omitempty"`
	Limit      int     `url:"limit,omitempty"`
	Intent     string  `url:"intent,omitempty"`
	CategoryID string  `url:"categoryId,omitempty"`
	URL        string  `url:"url,omitempty"`
	ProviderID string  `url:"providerId,omitempty"`
	LinkedID   string  `url:"linkedId,omitempty"`
}

// VenuesExploreParams requests recommendations near a point
type VenuesExploreParams struct {
	LL      string  `url:"ll,omitempty"`
	LLAcc   float64 `url:"llAcc,omitempty"`
	Alt     float64 `url:"alt,omitempty"`
	AltAcc  float64 `url:"altAcc,omitempty"`
	Radius  int     `url:"radius,omitempty"`
	Section string  `url:"section,omitempty"`
	Query   string  `url:"query,omitempty"`
	Limit   int     `url:"limit,omitempty"`
	Basis   string  `url:"basis,omitempty"`
}

// VenuesTrendingParams lists venues with many people checked in
type VenuesTrendingParams struct {
	LL     string `url:"ll,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Radius int    `url:"radius,omitempty"`
}

// VenuesHereNowParams pages through the people at a venue
type VenuesHereNowParams struct {
	Limit          int   `url:"limit,omitempty"`
	Offset         int   `url:"offset,omitempty"`
	AfterTimestamp int64 `url:"afterTimestamp,omitempty"`
}

// VenueParams describes a venue for venues/add and venues/{id}/proposeedit
type VenueParams struct {
	Name              string `url:"name,omitempty"`
	Address           string `url:"address,omitempty"`
	CrossStreet       string `url:"crossStreet,omitempty"`
	City              string `url:"city,omitempty"`
	State             string `url:"state,omitempty"`
	Zip               string `url:"zip,omitempty"`
	Phone             string `url:"phone,omitempty"`
	LL                string `url:"ll,omitempty"`
	PrimaryCategoryID string `url:"primaryCategoryId,omitempty"`
}

// CheckinsAddParams creates a checkin. Either VenueID or Venue (a
// venueless name) should be set. Broadcast is a comma separated list of
// private, public, facebook and twitter.
type CheckinsAddParams struct {
	VenueID   string  `url:"venueId,omitempty"`
	Venue     string  `url:"venue,omitempty"`
	Shout     string  `url:"shout,omitempty"`
	Broadcast string  `url:"broadcast,omitempty"`
	LL        string  `url:"ll,omitempty"`
	LLAcc     float64 `url:"llAcc,omitempty"`
	Alt       float64 `url:"alt,omitempty"`
	AltAcc    float64 `url:"altAcc,omitempty"`
}

// CheckinsRecentParams lists recent checkins by friends
type CheckinsRecentParams struct {
	LL             string `url:"ll,omitempty"`
	Limit          int    `url:"limit,omitempty"`
	AfterTimestamp int64  `url:"afterTimestamp,omitempty"`
}

// TipsAddParams adds a tip to a venue
type TipsAddParams struct {
	VenueID string `url:"venueId"`
	Text    string `url:"text"`
	URL     string `url:"url,omitempty"`
}

// SpecialsSearchParams searches for specials near a point
type SpecialsSearchParams struct {
	LL     string  `url:"ll,omitempty"`
	LLAcc  float64 `url:"llAcc,omitempty"`
	Alt    float64 `url:"alt,omitempty"`
	AltAcc float64 `url:"altAcc,omitempty"`
	Limit  int     `url:"limit,omitempty"`
}

type checkinParams struct {
	Signature string `url:"signature,omitempty"`
}

type flagParams struct {
	Problem string `url:"problem"`
}

type boolValueParams struct {
	Value bool `url:"value,int"`
}

type pingsParams struct {
	Value bool `url:"value"`
}
