package notification

import (
	"github.com/s0up4200/foursquare/entities"
)

// Kind is the notification discriminant as sent in the "type" key
type Kind string

const (
	KindBadge       Kind = "badge"
	KindLeaderboard Kind = "leaderboard"
	KindMayorship   Kind = "mayorship"
	KindMessage     Kind = "message"
	KindScore       Kind = "score"
	KindSpecial     Kind = "special"
	KindTip         Kind = "tip"
	KindTipAlert    Kind = "tipAlert"
	KindTray        Kind = "notificationTray"
)

// Notification is one out-of-band message attached to a response. The set
// of implementations is closed; switch on the concrete type.
type Notification interface {
	Kind() Kind
	sealed()
}

// Badge reports a newly unlocked badge
type Badge struct {
	Badge *entities.Badge `json:"badge,omitempty"`
}

// Leaderboard reports the user's position among friends
type Leaderboard struct {
	Leaderboard []entities.LeaderboardItem `json:"leaderboard,omitempty"`
	Message     string                     `json:"message,omitempty"`
	Scores      []entities.Score           `json:"scores,omitempty"`
	Total       int                        `json:"total"`
}

// Mayorship reports a gained, kept or lost mayorship
type Mayorship struct {
	Type       string                `json:"type,omitempty"`
	Checkins   int                   `json:"checkins"`
	DaysBehind int                   `json:"daysBehind,omitempty"`
	User       *entities.CompactUser `json:"user,omitempty"`
	Message    string                `json:"message,omitempty"`
	Image      string                `json:"image,omitempty"`
}

// Message is a plain text notice
type Message struct {
	Message string `json:"message,omitempty"`
}

// Score lists the points earned by a checkin
type Score struct {
	Scores  []entities.Score `json:"scores,omitempty"`
	Total   int              `json:"total"`
	Message string           `json:"message,omitempty"`
}

// Special reports a special unlocked or nearby
type Special struct {
	Special *entities.CompleteSpecial `json:"special,omitempty"`
}

// Tip suggests a tip at the venue checked in to
type Tip struct {
	Tip  *entities.CompleteTip `json:"tip,omitempty"`
	Name string                `json:"name,omitempty"`
}

// TipAlert reminds the user of a saved tip nearby
type TipAlert struct {
	Tip *entities.CompleteTip `json:"tip,omitempty"`
}

// Tray carries the unread notification count
type Tray struct {
	UnreadCount int `json:"unreadCount"`
}

// Unrecognized holds a notification whose type has no registered decoder
type Unrecognized struct {
	Type string         `json:"type"`
	Item map[string]any `json:"item,omitempty"`
}

func (Badge) Kind() Kind { return KindBadge }
func (Leaderboard) Kind() Kind { return KindLeaderboard }
func (Mayorship) Kind() Kind { return KindMayorship }
func (Message) Kind() Kind { return KindMessage }
func (Score) Kind() Kind { return KindScore }
func (Special) Kind() Kind { return KindSpecial }
func (Tip) Kind() Kind { return KindTip }
func (TipAlert) Kind() Kind { return KindTipAlert }
func (Tray) Kind() Kind { return KindTray }
func (u Unrecognized) Kind() Kind { return Kind(u.Type) }

func (Badge) sealed() {}
func (Leaderboard) sealed() {}
func (Mayorship) sealed() {}
func (Message) sealed() {}
func (Score) sealed() {}
func (Special) sealed() {}
func (Tip) sealed() {}
func (TipAlert) sealed() {}
func (Tray) sealed() {}
func (Unrecognized) sealed() {}
