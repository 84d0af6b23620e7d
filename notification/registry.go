package notification

import (
	"maps"
	"slices"

	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/mapping"
)

type decodeFunc func(m *mapping.Mapper, item any) (Notification, error)

var (
	badgeShape       = mapping.NewShape[Badge]("BadgeNotification")
	leaderboardShape = mapping.NewShape[Leaderboard]("LeaderboardNotification")
	mayorshipShape   = mapping.NewShape[Mayorship]("MayorshipNotification")
	messageShape     = mapping.NewShape[Message]("MessageNotification")
	scoreShape       = mapping.NewShape[Score]("ScoreNotification")
	specialShape     = mapping.NewShape[Special]("SpecialNotification")
	tipShape         = mapping.NewShape[Tip]("TipNotification")
	tipAlertShape    = mapping.NewShape[TipAlert]("TipAlertNotification")
	trayShape        = mapping.NewShape[Tray]("NotificationTray")
)

var registry = map[Kind]decodeFunc{
	KindBadge:       decoder(badgeShape),
	KindLeaderboard: decoder(leaderboardShape),
	KindMayorship:   decoder(mayorshipShape),
	KindMessage:     decoder(messageShape),
	KindScore:       decoder(scoreShape),
	KindSpecial:     decoder(specialShape),
	KindTip:         decoder(tipShape),
	KindTipAlert:    decoder(tipAlertShape),
	KindTray:        decoder(trayShape),
}

func init() {
	badgeShape.Define(
		mapping.Object("badge", entities.BadgeShape, func(n *Badge) **entities.Badge { return &n.Badge }),
	)
	leaderboardShape.Define(
		mapping.Array("leaderboard", entities.LeaderboardItemShape, func(n *Leaderboard) *[]entities.LeaderboardItem { return &n.Leaderboard }),
		mapping.String("message", func(n *Leaderboard) *string { return &n.Message }),
		mapping.Array("scores", entities.ScoreShape, func(n *Leaderboard) *[]entities.Score { return &n.Scores }),
		mapping.Int("total", func(n *Leaderboard) *int { return &n.Total }),
	)
	mayorshipShape.Define(
		mapping.String("type", func(n *Mayorship) *string { return &n.Type }),
		mapping.Int("checkins", func(n *Mayorship) *int { return &n.Checkins }),
		mapping.Int("daysBehind", func(n *Mayorship) *int { return &n.DaysBehind }),
		mapping.Object("user", entities.CompactUserShape, func(n *Mayorship) **entities.CompactUser { return &n.User }),
		mapping.String("message", func(n *Mayorship) *string { return &n.Message }),
		mapping.String("image", func(n *Mayorship) *string { return &n.Image }),
	)
	messageShape.Define(
		mapping.String("message", func(n *Message) *string { return &n.Message }),
	)
	scoreShape.Define(
		mapping.Array("scores", entities.ScoreShape, func(n *Score) *[]entities.Score { return &n.Scores }),
		mapping.Int("total", func(n *Score) *int { return &n.Total }),
		mapping.String("message", func(n *Score) *string { return &n.Message }),
	)
	specialShape.Define(
		mapping.Object("special", entities.CompleteSpecialShape, func(n *Special) **entities.CompleteSpecial { return &n.Special }),
	)
	tipShape.Define(
		mapping.Object("tip", entities.CompleteTipShape, func(n *Tip) **entities.CompleteTip { return &n.Tip }),
		mapping.String("name", func(n *Tip) *string { return &n.Name }),
	)
	tipAlertShape.Define(
		mapping.Object("tip", entities.CompleteTipShape, func(n *TipAlert) **entities.CompleteTip { return &n.Tip }),
	)
	trayShape.Define(
		mapping.Int("unreadCount", func(n *Tray) *int { return &n.UnreadCount }),
	)
}

func decoder[T Notification](shape *mapping.Shape[T]) decodeFunc {
	return func(m *mapping.Mapper, item any) (Notification, error) {
		v, err := mapping.Map(m, shape, item)
		if err != nil {
			return nil, err
		}
		return *v, nil
	}
}

// Kinds returns the registered discriminants, sorted
func Kinds() []Kind {
	return slices.Sorted(maps.Keys(registry))
}

// Registered reports whether kind has a decoder
func Registered(kind Kind) bool {
	_, ok := registry[kind]
	return ok
}
