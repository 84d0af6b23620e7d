package notification

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/s0up4200/foursquare/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(keep bool) *Dispatcher {
	return NewDispatcher(mapping.NewMapper(false, zerolog.Nop()), keep, zerolog.Nop())
}

func parseArray(t *testing.T, s string) []any {
	t.Helper()
	tree, err := mapping.Parse([]byte(s))
	require.NoError(t, err)
	arr, ok := tree.([]any)
	require.True(t, ok)
	return arr
}

const checkinNotifications = `[
	{"type": "notificationTray", "item": {"unreadCount": 3}},
	{"type": "message", "item": {"message": "OK! We've got you @ Kiasma. You've been here 5 times."}},
	{"type": "mayorship", "item": {"type": "nochange", "checkins": 5, "daysBehind": 2, "user": {"id": "u2", "firstName": "Eero"}, "message": "Eero is the Mayor of Kiasma."}},
	{"type": "badge", "item": {"badge": {"id": "b1", "name": "Newbie"}}},
	{"type": "score", "item": {"scores": [{"points": 1, "message": "First stop today"}, {"points": 5, "message": "New venue"}], "total": 6}},
	{"type": "leaderboard", "item": {"leaderboard": [{"user": {"id": "u1"}, "rank": 1, "scores": {"recent": 40}}], "total": 40}},
	{"type": "tip", "item": {"name": "Aino", "tip": {"id": "t1", "text": "Try the cafe"}}},
	{"type": "tipAlert", "item": {"tip": {"id": "t2", "text": "Closed on Mondays"}}},
	{"type": "special", "item": {"special": {"id": "s1", "type": "frequency", "progress": 3, "target": 5}}}
]`

func TestDispatchAll(t *testing.T) {
	ns, err := newDispatcher(false).DispatchAll(parseArray(t, checkinNotifications))
	require.NoError(t, err)
	require.Len(t, ns, 9)

	kinds := make([]Kind, len(ns))
	for i, n := range ns {
		kinds[i] = n.Kind()
	}
	assert.Equal(t, []Kind{
		KindTray, KindMessage, KindMayorship, KindBadge, KindScore,
		KindLeaderboard, KindTip, KindTipAlert, KindSpecial,
	}, kinds)

	assert.Equal(t, Tray{UnreadCount: 3}, ns[0])

	mayor, ok := ns[2].(Mayorship)
	require.True(t, ok)
	assert.Equal(t, "nochange", mayor.Type)
	assert.Equal(t, 2, mayor.DaysBehind)
	assert.Equal(t, "Eero", mayor.User.FirstName)

	assert.Equal(t, "Newbie", ns[3].(Badge).Badge.Name)

	score := ns[4].(Score)
	assert.Equal(t, 6, score.Total)
	assert.Len(t, score.Scores, 2)

	board := ns[5].(Leaderboard)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)
	assert.Equal(t, 40, board.Leaderboard[0].Scores.Recent)

	assert.Equal(t, "Aino", ns[6].(Tip).Name)
	assert.Equal(t, "Closed on Mondays", ns[7].(TipAlert).Tip.Text)
	assert.Equal(t, 5, ns[8].(Special).Special.Target)
}

func TestDispatchAllSkipsUnknownKinds(t *testing.T) {
	input := parseArray(t, `[
		{"type": "unknownKind", "item": {"x": 1}},
		{"type": "message", "item": {"message": "first"}},
		{"item": {"message": "no type"}},
		{"type": 7},
		{"type": "message", "item": {"message": "second"}}
	]`)

	ns, err := newDispatcher(false).DispatchAll(input)
	require.NoError(t, err)
	assert.Equal(t, []Notification{Message{Message: "first"}, Message{Message: "second"}}, ns)
}

func TestDispatchAllKeepUnrecognized(t *testing.T) {
	input := parseArray(t, `[
		{"type": "unknownKind", "item": {"x": "y"}},
		{"type": "message", "item": {"message": "known"}}
	]`)

	ns, err := newDispatcher(true).DispatchAll(input)
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, Unrecognized{Type: "unknownKind", Item: map[string]any{"x": "y"}}, ns[0])
	assert.Equal(t, Kind("unknownKind"), ns[0].Kind())
	assert.Equal(t, Message{Message: "known"}, ns[1])
}

func TestDispatchAllEmpty(t *testing.T) {
	for _, raw := range [][]any{nil, {}} {
		ns, err := newDispatcher(false).DispatchAll(raw)
		require.NoError(t, err)
		assert.NotNil(t, ns)
		assert.Empty(t, ns)
	}
}

func TestDispatchAllMissingItem(t *testing.T) {
	ns, err := newDispatcher(false).DispatchAll(parseArray(t, `[{"type": "notificationTray"}, {"type": "badge", "item": null}]`))
	require.NoError(t, err)
	assert.Equal(t, []Notification{Tray{}, Badge{}}, ns)
}

func TestDispatchAllErrors(t *testing.T) {
	_, err := newDispatcher(false).DispatchAll(parseArray(t, `[{"type": "message", "item": {}}, "tray"]`))
	var se *mapping.StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "notifications[1]", se.Path)

	// payload errors propagate; no partial list is returned
	ns, err := newDispatcher(false).DispatchAll(parseArray(t, `[{"type": "message", "item": {"message": "ok"}}, {"type": "notificationTray", "item": {"unreadCount": "many"}}]`))
	assert.Nil(t, ns)
	var ce *mapping.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "unreadCount", ce.Field)

	_, err = newDispatcher(false).DispatchAll(parseArray(t, `[{"type": "badge", "item": []}]`))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "BadgeNotification", se.Shape)
}

func TestDispatchAllTolerant(t *testing.T) {
	d := NewDispatcher(mapping.NewMapper(true, zerolog.Nop()), false, zerolog.Nop())
	ns, err := d.DispatchAll(parseArray(t, `[{"type": "score", "item": {"total": "six", "message": "Nice"}}]`))
	require.NoError(t, err)
	assert.Equal(t, []Notification{Score{Message: "Nice"}}, ns)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 9)
	assert.IsIncreasing(t, kinds)
	assert.True(t, Registered(KindTipAlert))
	assert.False(t, Registered("checkin"))
}

func TestOf(t *testing.T) {
	ns := []Notification{Message{Message: "a"}, Tray{UnreadCount: 1}, Message{Message: "b"}}
	assert.Equal(t, []Message{{Message: "a"}, {Message: "b"}}, Of[Message](ns))
	assert.Empty(t, Of[Badge](ns))
}
