// Package notification decodes the notifications array that accompanies some
// responses, most notably checkins/add.
//
// Each element is {"type": "<kind>", "item": {...}}. The type selects one of
// a fixed set of payload shapes; the result is a Notification that callers
// inspect with a type switch:
//
//	ns, err := dispatcher.DispatchAll(env.Notifications)
//	for _, n := range ns {
//		switch n := n.(type) {
//		case notification.Badge:
//			fmt.Println("unlocked", n.Badge.Name)
//		case notification.Tray:
//			fmt.Println(n.UnreadCount, "unread")
//		}
//	}
//
// Types without a registered decoder are skipped so that new server-side
// notification kinds do not break existing clients. A dispatcher created
// with keepUnrecognized returns them as Unrecognized instead.
package notification
