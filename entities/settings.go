package entities

import (
	"github.com/s0up4200/foursquare/mapping"
)

// Setting is the acting user's sharing and notification settings
type Setting struct {
	SendToTwitter            bool `json:"sendToTwitter"`
	SendMayorshipsToTwitter  bool `json:"sendMayorshipsToTwitter"`
	SendBadgesToTwitter      bool `json:"sendBadgesToTwitter"`
	SendToFacebook           bool `json:"sendToFacebook"`
	SendMayorshipsToFacebook bool `json:"sendMayorshipsToFacebook"`
	SendBadgesToFacebook     bool `json:"sendBadgesToFacebook"`
	ReceivePings             bool `json:"receivePings"`
	ReceiveCommentPings      bool `json:"receiveCommentPings"`
}

// SettingShape maps users/self/settings
var SettingShape = mapping.NewShape[Setting]("Setting")

func init() {
	SettingShape.Define(
		mapping.Bool("sendToTwitter", func(s *Setting) *bool { return &s.SendToTwitter }),
		mapping.Bool("sendMayorshipsToTwitter", func(s *Setting) *bool { return &s.SendMayorshipsToTwitter }),
		mapping.Bool("sendBadgesToTwitter", func(s *Setting) *bool { return &s.SendBadgesToTwitter }),
		mapping.Bool("sendToFacebook", func(s *Setting) *bool { return &s.SendToFacebook }),
		mapping.Bool("sendMayorshipsToFacebook", func(s *Setting) *bool { return &s.SendMayorshipsToFacebook }),
		mapping.Bool("sendBadgesToFacebook", func(s *Setting) *bool { return &s.SendBadgesToFacebook }),
		mapping.Bool("receivePings", func(s *Setting) *bool { return &s.ReceivePings }),
		mapping.Bool("receiveCommentPings", func(s *Setting) *bool { return &s.ReceiveCommentPings }),
	)
}
