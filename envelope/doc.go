// Package envelope decodes the meta/response/notifications wrapper around
// every Foursquare v2 response.
//
// # Usage
//
//	env, err := envelope.Decode(resp, true)
//	if err != nil {
//		return err
//	}
//	if !env.OK() {
//		log.Printf("api error %d: %s", env.Meta.Code, env.Meta.ErrorDetail)
//		return nil
//	}
//	venue, err := env.Object("venue")
//
// A transport status other than 200 is not an error: the envelope carries
// the status code and reason phrase in Meta and has no response. Bodies that
// are not JSON yield a DecodeError; JSON that does not follow the envelope
// yields a ProtocolError.
package envelope
