// Package foursquare provides a client for the Foursquare v2 API.
//
// Every endpoint method returns a Result holding the response meta, the
// typed result and any notifications. A non-200 meta is not a Go error;
// check Result.Meta or call Result.Err. Errors are reserved for transport
// failures, malformed responses and mapping failures.
//
// # Usage
//
//	client, err := foursquare.NewClient(clientID, clientSecret, redirectURL, logger,
//		foursquare.WithOAuthToken(token),
//		foursquare.WithCallback(false),
//	)
//	if err != nil {
//		return err
//	}
//
//	res, err := client.Venue(ctx, "4ab7e57cf964a5205f7b20e3")
//	if err != nil {
//		return err
//	}
//	if err := res.Err(); err != nil {
//		return err
//	}
//	fmt.Println(res.Result.Name)
//
// # Authentication
//
// Userless endpoints such as Venue and VenuesSearch work with the client
// credentials alone. Endpoints acting on behalf of a user need an OAuth
// token, either configured with WithOAuthToken or obtained through
// AuthenticationURL and AuthenticateCode; without one they return
// ErrNotAuthenticated before any request is made.
//
// # Tolerant mapping
//
// By default a response field with an unexpected type is skipped and logged
// at debug level. WithSkipNonExistingFields(false) makes such mismatches
// fail the call with a mapping.CoercionError or mapping.StructureError.
package foursquare
