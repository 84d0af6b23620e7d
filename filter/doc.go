// Package filter compiles expr-lang expressions into venue filters.
//
// # Usage
//
//	compiler := filter.NewExprCompiler(filter.WithCache(32))
//	f, err := compiler.Compile(`hasCategory("café") and within(500)`)
//	if err != nil {
//		return err
//	}
//	venues = filter.Apply(f, venues)
//
// Expressions see the venue as Venue plus the shortcuts ID, Name, Verified,
// URL, Address, City, State, PostalCode, Country, Lat, Lng, Distance,
// Checkins, Users, Tips, HereNow, Specials, Category (the primary category
// name) and Categories (lower-cased category names), and the helpers
// hasCategory, within, contains, startsWith, endsWith, lower and upper.
package filter
