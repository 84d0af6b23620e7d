// Package entities defines the Foursquare v2 object graph and the mapping
// shape for each type.
//
// Compact and complete variants share fields by embedding: CompleteVenue
// embeds CompactVenue and its shape embeds CompactVenueShape. Every counted
// list ("count" plus "items" or "groups") is its own Group type.
//
// # Usage
//
//	m := mapping.NewMapper(true, logger)
//	venue, err := mapping.Map(m, entities.CompleteVenueShape, env.Response["venue"])
//
// Lookup resolves a shape by type name for callers that only know the
// entity name at runtime.
package entities
