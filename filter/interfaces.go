package filter

import (
	"github.com/s0up4200/foursquare/entities"
)

// Filter decides whether a venue is kept
type Filter interface {
	// Evaluate checks if a venue matches the filter criteria
	Evaluate(venue entities.CompactVenue) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Apply returns the venues f keeps, in their original order. A nil filter
// keeps everything.
func Apply(f Filter, venues []entities.CompactVenue) []entities.CompactVenue {
	if f == nil {
		return venues
	}
	kept := make([]entities.CompactVenue, 0, len(venues))
	for _, v := range venues {
		if f.Evaluate(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
