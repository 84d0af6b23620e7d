package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog"

	"github.com/s0up4200/foursquare/entities"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	env        func(entities.CompactVenue) map[string]any
	logger     zerolog.Logger
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// WithLogger logs evaluation failures at debug level
func WithLogger(logger zerolog.Logger) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.logger = logger
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any, 8),
		logger:      zerolog.Nop(),
	}
	addHelperFunctions(c.helperFuncs)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
	logger      zerolog.Logger
}

// Compile compiles an expression into an executable filter. Unknown names
// are compile errors.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.environment(entities.CompactVenue{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		env:        c.environment,
		logger:     c.logger,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate runs the filter against a venue. A runtime error counts as no match.
func (f *exprFilter) Evaluate(venue entities.CompactVenue) bool {
	result, err := expr.Run(f.program, f.env(venue))
	if err != nil {
		f.logger.Debug().
			Err(&EvaluationError{Expression: f.expression, VenueID: venue.ID, Err: err}).
			Msg("Filter evaluation failed")
		return false
	}
	return result.(bool)
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the venue independent helpers
func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// environment builds the evaluation environment for one venue
func (c *exprCompiler) environment(venue entities.CompactVenue) map[string]any {
	env := make(map[string]any, len(c.helperFuncs)+24)
	maps.Copy(env, c.helperFuncs)

	env["Venue"] = venue
	env["ID"] = venue.ID
	env["Name"] = venue.Name
	env["Verified"] = venue.Verified
	env["URL"] = venue.URL

	var loc entities.Location
	if venue.Location != nil {
		loc = *venue.Location
	}
	env["Address"] = loc.Address
	env["City"] = loc.City
	env["State"] = loc.State
	env["PostalCode"] = loc.PostalCode
	env["Country"] = loc.Country
	env["Lat"] = loc.Lat
	env["Lng"] = loc.Lng
	env["Distance"] = loc.Distance

	var stats entities.Stats
	if venue.Stats != nil {
		stats = *venue.Stats
	}
	env["Checkins"] = stats.CheckinsCount
	env["Users"] = stats.UsersCount
	env["Tips"] = stats.TipCount

	var hereNow int64
	if venue.HereNow != nil {
		hereNow = venue.HereNow.Count
	}
	env["HereNow"] = hereNow
	env["Specials"] = len(venue.Specials)

	category := ""
	if primary := venue.PrimaryCategory(); primary != nil {
		category = primary.Name
	}
	env["Category"] = category

	names := make([]string, 0, len(venue.Categories))
	for _, cat := range venue.Categories {
		names = append(names, strings.ToLower(cat.Name))
	}
	env["Categories"] = names

	env["hasCategory"] = createHasCategoryFunc(names)
	env["within"] = createWithinFunc(loc.Distance)

	return env
}

func createHasCategoryFunc(lowerNames []string) func(string) bool {
	return func(name string) bool {
		return slices.Contains(lowerNames, strings.ToLower(name))
	}
}

// createWithinFunc reports whether the venue is at most meters away. Venues
// without a distance never match.
func createWithinFunc(distance int) func(int) bool {
	return func(meters int) bool {
		return distance > 0 && distance <= meters
	}
}
