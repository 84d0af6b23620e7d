package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/s0up4200/foursquare/entities"
	"github.com/s0up4200/foursquare/filter"
	"github.com/s0up4200/foursquare/foursquare"
)

var (
	filterExpr  string
	preset      string
	ll          string
	searchQuery string
	venuesLimit int
	radius      int
	categoryID  string
)

// venueCmd fetches one or more venues
var venueCmd = &cobra.Command{
	Use:   "venue <id>...",
	Short: "Show venues by id",
	Long:  `Show venues by id. Several ids are fetched concurrently.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVenue,
}

// venuesCmd groups the venue list commands
var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Search, browse and filter venues",
}

var venuesSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for venues near a point",
	Args:  cobra.NoArgs,
	RunE:  runVenuesSearch,
}

var venuesTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List nearby venues with the most people checked in",
	Args:  cobra.NoArgs,
	RunE:  runVenuesTrending,
}

var venuesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the venue category tree",
	Args:  cobra.NoArgs,
	RunE:  runVenuesCategories,
}

func init() {
	for _, c := range []*cobra.Command{venuesSearchCmd, venuesTrendingCmd} {
		c.Flags().StringVar(&ll, "ll", "", "latitude,longitude to search around")
		c.Flags().IntVarP(&venuesLimit, "limit", "l", 0, "maximum number of venues")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
		_ = c.MarkFlagRequired("ll")
	}
	venuesSearchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search term")
	venuesSearchCmd.Flags().StringVar(&categoryID, "category", "", "restrict to a category id")
	venuesTrendingCmd.Flags().IntVar(&radius, "radius", 0, "search radius in meters")

	venuesCmd.AddCommand(venuesSearchCmd)
	venuesCmd.AddCommand(venuesTrendingCmd)
	venuesCmd.AddCommand(venuesCategoriesCmd)

	rootCmd.AddCommand(venueCmd)
	rootCmd.AddCommand(venuesCmd)
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		// viper lower-cases map keys
		if expression, ok := cfg.Filter.Presets[strings.ToLower(preset)]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// filterVenues applies the --filter or --preset expression, if any
func filterVenues(venues []entities.CompactVenue) ([]entities.CompactVenue, error) {
	expression, err := getFilterExpression()
	if err != nil || expression == "" {
		return venues, err
	}

	compiled, err := filter.NewExprCompiler(filter.WithLogger(logger)).Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	kept := filter.Apply(compiled, venues)
	logger.Debug().
		Str("filter", expression).
		Int("matched", len(kept)).
		Int("total", len(venues)).
		Msg("Filtered venues")
	return kept, nil
}

func runVenue(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	results, err := client.Venues(cmd.Context(), args...)
	if err != nil {
		return err
	}

	venues := make([]entities.CompleteVenue, 0, len(results))
	for i, res := range results {
		if err := res.Err(); err != nil {
			logger.Error().Err(err).Str("venue", args[i]).Msg("Venue lookup failed")
			continue
		}
		venues = append(venues, *res.Result)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, venues, func(tw *tabwriter.Writer) {
		compact := make([]entities.CompactVenue, len(venues))
		for i := range venues {
			compact[i] = venues[i].CompactVenue
		}
		venueTable(compact)(tw)
	})
}

func runVenuesSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.VenuesSearch(cmd.Context(), &foursquare.VenuesSearchParams{
		LL:         ll,
		Query:      searchQuery,
		Limit:      venuesLimit,
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	venues, err := filterVenues(entities.Venues(res.Result))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), cfg.Output.Format, venues, venueTable(venues))
}

func runVenuesTrending(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.VenuesTrending(cmd.Context(), &foursquare.VenuesTrendingParams{
		LL:     ll,
		Limit:  venuesLimit,
		Radius: radius,
	})
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	venues, err := filterVenues(res.Result)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), cfg.Output.Format, venues, venueTable(venues))
}

func runVenuesCategories(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.VenuesCategories(cmd.Context())
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, res.Result, categoryTable(res.Result))
}
