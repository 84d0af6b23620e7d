package foursquare

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/foursquare/entities"
)

// Venues fetches several venues concurrently, at most the configured
// concurrency at a time. Results are in the order of ids. The first
// transport or decode failure cancels the remaining requests; a non-200
// meta for one venue does not.
func (c *Client) Venues(ctx context.Context, ids ...string) ([]*Result[*entities.CompleteVenue], error) {
	results := make([]*Result[*entities.CompleteVenue], len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			res, err := c.Venue(ctx, id)
			if err != nil {
				return fmt.Errorf("venue %s: %w", id, err)
			}
			if !res.Meta.OK() {
				c.logger.Warn().
					Str("venue", id).
					Int("code", res.Meta.Code).
					Str("detail", res.Meta.ErrorDetail).
					Msg("Venue lookup was not successful")
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("count", len(ids)).
		Msg("Fetched venue batch")

	return results, nil
}
