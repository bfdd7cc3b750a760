// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

// IntentBatch classifies keywords concurrently, bounded by
// MaxConcurrent, and returns results in input order. The first error
// cancels the remaining work.
func (c *Classifier) IntentBatch(ctx context.Context, keywords []string, vertical types.VerticalType) ([]types.IntentClassification, error) {
	results := make([]types.IntentClassification, len(keywords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrent)
	for i, kw := range keywords {
		i, kw := i, kw
		g.Go(func() error {
			result, err := c.Intent(ctx, kw, vertical)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
