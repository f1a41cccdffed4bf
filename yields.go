package defillama

import (
	"context"

	"github.com/caentzminger/defillama/models"
)

// Pools lists yield pools with their current APY and TVL.
func (c *Client) Pools(ctx context.Context) ([]models.Pool, error) {
	return fetch(ctx, c, request{
		op:       "Pools",
		host:     hostYields,
		path:     "/pools",
		envelope: envelopeData,
	}, models.DecodePools)
}

// PoolChart returns a pool's APY and TVL history. poolID is the pool field of a Pool.
func (c *Client) PoolChart(ctx context.Context, poolID string) ([]models.PoolChartPoint, error) {
	const op = "PoolChart"
	if err := c.checkRequired(op, "poolID", poolID); err != nil {
		return nil, err
	}
	return fetch(ctx, c, request{
		op:       op,
		host:     hostYields,
		path:     pathJoin("chart", poolID),
		envelope: envelopeData,
	}, models.DecodePoolChart)
}
