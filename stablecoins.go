package defillama

import (
	"context"
	"net/url"

	"github.com/caentzminger/defillama/models"
)

// StablecoinsOptions configures Stablecoins.
type StablecoinsOptions struct {
	// IncludePrices asks for current prices alongside supply.
	IncludePrices *bool
}

// StablecoinChartsOptions configures StablecoinCharts.
type StablecoinChartsOptions struct {
	// Stablecoin restricts the chart to one stablecoin id.
	Stablecoin string
}

// Stablecoins lists stablecoins with their circulating supply.
func (c *Client) Stablecoins(ctx context.Context, opts *StablecoinsOptions) ([]models.Stablecoin, error) {
	query := url.Values{}
	if opts != nil {
		setBool(query, "includePrices", opts.IncludePrices)
	}
	return fetch(ctx, c, request{
		op:       "Stablecoins",
		host:     hostStablecoins,
		path:     "/stablecoins",
		query:    query,
		envelope: envelopePeggedAssets,
	}, models.DecodeStablecoins)
}

// StablecoinCharts returns historical stablecoin market cap for a chain,
// or summed over all chains when chain is empty.
func (c *Client) StablecoinCharts(ctx context.Context, chain string, opts *StablecoinChartsOptions) ([]models.StablecoinChart, error) {
	if chain == "" {
		chain = "all"
	}
	query := url.Values{}
	if opts != nil {
		setString(query, "stablecoin", opts.Stablecoin)
	}
	return fetch(ctx, c, request{
		op:    "StablecoinCharts",
		host:  hostStablecoins,
		path:  pathJoin("stablecoincharts", chain),
		query: query,
	}, models.DecodeStablecoinCharts)
}

// StablecoinHistorical returns a stablecoin's metadata and per-chain history.
func (c *Client) StablecoinHistorical(ctx context.Context, id string) (models.StablecoinHistorical, error) {
	const op = "StablecoinHistorical"
	if err := c.checkRequired(op, "id", id); err != nil {
		return models.StablecoinHistorical{}, err
	}
	return fetch(ctx, c, request{
		op:   op,
		host: hostStablecoins,
		path: pathJoin("stablecoin", id),
	}, models.DecodeStablecoinHistorical)
}

// StablecoinChains lists chains with their stablecoin market cap.
func (c *Client) StablecoinChains(ctx context.Context) ([]models.StablecoinChain, error) {
	return fetch(ctx, c, request{
		op:   "StablecoinChains",
		host: hostStablecoins,
		path: "/stablecoinchains",
	}, models.DecodeStablecoinChains)
}

// StablecoinPrices returns the historical prices of every stablecoin.
func (c *Client) StablecoinPrices(ctx context.Context) ([]models.StablecoinPrice, error) {
	return fetch(ctx, c, request{
		op:   "StablecoinPrices",
		host: hostStablecoins,
		path: "/stablecoinprices",
	}, models.DecodeStablecoinPrices)
}
