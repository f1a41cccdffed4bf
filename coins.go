package defillama

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/caentzminger/defillama/models"
)

// PriceOptions tunes the price lookups.
type PriceOptions struct {
	// SearchWidth bounds how far from the target time a price may be taken, e.g. "4h".
	// Empty leaves the service default.
	SearchWidth string
}

// ChartOptions selects the window and granularity of a price chart.
// Zero fields are not sent.
type ChartOptions struct {
	// Start and End are unix seconds. Use one of them, not both.
	Start int64
	End   int64
	// Span is the number of data points returned.
	Span int64
	// Period is the candle width, e.g. "2d" or "1w".
	Period      string
	SearchWidth string
}

// PercentageOptions configures a percentage change lookup.
type PercentageOptions struct {
	// Timestamp is the reference point in unix seconds. Zero means now.
	Timestamp int64
	// LookForward measures from Timestamp forward instead of backward.
	LookForward *bool
	// Period is the measured duration, e.g. "24h" or "1w".
	Period string
}

// CurrentPrices returns the current price of each coin, keyed by the identifier
// exactly as requested.
func (c *Client) CurrentPrices(ctx context.Context, coins []string, opts *PriceOptions) (models.CoinPrices, error) {
	const op = "CurrentPrices"
	if err := c.checkCoins(op, coins); err != nil {
		return models.CoinPrices{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostCoins,
		path:  "/prices/current/" + coinsSegment(coins),
		query: priceQuery(opts),
	}, models.DecodeCoinPrices)
}

// HistoricalPrices returns each coin's price at the unix timestamp ts.
func (c *Client) HistoricalPrices(ctx context.Context, ts int64, coins []string, opts *PriceOptions) (models.CoinPrices, error) {
	const op = "HistoricalPrices"
	if err := c.checkCoins(op, coins); err != nil {
		return models.CoinPrices{}, err
	}
	if ts <= 0 {
		return models.CoinPrices{}, c.argError(op, "timestamp", "must be a positive unix timestamp")
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostCoins,
		path:  "/prices/historical/" + unixString(ts) + "/" + coinsSegment(coins),
		query: priceQuery(opts),
	}, models.DecodeCoinPrices)
}

// BatchHistoricalPrices returns prices for several coins at several timestamps
// each, given as coin -> unix timestamps.
func (c *Client) BatchHistoricalPrices(ctx context.Context, coins map[string][]int64, opts *PriceOptions) (models.BatchHistoricalPrices, error) {
	const op = "BatchHistoricalPrices"
	if len(coins) == 0 {
		return models.BatchHistoricalPrices{}, c.argError(op, "coins", "at least one coin is required")
	}
	ids := make([]string, 0, len(coins))
	for id := range coins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if err := c.checkCoins(op, ids); err != nil {
		return models.BatchHistoricalPrices{}, err
	}

	encoded, err := jsonAPI.Marshal(coins)
	if err != nil {
		return models.BatchHistoricalPrices{}, c.argError(op, "coins", err.Error())
	}
	query := priceQuery(opts)
	if query == nil {
		query = url.Values{}
	}
	query.Set("coins", string(encoded))

	return fetch(ctx, c, request{
		op:    op,
		host:  hostCoins,
		path:  "/batchHistorical",
		query: query,
	}, models.DecodeBatchHistoricalPrices)
}

// PriceChart returns evenly spaced price points for each coin.
func (c *Client) PriceChart(ctx context.Context, coins []string, opts *ChartOptions) (models.PriceChart, error) {
	const op = "PriceChart"
	if err := c.checkCoins(op, coins); err != nil {
		return models.PriceChart{}, err
	}
	query := url.Values{}
	if opts != nil {
		if opts.Start != 0 && opts.End != 0 {
			return models.PriceChart{}, c.argError(op, "start", "start and end are mutually exclusive")
		}
		setInt(query, "start", opts.Start)
		setInt(query, "end", opts.End)
		setInt(query, "span", opts.Span)
		setString(query, "period", opts.Period)
		setString(query, "searchWidth", opts.SearchWidth)
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostCoins,
		path:  "/chart/" + coinsSegment(coins),
		query: query,
	}, models.DecodePriceChart)
}

// PercentageChange returns each coin's price change in percent over a period.
func (c *Client) PercentageChange(ctx context.Context, coins []string, opts *PercentageOptions) (models.PercentageChange, error) {
	const op = "PercentageChange"
	if err := c.checkCoins(op, coins); err != nil {
		return models.PercentageChange{}, err
	}
	query := url.Values{}
	if opts != nil {
		setInt(query, "timestamp", opts.Timestamp)
		setBool(query, "lookForward", opts.LookForward)
		setString(query, "period", opts.Period)
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostCoins,
		path:  "/percentage/" + coinsSegment(coins),
		query: query,
	}, models.DecodePercentageChange)
}

// FirstPrices returns the earliest recorded price of each coin.
func (c *Client) FirstPrices(ctx context.Context, coins []string) (models.CoinPrices, error) {
	const op = "FirstPrices"
	if err := c.checkCoins(op, coins); err != nil {
		return models.CoinPrices{}, err
	}
	return fetch(ctx, c, request{
		op:   op,
		host: hostCoins,
		path: "/prices/first/" + coinsSegment(coins),
	}, models.DecodeCoinPrices)
}

// Block returns the block of chain closest to the unix timestamp ts.
func (c *Client) Block(ctx context.Context, chain string, ts int64) (models.Block, error) {
	const op = "Block"
	if err := c.checkRequired(op, "chain", chain); err != nil {
		return models.Block{}, err
	}
	if ts <= 0 {
		return models.Block{}, c.argError(op, "timestamp", "must be a positive unix timestamp")
	}
	return fetch(ctx, c, request{
		op:   op,
		host: hostCoins,
		path: pathJoin("block", strings.ToLower(chain), unixString(ts)),
	}, models.DecodeBlock)
}

func priceQuery(opts *PriceOptions) url.Values {
	if opts == nil || opts.SearchWidth == "" {
		return nil
	}
	return url.Values{"searchWidth": {opts.SearchWidth}}
}
