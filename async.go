package defillama

import (
	"context"

	"github.com/caentzminger/defillama/models"
)

// Call is an in-flight operation started through AsyncClient.
type Call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func start[T any](fn func() (T, error)) *Call[T] {
	call := &Call[T]{done: make(chan struct{})}
	go func() {
		defer close(call.done)
		call.val, call.err = fn()
	}()
	return call
}

// Done is closed once the call has completed.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call completes and returns its result. It may be called
// any number of times, from any goroutine.
func (c *Call[T]) Wait() (T, error) {
	<-c.done
	return c.val, c.err
}

// AsyncClient exposes every Client operation as a non-blocking call. Cancelling
// the context passed to a method aborts its request; the call then fails with
// a TransportError wrapping the context error.
type AsyncClient struct {
	c *Client
}

// Async returns the non-blocking form of c. Both share the connection pool.
func (c *Client) Async() AsyncClient {
	return AsyncClient{c: c}
}

// Protocols is the non-blocking form of Client.Protocols.
func (a AsyncClient) Protocols(ctx context.Context) *Call[[]models.Protocol] {
	return start(func() ([]models.Protocol, error) { return a.c.Protocols(ctx) })
}

// Protocol is the non-blocking form of Client.Protocol.
func (a AsyncClient) Protocol(ctx context.Context, slug string) *Call[models.ProtocolDetails] {
	return start(func() (models.ProtocolDetails, error) { return a.c.Protocol(ctx, slug) })
}

// HistoricalChainTVL is the non-blocking form of Client.HistoricalChainTVL.
func (a AsyncClient) HistoricalChainTVL(ctx context.Context, chain string) *Call[[]models.HistoricalTVL] {
	return start(func() ([]models.HistoricalTVL, error) { return a.c.HistoricalChainTVL(ctx, chain) })
}

// ProtocolTVL is the non-blocking form of Client.ProtocolTVL.
func (a AsyncClient) ProtocolTVL(ctx context.Context, slug string) *Call[float64] {
	return start(func() (float64, error) { return a.c.ProtocolTVL(ctx, slug) })
}

// Chains is the non-blocking form of Client.Chains.
func (a AsyncClient) Chains(ctx context.Context) *Call[[]models.Chain] {
	return start(func() ([]models.Chain, error) { return a.c.Chains(ctx) })
}

// CurrentPrices is the non-blocking form of Client.CurrentPrices.
func (a AsyncClient) CurrentPrices(ctx context.Context, coins []string, opts *PriceOptions) *Call[models.CoinPrices] {
	return start(func() (models.CoinPrices, error) { return a.c.CurrentPrices(ctx, coins, opts) })
}

// HistoricalPrices is the non-blocking form of Client.HistoricalPrices.
func (a AsyncClient) HistoricalPrices(ctx context.Context, ts int64, coins []string, opts *PriceOptions) *Call[models.CoinPrices] {
	return start(func() (models.CoinPrices, error) { return a.c.HistoricalPrices(ctx, ts, coins, opts) })
}

// BatchHistoricalPrices is the non-blocking form of Client.BatchHistoricalPrices.
func (a AsyncClient) BatchHistoricalPrices(ctx context.Context, coins map[string][]int64, opts *PriceOptions) *Call[models.BatchHistoricalPrices] {
	return start(func() (models.BatchHistoricalPrices, error) { return a.c.BatchHistoricalPrices(ctx, coins, opts) })
}

// PriceChart is the non-blocking form of Client.PriceChart.
func (a AsyncClient) PriceChart(ctx context.Context, coins []string, opts *ChartOptions) *Call[models.PriceChart] {
	return start(func() (models.PriceChart, error) { return a.c.PriceChart(ctx, coins, opts) })
}

// PercentageChange is the non-blocking form of Client.PercentageChange.
func (a AsyncClient) PercentageChange(ctx context.Context, coins []string, opts *PercentageOptions) *Call[models.PercentageChange] {
	return start(func() (models.PercentageChange, error) { return a.c.PercentageChange(ctx, coins, opts) })
}

// FirstPrices is the non-blocking form of Client.FirstPrices.
func (a AsyncClient) FirstPrices(ctx context.Context, coins []string) *Call[models.CoinPrices] {
	return start(func() (models.CoinPrices, error) { return a.c.FirstPrices(ctx, coins) })
}

// Block is the non-blocking form of Client.Block.
func (a AsyncClient) Block(ctx context.Context, chain string, ts int64) *Call[models.Block] {
	return start(func() (models.Block, error) { return a.c.Block(ctx, chain, ts) })
}

// Stablecoins is the non-blocking form of Client.Stablecoins.
func (a AsyncClient) Stablecoins(ctx context.Context, opts *StablecoinsOptions) *Call[[]models.Stablecoin] {
	return start(func() ([]models.Stablecoin, error) { return a.c.Stablecoins(ctx, opts) })
}

// StablecoinCharts is the non-blocking form of Client.StablecoinCharts.
func (a AsyncClient) StablecoinCharts(ctx context.Context, chain string, opts *StablecoinChartsOptions) *Call[[]models.StablecoinChart] {
	return start(func() ([]models.StablecoinChart, error) { return a.c.StablecoinCharts(ctx, chain, opts) })
}

// StablecoinHistorical is the non-blocking form of Client.StablecoinHistorical.
func (a AsyncClient) StablecoinHistorical(ctx context.Context, id string) *Call[models.StablecoinHistorical] {
	return start(func() (models.StablecoinHistorical, error) { return a.c.StablecoinHistorical(ctx, id) })
}

// StablecoinChains is the non-blocking form of Client.StablecoinChains.
func (a AsyncClient) StablecoinChains(ctx context.Context) *Call[[]models.StablecoinChain] {
	return start(func() ([]models.StablecoinChain, error) { return a.c.StablecoinChains(ctx) })
}

// StablecoinPrices is the non-blocking form of Client.StablecoinPrices.
func (a AsyncClient) StablecoinPrices(ctx context.Context) *Call[[]models.StablecoinPrice] {
	return start(func() ([]models.StablecoinPrice, error) { return a.c.StablecoinPrices(ctx) })
}

// Pools is the non-blocking form of Client.Pools.
func (a AsyncClient) Pools(ctx context.Context) *Call[[]models.Pool] {
	return start(func() ([]models.Pool, error) { return a.c.Pools(ctx) })
}

// PoolChart is the non-blocking form of Client.PoolChart.
func (a AsyncClient) PoolChart(ctx context.Context, poolID string) *Call[[]models.PoolChartPoint] {
	return start(func() ([]models.PoolChartPoint, error) { return a.c.PoolChart(ctx, poolID) })
}

// DexOverview is the non-blocking form of Client.DexOverview.
func (a AsyncClient) DexOverview(ctx context.Context, chain string, opts *VolumeOptions) *Call[models.VolumeOverview] {
	return start(func() (models.VolumeOverview, error) { return a.c.DexOverview(ctx, chain, opts) })
}

// DexSummary is the non-blocking form of Client.DexSummary.
func (a AsyncClient) DexSummary(ctx context.Context, slug string, opts *VolumeOptions) *Call[models.DexSummary] {
	return start(func() (models.DexSummary, error) { return a.c.DexSummary(ctx, slug, opts) })
}

// OptionsOverview is the non-blocking form of Client.OptionsOverview.
func (a AsyncClient) OptionsOverview(ctx context.Context, chain string, opts *VolumeOptions) *Call[models.VolumeOverview] {
	return start(func() (models.VolumeOverview, error) { return a.c.OptionsOverview(ctx, chain, opts) })
}

// OptionsSummary is the non-blocking form of Client.OptionsSummary.
func (a AsyncClient) OptionsSummary(ctx context.Context, slug string, opts *VolumeOptions) *Call[models.DexSummary] {
	return start(func() (models.DexSummary, error) { return a.c.OptionsSummary(ctx, slug, opts) })
}

// FeesOverview is the non-blocking form of Client.FeesOverview.
func (a AsyncClient) FeesOverview(ctx context.Context, chain string, opts *VolumeOptions) *Call[models.FeeOverview] {
	return start(func() (models.FeeOverview, error) { return a.c.FeesOverview(ctx, chain, opts) })
}

// FeeSummary is the non-blocking form of Client.FeeSummary.
func (a AsyncClient) FeeSummary(ctx context.Context, slug string, opts *VolumeOptions) *Call[models.FeeSummary] {
	return start(func() (models.FeeSummary, error) { return a.c.FeeSummary(ctx, slug, opts) })
}
