package defillama

import (
	"context"
	"net/url"

	"github.com/caentzminger/defillama/models"
)

// DataType selects the series an overview or summary aggregates.
type DataType string

const (
	DataTypeDailyFees           DataType = "dailyFees"
	DataTypeDailyRevenue        DataType = "dailyRevenue"
	DataTypeDailyNotionalVolume DataType = "dailyNotionalVolume"
	DataTypeDailyPremiumVolume  DataType = "dailyPremiumVolume"
)

var (
	feeDataTypes     = []DataType{DataTypeDailyFees, DataTypeDailyRevenue}
	optionsDataTypes = []DataType{DataTypeDailyNotionalVolume, DataTypeDailyPremiumVolume}
)

// VolumeOptions configures the volume, options and fees overviews and summaries.
// Unset fields are not sent, leaving the service defaults.
type VolumeOptions struct {
	ExcludeTotalDataChart          *bool
	ExcludeTotalDataChartBreakdown *bool
	// DataType applies to options and fees only.
	DataType DataType
}

func (c *Client) volumeQuery(op string, opts *VolumeOptions, allowed []DataType) (url.Values, error) {
	query := url.Values{}
	if opts == nil {
		return query, nil
	}
	setBool(query, "excludeTotalDataChart", opts.ExcludeTotalDataChart)
	setBool(query, "excludeTotalDataChartBreakdown", opts.ExcludeTotalDataChartBreakdown)
	if opts.DataType == "" {
		return query, nil
	}
	for _, dt := range allowed {
		if dt == opts.DataType {
			query.Set("dataType", string(dt))
			return query, nil
		}
	}
	return nil, c.argError(op, "dataType", "unsupported data type "+string(opts.DataType))
}

func overviewPath(kind, chain string) string {
	if chain == "" {
		return pathJoin("overview", kind)
	}
	return pathJoin("overview", kind, chain)
}

// DexOverview lists DEXs with their volume summaries, for one chain or all when chain is empty.
func (c *Client) DexOverview(ctx context.Context, chain string, opts *VolumeOptions) (models.VolumeOverview, error) {
	const op = "DexOverview"
	query, err := c.volumeQuery(op, opts, nil)
	if err != nil {
		return models.VolumeOverview{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  overviewPath("dexs", chain),
		query: query,
	}, models.DecodeVolumeOverview)
}

// DexSummary returns a DEX's volume summary with history.
func (c *Client) DexSummary(ctx context.Context, slug string, opts *VolumeOptions) (models.DexSummary, error) {
	const op = "DexSummary"
	if err := c.checkRequired(op, "slug", slug); err != nil {
		return models.DexSummary{}, err
	}
	query, err := c.volumeQuery(op, opts, nil)
	if err != nil {
		return models.DexSummary{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  pathJoin("summary", "dexs", slug),
		query: query,
	}, models.DecodeDexSummary)
}

// OptionsOverview lists options DEXs with their volume summaries.
func (c *Client) OptionsOverview(ctx context.Context, chain string, opts *VolumeOptions) (models.VolumeOverview, error) {
	const op = "OptionsOverview"
	query, err := c.volumeQuery(op, opts, optionsDataTypes)
	if err != nil {
		return models.VolumeOverview{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  overviewPath("options", chain),
		query: query,
	}, models.DecodeVolumeOverview)
}

// OptionsSummary returns an options DEX's volume summary with history.
func (c *Client) OptionsSummary(ctx context.Context, slug string, opts *VolumeOptions) (models.DexSummary, error) {
	const op = "OptionsSummary"
	if err := c.checkRequired(op, "slug", slug); err != nil {
		return models.DexSummary{}, err
	}
	query, err := c.volumeQuery(op, opts, optionsDataTypes)
	if err != nil {
		return models.DexSummary{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  pathJoin("summary", "options", slug),
		query: query,
	}, models.DecodeDexSummary)
}

// FeesOverview lists protocols with their fees or revenue summaries.
func (c *Client) FeesOverview(ctx context.Context, chain string, opts *VolumeOptions) (models.FeeOverview, error) {
	const op = "FeesOverview"
	query, err := c.volumeQuery(op, opts, feeDataTypes)
	if err != nil {
		return models.FeeOverview{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  overviewPath("fees", chain),
		query: query,
	}, models.DecodeFeeOverview)
}

// FeeSummary returns a protocol's fees and revenue summary with history.
func (c *Client) FeeSummary(ctx context.Context, slug string, opts *VolumeOptions) (models.FeeSummary, error) {
	const op = "FeeSummary"
	if err := c.checkRequired(op, "slug", slug); err != nil {
		return models.FeeSummary{}, err
	}
	query, err := c.volumeQuery(op, opts, feeDataTypes)
	if err != nil {
		return models.FeeSummary{}, err
	}
	return fetch(ctx, c, request{
		op:    op,
		host:  hostAPI,
		path:  pathJoin("summary", "fees", slug),
		query: query,
	}, models.DecodeFeeSummary)
}
