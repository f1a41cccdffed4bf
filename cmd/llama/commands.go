package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/caentzminger/defillama"
	"github.com/caentzminger/defillama/models"
)

// chainFlag and searchWidthFlag return fresh instances; flags hold parse state.
func chainFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "chain",
		Value: "ethereum",
		Usage: "chain of bare 0x token addresses",
	}
}

func searchWidthFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "search-width",
		Usage: "how far from the target time a price may be taken, e.g. 4h",
	}
}

func volumeFlags(withDataType bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{Name: "exclude-chart", Usage: "omit totalDataChart"},
		&cli.BoolFlag{Name: "exclude-breakdown", Usage: "omit totalDataChartBreakdown"},
	}
	if withDataType {
		flags = append(flags, &cli.StringFlag{Name: "data-type", Usage: "metric to report, e.g. dailyRevenue"})
	}
	return flags
}

func volumeOptions(cmd *cli.Command) *defillama.VolumeOptions {
	return &defillama.VolumeOptions{
		ExcludeTotalDataChart:          optionalBool(cmd, "exclude-chart"),
		ExcludeTotalDataChartBreakdown: optionalBool(cmd, "exclude-breakdown"),
		DataType:                       defillama.DataType(cmd.String("data-type")),
	}
}

func priceOptions(cmd *cli.Command) *defillama.PriceOptions {
	return &defillama.PriceOptions{SearchWidth: cmd.String("search-width")}
}

func tvlCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "protocols",
			Usage: "list every protocol with its TVL",
			Action: run(func(ctx context.Context, _ *cli.Command) ([]models.Protocol, error) {
				return a.client.Protocols(ctx)
			}),
		},
		{
			Name:      "protocol",
			Usage:     "historical TVL of a protocol, per token and chain",
			ArgsUsage: "<slug>",
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.ProtocolDetails, error) {
				return a.client.Protocol(ctx, arg(cmd, 0))
			}),
		},
		{
			Name:      "chain-tvl",
			Usage:     "historical TVL of DeFi on all chains, or on one",
			ArgsUsage: "[chain]",
			Action: run(func(ctx context.Context, cmd *cli.Command) ([]models.HistoricalTVL, error) {
				return a.client.HistoricalChainTVL(ctx, arg(cmd, 0))
			}),
		},
		{
			Name:      "tvl",
			Usage:     "current TVL of a protocol",
			ArgsUsage: "<slug>",
			Action: run(func(ctx context.Context, cmd *cli.Command) (float64, error) {
				return a.client.ProtocolTVL(ctx, arg(cmd, 0))
			}),
		},
		{
			Name:  "chains",
			Usage: "current TVL of every chain",
			Action: run(func(ctx context.Context, _ *cli.Command) ([]models.Chain, error) {
				return a.client.Chains(ctx)
			}),
		},
	}
}

func coinCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "prices",
			Usage:     "current token prices",
			ArgsUsage: "<coin>...",
			Flags:     []cli.Flag{chainFlag(), searchWidthFlag()},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.CoinPrices, error) {
				coins := resolveCoins(cmd.Args().Slice(), cmd.String("chain"))
				return a.client.CurrentPrices(ctx, coins, priceOptions(cmd))
			}),
		},
		{
			Name:      "historical-prices",
			Usage:     "token prices at a point in time",
			ArgsUsage: "<timestamp> <coin>...",
			Flags:     []cli.Flag{chainFlag(), searchWidthFlag()},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.CoinPrices, error) {
				ts, err := timestampArg(cmd, 0, "timestamp")
				if err != nil {
					return models.CoinPrices{}, err
				}
				coins := resolveCoins(cmd.Args().Tail(), cmd.String("chain"))
				return a.client.HistoricalPrices(ctx, ts, coins, priceOptions(cmd))
			}),
		},
		{
			Name:      "batch-historical",
			Usage:     "token prices at several points in time",
			ArgsUsage: "<coin=ts1,ts2>...",
			Flags:     []cli.Flag{chainFlag(), searchWidthFlag()},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.BatchHistoricalPrices, error) {
				batch, err := parseBatch(cmd.Args().Slice(), cmd.String("chain"))
				if err != nil {
					return models.BatchHistoricalPrices{}, err
				}
				return a.client.BatchHistoricalPrices(ctx, batch, priceOptions(cmd))
			}),
		},
		{
			Name:      "price-chart",
			Usage:     "token prices at regular intervals",
			ArgsUsage: "<coin>...",
			Flags: []cli.Flag{
				chainFlag(),
				searchWidthFlag(),
				&cli.StringFlag{Name: "start", Usage: "first point, unix seconds or RFC3339"},
				&cli.StringFlag{Name: "end", Usage: "last point, unix seconds or RFC3339"},
				&cli.IntFlag{Name: "span", Usage: "number of points"},
				&cli.StringFlag{Name: "period", Usage: "interval between points, e.g. 2d"},
			},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.PriceChart, error) {
				opts := &defillama.ChartOptions{
					Span:        cmd.Int("span"),
					Period:      cmd.String("period"),
					SearchWidth: cmd.String("search-width"),
				}
				var err error
				if s := cmd.String("start"); s != "" {
					if opts.Start, err = parseTimestamp(s); err != nil {
						return models.PriceChart{}, err
					}
				}
				if s := cmd.String("end"); s != "" {
					if opts.End, err = parseTimestamp(s); err != nil {
						return models.PriceChart{}, err
					}
				}
				coins := resolveCoins(cmd.Args().Slice(), cmd.String("chain"))
				return a.client.PriceChart(ctx, coins, opts)
			}),
		},
		{
			Name:      "percentage",
			Usage:     "percentage price change over a period",
			ArgsUsage: "<coin>...",
			Flags: []cli.Flag{
				chainFlag(),
				&cli.StringFlag{Name: "timestamp", Usage: "reference point, unix seconds or RFC3339"},
				&cli.BoolFlag{Name: "look-forward", Usage: "measure forward from the reference point"},
				&cli.StringFlag{Name: "period", Usage: "measured duration, e.g. 1w"},
			},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.PercentageChange, error) {
				opts := &defillama.PercentageOptions{
					LookForward: optionalBool(cmd, "look-forward"),
					Period:      cmd.String("period"),
				}
				if s := cmd.String("timestamp"); s != "" {
					ts, err := parseTimestamp(s)
					if err != nil {
						return models.PercentageChange{}, err
					}
					opts.Timestamp = ts
				}
				coins := resolveCoins(cmd.Args().Slice(), cmd.String("chain"))
				return a.client.PercentageChange(ctx, coins, opts)
			}),
		},
		{
			Name:      "first-prices",
			Usage:     "earliest recorded price of each token",
			ArgsUsage: "<coin>...",
			Flags:     []cli.Flag{chainFlag()},
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.CoinPrices, error) {
				return a.client.FirstPrices(ctx, resolveCoins(cmd.Args().Slice(), cmd.String("chain")))
			}),
		},
		{
			Name:      "block",
			Usage:     "block closest to a timestamp",
			ArgsUsage: "<chain> <timestamp>",
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.Block, error) {
				ts, err := timestampArg(cmd, 1, "timestamp")
				if err != nil {
					return models.Block{}, err
				}
				return a.client.Block(ctx, arg(cmd, 0), ts)
			}),
		},
	}
}

func stablecoinCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "stablecoins",
			Usage: "list every stablecoin with its circulating amount",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "include-prices", Usage: "include current prices"},
			},
			Action: run(func(ctx context.Context, cmd *cli.Command) ([]models.Stablecoin, error) {
				return a.client.Stablecoins(ctx, &defillama.StablecoinsOptions{
					IncludePrices: optionalBool(cmd, "include-prices"),
				})
			}),
		},
		{
			Name:      "stablecoin-charts",
			Usage:     "historical market cap of stablecoins on all chains, or on one",
			ArgsUsage: "[chain]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "stablecoin", Usage: "restrict to one stablecoin id"},
			},
			Action: run(func(ctx context.Context, cmd *cli.Command) ([]models.StablecoinChart, error) {
				return a.client.StablecoinCharts(ctx, arg(cmd, 0), &defillama.StablecoinChartsOptions{
					Stablecoin: cmd.String("stablecoin"),
				})
			}),
		},
		{
			Name:      "stablecoin",
			Usage:     "historical market cap and chain distribution of a stablecoin",
			ArgsUsage: "<id>",
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.StablecoinHistorical, error) {
				return a.client.StablecoinHistorical(ctx, arg(cmd, 0))
			}),
		},
		{
			Name:  "stablecoin-chains",
			Usage: "current stablecoin market cap of every chain",
			Action: run(func(ctx context.Context, _ *cli.Command) ([]models.StablecoinChain, error) {
				return a.client.StablecoinChains(ctx)
			}),
		},
		{
			Name:  "stablecoin-prices",
			Usage: "historical stablecoin prices",
			Action: run(func(ctx context.Context, _ *cli.Command) ([]models.StablecoinPrice, error) {
				return a.client.StablecoinPrices(ctx)
			}),
		},
	}
}

func yieldCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "pools",
			Usage: "latest data of every yield pool",
			Action: run(func(ctx context.Context, _ *cli.Command) ([]models.Pool, error) {
				return a.client.Pools(ctx)
			}),
		},
		{
			Name:      "pool-chart",
			Usage:     "historical APY and TVL of a pool",
			ArgsUsage: "<pool-id>",
			Action: run(func(ctx context.Context, cmd *cli.Command) ([]models.PoolChartPoint, error) {
				return a.client.PoolChart(ctx, arg(cmd, 0))
			}),
		},
	}
}

func volumeCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "dexs",
			Usage:     "DEX volume overview on all chains, or on one",
			ArgsUsage: "[chain]",
			Flags:     volumeFlags(false),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.VolumeOverview, error) {
				return a.client.DexOverview(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
		{
			Name:      "dex",
			Usage:     "volume summary of a DEX",
			ArgsUsage: "<slug>",
			Flags:     volumeFlags(false),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.DexSummary, error) {
				return a.client.DexSummary(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
		{
			Name:      "options",
			Usage:     "options volume overview on all chains, or on one",
			ArgsUsage: "[chain]",
			Flags:     volumeFlags(true),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.VolumeOverview, error) {
				return a.client.OptionsOverview(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
		{
			Name:      "option",
			Usage:     "volume summary of an options protocol",
			ArgsUsage: "<slug>",
			Flags:     volumeFlags(true),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.DexSummary, error) {
				return a.client.OptionsSummary(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
		{
			Name:      "fees",
			Usage:     "fees and revenue overview on all chains, or on one",
			ArgsUsage: "[chain]",
			Flags:     volumeFlags(true),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.FeeOverview, error) {
				return a.client.FeesOverview(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
		{
			Name:      "fee",
			Usage:     "fees and revenue summary of a protocol",
			ArgsUsage: "<slug>",
			Flags:     volumeFlags(true),
			Action: run(func(ctx context.Context, cmd *cli.Command) (models.FeeSummary, error) {
				return a.client.FeeSummary(ctx, arg(cmd, 0), volumeOptions(cmd))
			}),
		},
	}
}
