package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v3"

	"github.com/caentzminger/defillama"
	"github.com/caentzminger/defillama/models"
)

// resolveCoin turns a command-line coin into an identifier. Identifiers that
// already carry a chain prefix pass through, bare 0x addresses are taken as
// tokens on chain, and anything else is a CoinGecko id. Addresses keep the
// casing they were typed in.
func resolveCoin(arg, chain string) string {
	switch {
	case strings.Contains(arg, ":"):
		return arg
	case common.IsHexAddress(arg):
		return chain + ":" + arg
	default:
		return string(models.GeckoCoin(arg))
	}
}

// resolveCoins accepts coins as separate arguments, comma-joined, or both.
func resolveCoins(args []string, chain string) []string {
	var coins []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				coins = append(coins, resolveCoin(part, chain))
			}
		}
	}
	return coins
}

// parseTimestamp reads unix seconds or an RFC3339 time.
func parseTimestamp(s string) (int64, error) {
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: want unix seconds or RFC3339", s)
	}
	return t.Unix(), nil
}

// parseBatch reads "coin=ts1,ts2" arguments into the batch lookup map.
func parseBatch(args []string, chain string) (map[string][]int64, error) {
	batch := make(map[string][]int64, len(args))
	for _, arg := range args {
		coin, list, ok := strings.Cut(arg, "=")
		if !ok || coin == "" || list == "" {
			return nil, fmt.Errorf("invalid batch entry %q: want coin=ts1,ts2", arg)
		}
		id := resolveCoin(coin, chain)
		for _, raw := range strings.Split(list, ",") {
			ts, err := parseTimestamp(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			batch[id] = append(batch[id], ts)
		}
	}
	return batch, nil
}

// optionalBool maps an unset flag to nil so the service default applies.
func optionalBool(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	return defillama.Bool(cmd.Bool(name))
}

// arg returns the i-th positional argument, or "" when absent.
func arg(cmd *cli.Command, i int) string {
	return cmd.Args().Get(i)
}

// timestampArg parses the i-th positional argument as a timestamp.
func timestampArg(cmd *cli.Command, i int, name string) (int64, error) {
	raw := arg(cmd, i)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	return parseTimestamp(raw)
}
