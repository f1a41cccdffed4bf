package defillama

import (
	"context"

	"github.com/caentzminger/defillama/models"
)

// Protocols lists every protocol with its current TVL.
func (c *Client) Protocols(ctx context.Context) ([]models.Protocol, error) {
	return fetch(ctx, c, request{
		op:   "Protocols",
		host: hostAPI,
		path: "/protocols",
	}, models.DecodeProtocols)
}

// Protocol returns a protocol's historical TVL, overall and per chain.
func (c *Client) Protocol(ctx context.Context, slug string) (models.ProtocolDetails, error) {
	const op = "Protocol"
	if err := c.checkRequired(op, "slug", slug); err != nil {
		return models.ProtocolDetails{}, err
	}
	return fetch(ctx, c, request{
		op:   op,
		host: hostAPI,
		path: pathJoin("protocol", slug),
	}, models.DecodeProtocolDetails)
}

// HistoricalChainTVL returns the TVL history of one chain, or of all chains when chain is empty.
func (c *Client) HistoricalChainTVL(ctx context.Context, chain string) ([]models.HistoricalTVL, error) {
	path := "/v2/historicalChainTvl"
	if chain != "" {
		path += pathJoin(chain)
	}
	return fetch(ctx, c, request{
		op:   "HistoricalChainTVL",
		host: hostAPI,
		path: path,
	}, models.DecodeHistoricalTVL)
}

// ProtocolTVL returns a protocol's current TVL as a single number.
func (c *Client) ProtocolTVL(ctx context.Context, slug string) (float64, error) {
	const op = "ProtocolTVL"
	if err := c.checkRequired(op, "slug", slug); err != nil {
		return 0, err
	}
	return fetch(ctx, c, request{
		op:   op,
		host: hostAPI,
		path: pathJoin("tvl", slug),
	}, models.DecodeTVL)
}

// Chains lists every chain with its current TVL.
func (c *Client) Chains(ctx context.Context) ([]models.Chain, error) {
	return fetch(ctx, c, request{
		op:   "Chains",
		host: hostAPI,
		path: "/v2/chains",
	}, models.DecodeChains)
}
