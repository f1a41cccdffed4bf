package models

import "time"

// Protocol is an entry of the /protocols listing
type Protocol struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Address     *string            `json:"address,omitempty"`
	Symbol      string             `json:"symbol"`
	URL         *string            `json:"url,omitempty"`
	Description *string            `json:"description,omitempty"`
	Chain       *string            `json:"chain,omitempty"`
	Logo        *string            `json:"logo,omitempty"`
	Chains      []string           `json:"chains"`
	GeckoID     *string            `json:"gecko_id,omitempty"`
	CmcID       *string            `json:"cmcId,omitempty"`
	Category    string             `json:"category"`
	TVL         *float64           `json:"tvl,omitempty"`
	ChainTVLs   map[string]float64 `json:"chainTvls"`
	Change1h    *float64           `json:"change_1h,omitempty"`
	Change1d    *float64           `json:"change_1d,omitempty"`
	Change7d    *float64           `json:"change_7d,omitempty"`
}

// ProtocolTVLPoint is one point of a protocol's historical TVL series
type ProtocolTVLPoint struct {
	Date              time.Time `json:"date"`
	TotalLiquidityUSD float64   `json:"totalLiquidityUSD"`
}

// TokenHistory is a dated token breakdown
type TokenHistory struct {
	Date   time.Time          `json:"date"`
	Tokens map[string]float64 `json:"tokens"`
}

// ProtocolChainTVL is a protocol's history on a single chain
type ProtocolChainTVL struct {
	TVL         []ProtocolTVLPoint `json:"tvl"`
	Tokens      []TokenHistory     `json:"tokens,omitempty"`
	TokensInUSD []TokenHistory     `json:"tokensInUsd,omitempty"`
}

// ProtocolDetails is the /protocol/{slug} response
type ProtocolDetails struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Address     *string                     `json:"address,omitempty"`
	Symbol      string                      `json:"symbol"`
	URL         *string                     `json:"url,omitempty"`
	Description *string                     `json:"description,omitempty"`
	Chain       *string                     `json:"chain,omitempty"`
	Logo        *string                     `json:"logo,omitempty"`
	Chains      []string                    `json:"chains"`
	GeckoID     *string                     `json:"gecko_id,omitempty"`
	CmcID       *string                     `json:"cmcId,omitempty"`
	Category    string                      `json:"category"`
	TVL         []ProtocolTVLPoint          `json:"tvl"`
	Tokens      []TokenHistory              `json:"tokens,omitempty"`
	TokensInUSD []TokenHistory              `json:"tokensInUsd,omitempty"`
	ChainTVLs   map[string]ProtocolChainTVL `json:"chainTvls"`
}

// HistoricalTVL is a point of the chain-level /v2/historicalChainTvl series
type HistoricalTVL struct {
	Date time.Time `json:"date"`
	TVL  float64   `json:"tvl"`
}

// Chain is an entry of /v2/chains
type Chain struct {
	Name        string   `json:"name"`
	GeckoID     *string  `json:"gecko_id,omitempty"`
	TVL         *float64 `json:"tvl,omitempty"`
	TokenSymbol *string  `json:"tokenSymbol,omitempty"`
	CmcID       *string  `json:"cmcId,omitempty"`
	ChainID     *int64   `json:"chainId,omitempty"`
}

func decodeProtocol(v Value, path string) (Protocol, error) {
	r := newReader(v, path)
	p := Protocol{
		ID:          r.String("id"),
		Name:        r.String("name"),
		Address:     r.OptString("address"),
		Symbol:      r.String("symbol"),
		URL:         r.OptString("url"),
		Description: r.OptString("description"),
		Chain:       r.OptString("chain"),
		Logo:        r.OptString("logo"),
		Chains:      r.Strings("chains"),
		GeckoID:     r.OptString("gecko_id"),
		CmcID:       r.OptString("cmcId"),
		Category:    r.String("category"),
		TVL:         r.OptFloat("tvl"),
		ChainTVLs:   r.FloatMap("chainTvls"),
		Change1h:    r.OptFloat("change_1h"),
		Change1d:    r.OptFloat("change_1d"),
		Change7d:    r.OptFloat("change_7d"),
	}
	return p, r.Err()
}

func decodeProtocolTVLPoint(v Value, path string) (ProtocolTVLPoint, error) {
	r := newReader(v, path)
	p := ProtocolTVLPoint{
		Date:              r.Time("date"),
		TotalLiquidityUSD: r.Float("totalLiquidityUSD"),
	}
	return p, r.Err()
}

func decodeTokenHistory(v Value, path string) (TokenHistory, error) {
	r := newReader(v, path)
	h := TokenHistory{
		Date:   r.Time("date"),
		Tokens: r.FloatMap("tokens"),
	}
	return h, r.Err()
}

func decodeProtocolChainTVL(v Value, path string) (ProtocolChainTVL, error) {
	r := newReader(v, path)
	c := ProtocolChainTVL{
		TVL:         optional(r, "tvl", listOf(decodeProtocolTVLPoint)),
		Tokens:      optional(r, "tokens", listOf(decodeTokenHistory)),
		TokensInUSD: optional(r, "tokensInUsd", listOf(decodeTokenHistory)),
	}
	if c.TVL == nil {
		c.TVL = []ProtocolTVLPoint{}
	}
	return c, r.Err()
}

func decodeProtocolDetails(v Value, path string) (ProtocolDetails, error) {
	r := newReader(v, path)
	d := ProtocolDetails{
		ID:          r.String("id"),
		Name:        r.String("name"),
		Address:     r.OptString("address"),
		Symbol:      r.String("symbol"),
		URL:         r.OptString("url"),
		Description: r.OptString("description"),
		Chain:       r.OptString("chain"),
		Logo:        r.OptString("logo"),
		Chains:      r.Strings("chains"),
		GeckoID:     r.OptString("gecko_id"),
		CmcID:       r.OptString("cmcId"),
		Category:    r.String("category"),
		TVL:         optional(r, "tvl", listOf(decodeProtocolTVLPoint)),
		Tokens:      optional(r, "tokens", listOf(decodeTokenHistory)),
		TokensInUSD: optional(r, "tokensInUsd", listOf(decodeTokenHistory)),
		ChainTVLs:   required(r, "chainTvls", "object of chain histories", mapOf(decodeProtocolChainTVL)),
	}
	if d.TVL == nil {
		d.TVL = []ProtocolTVLPoint{}
	}
	return d, r.Err()
}

func decodeHistoricalTVL(v Value, path string) (HistoricalTVL, error) {
	r := newReader(v, path)
	h := HistoricalTVL{
		Date: r.Time("date"),
		TVL:  r.Float("tvl"),
	}
	return h, r.Err()
}

func decodeChain(v Value, path string) (Chain, error) {
	r := newReader(v, path)
	c := Chain{
		Name:        r.String("name"),
		GeckoID:     r.OptString("gecko_id"),
		TVL:         r.OptFloat("tvl"),
		TokenSymbol: r.OptString("tokenSymbol"),
		CmcID:       r.OptString("cmcId"),
		ChainID:     r.OptInt("chainId"),
	}
	return c, r.Err()
}

// DecodeProtocols decodes the /protocols array
func DecodeProtocols(v Value) ([]Protocol, error) {
	return listOf(decodeProtocol)(v, RootPath)
}

// DecodeProtocolDetails decodes the /protocol/{slug} object
func DecodeProtocolDetails(v Value) (ProtocolDetails, error) {
	return decodeProtocolDetails(v, RootPath)
}

// DecodeHistoricalTVL decodes the /v2/historicalChainTvl array
func DecodeHistoricalTVL(v Value) ([]HistoricalTVL, error) {
	return listOf(decodeHistoricalTVL)(v, RootPath)
}

// DecodeChains decodes the /v2/chains array
func DecodeChains(v Value) ([]Chain, error) {
	return listOf(decodeChain)(v, RootPath)
}

// DecodeTVL decodes the bare number returned by /tvl/{slug}
func DecodeTVL(v Value) (float64, error) {
	return decodeFloat(v, RootPath)
}
