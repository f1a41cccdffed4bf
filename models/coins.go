package models

// Coin is the price snapshot of a single token
type Coin struct {
	Decimals   *int64   `json:"decimals,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Symbol     *string  `json:"symbol,omitempty"`
	Timestamp  *int64   `json:"timestamp,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// CoinPrices is returned by the current, historical and first price endpoints.
// Keys are the coin identifiers exactly as the service echoes them.
type CoinPrices struct {
	Coins map[string]Coin `json:"coins"`
}

// PricePoint is one observation of a price series
type PricePoint struct {
	Timestamp  int64    `json:"timestamp"`
	Price      float64  `json:"price"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// CoinHistory is one coin's entry in /batchHistorical
type CoinHistory struct {
	Symbol string       `json:"symbol"`
	Prices []PricePoint `json:"prices"`
}

// BatchHistoricalPrices is the /batchHistorical response
type BatchHistoricalPrices struct {
	Coins map[string]CoinHistory `json:"coins"`
}

// CoinChart is one coin's entry in /chart/{coins}
type CoinChart struct {
	Symbol     string       `json:"symbol"`
	Decimals   *int64       `json:"decimals,omitempty"`
	Confidence *float64     `json:"confidence,omitempty"`
	Prices     []PricePoint `json:"prices"`
}

// PriceChart is the /chart/{coins} response
type PriceChart struct {
	Coins map[string]CoinChart `json:"coins"`
}

// PercentageChange maps each coin to its price change in percent
type PercentageChange struct {
	Coins map[string]float64 `json:"coins"`
}

// Block is the block closest to a requested timestamp
type Block struct {
	Height    int64 `json:"height"`
	Timestamp int64 `json:"timestamp"`
}

func decodeCoin(v Value, path string) (Coin, error) {
	r := newReader(v, path)
	c := Coin{
		Decimals:   r.OptInt("decimals"),
		Price:      r.OptFloat("price"),
		Symbol:     r.OptString("symbol"),
		Timestamp:  r.OptInt("timestamp"),
		Confidence: r.OptFloat("confidence"),
	}
	return c, r.Err()
}

func decodePricePoint(v Value, path string) (PricePoint, error) {
	r := newReader(v, path)
	p := PricePoint{
		Timestamp:  r.Int("timestamp"),
		Price:      r.Float("price"),
		Confidence: r.OptFloat("confidence"),
	}
	return p, r.Err()
}

func decodeCoinHistory(v Value, path string) (CoinHistory, error) {
	r := newReader(v, path)
	h := CoinHistory{
		Symbol: r.String("symbol"),
		Prices: required(r, "prices", "array of price points", listOf(decodePricePoint)),
	}
	return h, r.Err()
}

func decodeCoinChart(v Value, path string) (CoinChart, error) {
	r := newReader(v, path)
	c := CoinChart{
		Symbol:     r.String("symbol"),
		Decimals:   r.OptInt("decimals"),
		Confidence: r.OptFloat("confidence"),
		Prices:     required(r, "prices", "array of price points", listOf(decodePricePoint)),
	}
	return c, r.Err()
}

// DecodeCoinPrices decodes a {coins: {id: coin}} object
func DecodeCoinPrices(v Value) (CoinPrices, error) {
	r := newReader(v, RootPath)
	out := CoinPrices{Coins: required(r, "coins", "object of coins", mapOf(decodeCoin))}
	return out, r.Err()
}

// DecodeBatchHistoricalPrices decodes the /batchHistorical object
func DecodeBatchHistoricalPrices(v Value) (BatchHistoricalPrices, error) {
	r := newReader(v, RootPath)
	out := BatchHistoricalPrices{Coins: required(r, "coins", "object of coin histories", mapOf(decodeCoinHistory))}
	return out, r.Err()
}

// DecodePriceChart decodes the /chart/{coins} object
func DecodePriceChart(v Value) (PriceChart, error) {
	r := newReader(v, RootPath)
	out := PriceChart{Coins: required(r, "coins", "object of coin charts", mapOf(decodeCoinChart))}
	return out, r.Err()
}

// DecodePercentageChange decodes the /percentage/{coins} object
func DecodePercentageChange(v Value) (PercentageChange, error) {
	r := newReader(v, RootPath)
	out := PercentageChange{Coins: r.FloatMap("coins")}
	return out, r.Err()
}

// DecodeBlock decodes the /block/{chain}/{timestamp} object
func DecodeBlock(v Value) (Block, error) {
	r := newReader(v, RootPath)
	b := Block{
		Height:    r.Int("height"),
		Timestamp: r.Int("timestamp"),
	}
	return b, r.Err()
}
