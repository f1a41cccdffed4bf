package models

// CirculatingKind discriminates the variants of Circulating.
type CirculatingKind uint8

const (
	// CirculatingAbsent means the field was missing or null
	CirculatingAbsent CirculatingKind = iota
	// CirculatingByPeg means the service sent a peg -> amount map
	CirculatingByPeg
	// CirculatingSentinel means the service sent a bare number (usually 0) instead of a map
	CirculatingSentinel
)

// Circulating is a circulating-supply field that the service sends either as a
// map of peg type to amount or as a bare number.
type Circulating struct {
	Kind     CirculatingKind
	ByPeg    map[string]float64
	Sentinel float64
}

// Amount returns the amount for peg and whether the map variant holds it.
func (c Circulating) Amount(peg string) (float64, bool) {
	if c.Kind != CirculatingByPeg {
		return 0, false
	}
	v, ok := c.ByPeg[peg]
	return v, ok
}

// MarshalJSON re-emits the variant the service sent.
func (c Circulating) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CirculatingByPeg:
		return jsonAPI.Marshal(c.ByPeg)
	case CirculatingSentinel:
		return jsonAPI.Marshal(c.Sentinel)
	default:
		return []byte("null"), nil
	}
}

// decodeCirculating tries the map variant first, then the bare number.
func decodeCirculating(v Value, path string) (Circulating, error) {
	switch v.kind {
	case KindNull:
		return Circulating{Kind: CirculatingAbsent}, nil
	case KindObject:
		m, err := mapOf(decodeFloat)(v, path)
		if err != nil {
			return Circulating{}, err
		}
		return Circulating{Kind: CirculatingByPeg, ByPeg: m}, nil
	case KindNumber:
		f, err := decodeFloat(v, path)
		if err != nil {
			return Circulating{}, err
		}
		return Circulating{Kind: CirculatingSentinel, Sentinel: f}, nil
	default:
		return Circulating{}, mismatch(path, "object of numbers or number", v)
	}
}

// Stablecoin is an entry of /stablecoins
type Stablecoin struct {
	ID                   string                            `json:"id"`
	Name                 string                            `json:"name"`
	Symbol               string                            `json:"symbol"`
	GeckoID              *string                           `json:"gecko_id,omitempty"`
	PegType              string                            `json:"pegType"`
	PriceSource          *string                           `json:"priceSource,omitempty"`
	PegMechanism         string                            `json:"pegMechanism"`
	Circulating          map[string]float64                `json:"circulating"`
	CirculatingPrevDay   Circulating                       `json:"circulatingPrevDay"`
	CirculatingPrevWeek  Circulating                       `json:"circulatingPrevWeek"`
	CirculatingPrevMonth Circulating                       `json:"circulatingPrevMonth"`
	Price                *float64                          `json:"price,omitempty"`
	ChainCirculating     map[string]map[string]Circulating `json:"chainCirculating,omitempty"`
}

// StablecoinChart is one point of /stablecoincharts/{chain}
type StablecoinChart struct {
	Date                string             `json:"date"`
	TotalCirculating    map[string]float64 `json:"totalCirculating"`
	TotalCirculatingUSD map[string]float64 `json:"totalCirculatingUSD"`
	TotalMintedUSD      map[string]float64 `json:"totalMintedUSD,omitempty"`
	TotalUnreleased     map[string]float64 `json:"totalUnreleased,omitempty"`
}

// StablecoinHistorical is the /stablecoin/{id} response
type StablecoinHistorical struct {
	ID                    string                    `json:"id"`
	Name                  string                    `json:"name"`
	Address               *string                   `json:"address,omitempty"`
	Symbol                string                    `json:"symbol"`
	URL                   *string                   `json:"url,omitempty"`
	Description           *string                   `json:"description,omitempty"`
	MintRedeemDescription *string                   `json:"mintRedeemDescription,omitempty"`
	OnCoinGecko           *string                   `json:"onCoinGecko,omitempty"`
	GeckoID               *string                   `json:"gecko_id,omitempty"`
	CmcID                 *string                   `json:"cmcId,omitempty"`
	PegType               string                    `json:"pegType"`
	PegMechanism          string                    `json:"pegMechanism"`
	PriceSource           *string                   `json:"priceSource,omitempty"`
	AuditLinks            []string                  `json:"auditLinks,omitempty"`
	Twitter               *string                   `json:"twitter,omitempty"`
	Wiki                  *string                   `json:"wiki,omitempty"`
	ChainBalances         map[string]map[string]any `json:"chainBalances,omitempty"`
}

// StablecoinChain is an entry of /stablecoinchains
type StablecoinChain struct {
	Name                string             `json:"name"`
	GeckoID             *string            `json:"gecko_id,omitempty"`
	TokenSymbol         *string            `json:"tokenSymbol,omitempty"`
	TotalCirculatingUSD map[string]float64 `json:"totalCirculatingUSD"`
}

// StablecoinPrice is one dated entry of /stablecoinprices, mapping coin id to price
type StablecoinPrice struct {
	Date   int64              `json:"date"`
	Prices map[string]float64 `json:"prices"`
}

func decodeStablecoin(v Value, path string) (Stablecoin, error) {
	r := newReader(v, path)
	s := Stablecoin{
		ID:                   r.String("id"),
		Name:                 r.String("name"),
		Symbol:               r.String("symbol"),
		GeckoID:              r.OptString("gecko_id"),
		PegType:              r.String("pegType"),
		PriceSource:          r.OptString("priceSource"),
		PegMechanism:         r.String("pegMechanism"),
		Circulating:          r.FloatMap("circulating"),
		CirculatingPrevDay:   optional(r, "circulatingPrevDay", decodeCirculating),
		CirculatingPrevWeek:  optional(r, "circulatingPrevWeek", decodeCirculating),
		CirculatingPrevMonth: optional(r, "circulatingPrevMonth", decodeCirculating),
		Price:                r.OptFloat("price"),
		ChainCirculating:     optional(r, "chainCirculating", mapOf(mapOf(decodeCirculating))),
	}
	return s, r.Err()
}

func decodeStablecoinChart(v Value, path string) (StablecoinChart, error) {
	r := newReader(v, path)
	c := StablecoinChart{
		Date:                r.String("date"),
		TotalCirculating:    r.FloatMap("totalCirculating"),
		TotalCirculatingUSD: r.FloatMap("totalCirculatingUSD"),
		TotalMintedUSD:      r.OptFloatMap("totalMintedUSD"),
		TotalUnreleased:     r.OptFloatMap("totalUnreleased"),
	}
	return c, r.Err()
}

func decodeStablecoinHistorical(v Value, path string) (StablecoinHistorical, error) {
	r := newReader(v, path)
	h := StablecoinHistorical{
		ID:                    r.String("id"),
		Name:                  r.String("name"),
		Address:               r.OptString("address"),
		Symbol:                r.String("symbol"),
		URL:                   r.OptString("url"),
		Description:           r.OptString("description"),
		MintRedeemDescription: r.OptString("mintRedeemDescription"),
		OnCoinGecko:           r.OptString("onCoinGecko"),
		GeckoID:               r.OptString("gecko_id"),
		CmcID:                 r.OptString("cmcId"),
		PegType:               r.String("pegType"),
		PegMechanism:          r.String("pegMechanism"),
		PriceSource:           r.OptString("priceSource"),
		AuditLinks:            r.OptStrings("auditLinks"),
		Twitter:               r.OptString("twitter"),
		Wiki:                  r.OptString("wiki"),
		ChainBalances:         optional(r, "chainBalances", mapOf(mapOf(decodeAny))),
	}
	return h, r.Err()
}

func decodeStablecoinChain(v Value, path string) (StablecoinChain, error) {
	r := newReader(v, path)
	c := StablecoinChain{
		Name:                r.String("name"),
		GeckoID:             r.OptString("gecko_id"),
		TokenSymbol:         r.OptString("tokenSymbol"),
		TotalCirculatingUSD: r.FloatMap("totalCirculatingUSD"),
	}
	return c, r.Err()
}

func decodeStablecoinPrice(v Value, path string) (StablecoinPrice, error) {
	r := newReader(v, path)
	p := StablecoinPrice{
		Date:   r.Int("date"),
		Prices: r.FloatMap("prices"),
	}
	return p, r.Err()
}

// DecodeStablecoins decodes the unwrapped /stablecoins array
func DecodeStablecoins(v Value) ([]Stablecoin, error) {
	return listOf(decodeStablecoin)(v, RootPath)
}

// DecodeStablecoinCharts decodes the /stablecoincharts array
func DecodeStablecoinCharts(v Value) ([]StablecoinChart, error) {
	return listOf(decodeStablecoinChart)(v, RootPath)
}

// DecodeStablecoinHistorical decodes the /stablecoin/{id} object
func DecodeStablecoinHistorical(v Value) (StablecoinHistorical, error) {
	return decodeStablecoinHistorical(v, RootPath)
}

// DecodeStablecoinChains decodes the /stablecoinchains array
func DecodeStablecoinChains(v Value) ([]StablecoinChain, error) {
	return listOf(decodeStablecoinChain)(v, RootPath)
}

// DecodeStablecoinPrices decodes the /stablecoinprices array
func DecodeStablecoinPrices(v Value) ([]StablecoinPrice, error) {
	return listOf(decodeStablecoinPrice)(v, RootPath)
}
