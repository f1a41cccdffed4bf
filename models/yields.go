package models

import "time"

// Pool is a yield pool snapshot from /pools
type Pool struct {
	Chain            string         `json:"chain"`
	Project          string         `json:"project"`
	Symbol           string         `json:"symbol"`
	PoolID           string         `json:"pool"`
	TVLUSD           float64        `json:"tvlUsd"`
	APY              float64        `json:"apy"`
	APYBase          *float64       `json:"apyBase,omitempty"`
	APYReward        *float64       `json:"apyReward,omitempty"`
	RewardTokens     []*string      `json:"rewardTokens,omitempty"`
	APYPct1D         *float64       `json:"apyPct1D,omitempty"`
	APYPct7D         *float64       `json:"apyPct7D,omitempty"`
	APYPct30D        *float64       `json:"apyPct30D,omitempty"`
	Stablecoin       bool           `json:"stablecoin"`
	ILRisk           *string        `json:"ilRisk,omitempty"`
	Exposure         *string        `json:"exposure,omitempty"`
	Predictions      map[string]any `json:"predictions,omitempty"`
	PoolMeta         *string        `json:"poolMeta,omitempty"`
	Mu               *float64       `json:"mu,omitempty"`
	Sigma            *float64       `json:"sigma,omitempty"`
	UnderlyingTokens []string       `json:"underlyingTokens,omitempty"`
	IL7d             *float64       `json:"il7d,omitempty"`
	APYBase7d        *float64       `json:"apyBase7d,omitempty"`
	APYMean30d       *float64       `json:"apyMean30d,omitempty"`
	VolumeUSD1d      *float64       `json:"volumeUsd1d,omitempty"`
	VolumeUSD7d      *float64       `json:"volumeUsd7d,omitempty"`
}

// PoolChartPoint is one point of a pool's APY/TVL history
type PoolChartPoint struct {
	Timestamp time.Time `json:"timestamp"`
	TVLUSD    float64   `json:"tvlUsd"`
	APY       *float64  `json:"apy,omitempty"`
	APYBase   *float64  `json:"apyBase,omitempty"`
	APYReward *float64  `json:"apyReward,omitempty"`
	IL7d      *float64  `json:"il7d,omitempty"`
	APYBase7d *float64  `json:"apyBase7d,omitempty"`
}

func decodePool(v Value, path string) (Pool, error) {
	r := newReader(v, path)
	p := Pool{
		Chain:            r.String("chain"),
		Project:          r.String("project"),
		Symbol:           r.String("symbol"),
		PoolID:           r.String("pool"),
		TVLUSD:           r.Float("tvlUsd"),
		APY:              r.Float("apy"),
		APYBase:          r.OptFloat("apyBase"),
		APYReward:        r.OptFloat("apyReward"),
		RewardTokens:     optional(r, "rewardTokens", listOf(nullable(decodeString))),
		APYPct1D:         r.OptFloat("apyPct1D"),
		APYPct7D:         r.OptFloat("apyPct7D"),
		APYPct30D:        r.OptFloat("apyPct30D"),
		Stablecoin:       r.Bool("stablecoin"),
		ILRisk:           r.OptString("ilRisk"),
		Exposure:         r.OptString("exposure"),
		Predictions:      r.OptObject("predictions"),
		PoolMeta:         r.OptString("poolMeta"),
		Mu:               r.OptFloat("mu"),
		Sigma:            r.OptFloat("sigma"),
		UnderlyingTokens: r.OptStrings("underlyingTokens"),
		IL7d:             r.OptFloat("il7d"),
		APYBase7d:        r.OptFloat("apyBase7d"),
		APYMean30d:       r.OptFloat("apyMean30d"),
		VolumeUSD1d:      r.OptFloat("volumeUsd1d"),
		VolumeUSD7d:      r.OptFloat("volumeUsd7d"),
	}
	return p, r.Err()
}

func decodePoolChartPoint(v Value, path string) (PoolChartPoint, error) {
	r := newReader(v, path)
	p := PoolChartPoint{
		Timestamp: r.Time("timestamp"),
		TVLUSD:    r.Float("tvlUsd"),
		APY:       r.OptFloat("apy"),
		APYBase:   r.OptFloat("apyBase"),
		APYReward: r.OptFloat("apyReward"),
		IL7d:      r.OptFloat("il7d"),
		APYBase7d: r.OptFloat("apyBase7d"),
	}
	return p, r.Err()
}

// DecodePools decodes the unwrapped /pools array
func DecodePools(v Value) ([]Pool, error) {
	return listOf(decodePool)(v, RootPath)
}

// DecodePoolChart decodes the unwrapped /chart/{pool} array
func DecodePoolChart(v Value) ([]PoolChartPoint, error) {
	return listOf(decodePoolChartPoint)(v, RootPath)
}
