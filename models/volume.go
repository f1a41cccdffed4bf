package models

// VolumeOverview is the /overview/dexs and /overview/options response
type VolumeOverview struct {
	TotalDataChart          []ChartPoint   `json:"totalDataChart"`
	TotalDataChartBreakdown []ChartPoint   `json:"totalDataChartBreakdown"`
	Breakdown24h            map[string]any `json:"breakdown24h,omitempty"`
	Breakdown30d            map[string]any `json:"breakdown30d,omitempty"`
	Chain                   *string        `json:"chain,omitempty"`
	AllChains               []string       `json:"allChains"`
}

// FeeOverview is the /overview/fees response
type FeeOverview struct {
	TotalDataChart          []ChartPoint   `json:"totalDataChart"`
	TotalDataChartBreakdown []ChartPoint   `json:"totalDataChartBreakdown"`
	Breakdown24h            map[string]any `json:"breakdown24h,omitempty"`
	Breakdown30d            map[string]any `json:"breakdown30d,omitempty"`
	Chain                   *string        `json:"chain,omitempty"`
	AllChains               []string       `json:"allChains"`
}

// DexSummary is the /summary/dexs/{slug} and /summary/options/{slug} response
type DexSummary struct {
	Name                    string            `json:"name"`
	Category                string            `json:"category"`
	TotalVolume             float64           `json:"totalVolume"`
	DailyVolume             *float64          `json:"dailyVolume,omitempty"`
	MonthlyVolume           *float64          `json:"monthlyVolume,omitempty"`
	Chains                  []string          `json:"chains,omitempty"`
	MethodologyURL          *string           `json:"methodologyURL,omitempty"`
	Methodology             map[string]string `json:"methodology,omitempty"`
	AllChains               []string          `json:"allChains,omitempty"`
	TotalDataChart          []ChartPoint      `json:"totalDataChart,omitempty"`
	TotalDataChartBreakdown []ChartPoint      `json:"totalDataChartBreakdown,omitempty"`
}

// FeeSummary is the /summary/fees/{slug} response
type FeeSummary struct {
	Name                    string            `json:"name"`
	Category                string            `json:"category"`
	DailyFees               *float64          `json:"dailyFees,omitempty"`
	DailyRevenue            *float64          `json:"dailyRevenue,omitempty"`
	TotalFees               float64           `json:"totalFees"`
	TotalRevenue            float64           `json:"totalRevenue"`
	Chains                  []string          `json:"chains,omitempty"`
	MethodologyURL          *string           `json:"methodologyURL,omitempty"`
	Methodology             map[string]string `json:"methodology,omitempty"`
	AllChains               []string          `json:"allChains,omitempty"`
	TotalDataChart          []ChartPoint      `json:"totalDataChart,omitempty"`
	TotalDataChartBreakdown []ChartPoint      `json:"totalDataChartBreakdown,omitempty"`
}

// DecodeVolumeOverview decodes a DEX or options overview. The service has been seen
// to send breakdown rows whose value is an object rather than a number; those fail
// validation instead of being reshaped.
func DecodeVolumeOverview(v Value) (VolumeOverview, error) {
	r := newReader(v, RootPath)
	o := VolumeOverview{
		TotalDataChart:          r.Chart("totalDataChart"),
		TotalDataChartBreakdown: r.Chart("totalDataChartBreakdown"),
		Breakdown24h:            r.OptObject("breakdown24h"),
		Breakdown30d:            r.OptObject("breakdown30d"),
		Chain:                   r.OptString("chain"),
		AllChains:               r.Strings("allChains"),
	}
	return o, r.Err()
}

// DecodeFeeOverview decodes a fees or revenue overview
func DecodeFeeOverview(v Value) (FeeOverview, error) {
	r := newReader(v, RootPath)
	o := FeeOverview{
		TotalDataChart:          r.Chart("totalDataChart"),
		TotalDataChartBreakdown: r.Chart("totalDataChartBreakdown"),
		Breakdown24h:            r.OptObject("breakdown24h"),
		Breakdown30d:            r.OptObject("breakdown30d"),
		Chain:                   r.OptString("chain"),
		AllChains:               r.Strings("allChains"),
	}
	return o, r.Err()
}

// DecodeDexSummary decodes a DEX or options protocol summary
func DecodeDexSummary(v Value) (DexSummary, error) {
	r := newReader(v, RootPath)
	s := DexSummary{
		Name:                    r.String("name"),
		Category:                r.String("category"),
		TotalVolume:             r.Float("totalVolume"),
		DailyVolume:             r.OptFloat("dailyVolume"),
		MonthlyVolume:           r.OptFloat("monthlyVolume"),
		Chains:                  r.OptStrings("chains"),
		MethodologyURL:          r.OptString("methodologyURL"),
		Methodology:             r.OptStringMap("methodology"),
		AllChains:               r.OptStrings("allChains"),
		TotalDataChart:          r.OptChart("totalDataChart"),
		TotalDataChartBreakdown: r.OptChart("totalDataChartBreakdown"),
	}
	return s, r.Err()
}

// DecodeFeeSummary decodes a protocol fees summary
func DecodeFeeSummary(v Value) (FeeSummary, error) {
	r := newReader(v, RootPath)
	s := FeeSummary{
		Name:                    r.String("name"),
		Category:                r.String("category"),
		DailyFees:               r.OptFloat("dailyFees"),
		DailyRevenue:            r.OptFloat("dailyRevenue"),
		TotalFees:               r.Float("totalFees"),
		TotalRevenue:            r.Float("totalRevenue"),
		Chains:                  r.OptStrings("chains"),
		MethodologyURL:          r.OptString("methodologyURL"),
		Methodology:             r.OptStringMap("methodology"),
		AllChains:               r.OptStrings("allChains"),
		TotalDataChart:          r.OptChart("totalDataChart"),
		TotalDataChartBreakdown: r.OptChart("totalDataChartBreakdown"),
	}
	return s, r.Err()
}
