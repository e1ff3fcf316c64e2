package econ

// Synthetic fallback dataset.  Values are round-number approximations of
// the real US series, good enough to exercise every downstream consumer
// with the same schema.  Results built from these are flagged synthetic.

var syntheticYears = []int{1970, 1975, 1980, 1985, 1990, 1995, 2000, 2005, 2010, 2015, 2020, 2023}

var (
	syntheticHomePrice = []float64{23400, 39300, 64600, 84300, 122900, 133900, 165300, 232500, 222900, 289200, 329000, 431000}
	syntheticIncome    = []float64{8730, 11800, 17710, 23620, 29940, 34080, 41990, 46330, 49280, 56520, 68010, 74580}
	syntheticCPI       = []float64{38.8, 53.8, 82.4, 107.6, 130.7, 152.4, 172.2, 195.3, 218.1, 237.0, 258.8, 304.7}
)

// SyntheticSeries builds the placeholder core dataset used when no real
// source is reachable and fallback is enabled.
func SyntheticSeries() map[string]*Series {
	return map[string]*Series{
		HomePrice: yearSeries(HomePrice, syntheticHomePrice),
		Income:    yearSeries(Income, syntheticIncome),
		CPI:       yearSeries(CPI, syntheticCPI),
	}
}

func yearSeries(indicator string, vals []float64) *Series {
	var obs []Observation
	for ind := 0; ind < len(vals); ind++ {
		obs = append(obs, Observation{Date: YearDate(syntheticYears[ind]), Value: vals[ind]})
	}

	return &Series{Indicator: indicator, Obs: obs}
}
