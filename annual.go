package econ

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Annualize collapses the three core indicator series to one value per
// calendar year (arithmetic mean of that year's observations) and inner
// joins them.  Output is sorted ascending by year and contains only years
// present in all three inputs.  An empty input for any indicator yields an
// empty output.
func Annualize(home, income, cpi []Observation) []AnnualRecord {
	hp := yearMeans(home)
	inc := yearMeans(income)
	cp := yearMeans(cpi)

	var years []int
	for yr := range hp {
		if _, ok := inc[yr]; !ok {
			continue
		}
		if _, ok := cp[yr]; !ok {
			continue
		}

		years = append(years, yr)
	}
	sort.Ints(years)

	var recs []AnnualRecord
	for _, yr := range years {
		recs = append(recs, AnnualRecord{
			Year:      yr,
			HomePrice: hp[yr],
			Income:    inc[yr],
			CPI:       cp[yr],
		})
	}

	return recs
}

// yearMeans groups obs by calendar year and takes the mean within each
// group.  A year with a single observation is its own mean.
func yearMeans(obs []Observation) map[int]float64 {
	byYear := make(map[int][]float64)
	for ind := 0; ind < len(obs); ind++ {
		yr := obs[ind].Year()
		byYear[yr] = append(byYear[yr], obs[ind].Value)
	}

	means := make(map[int]float64, len(byYear))
	for yr, vals := range byYear {
		means[yr] = stat.Mean(vals, nil)
	}

	return means
}
