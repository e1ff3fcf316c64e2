package econ

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Decade returns the decade bucket of a year: 1984 -> 1980, 1980 -> 1980,
// 1979 -> 1970.  Years are always positive here, so integer truncation is
// the same as floor.
func Decade(year int) int {
	return (year / 10) * 10
}

// SummarizeDecades buckets comparison records by decade and takes the mean
// of each field over whatever records the decade has.  Decades with no
// records are omitted, and a decade with partial coverage is averaged over
// just the years present.  Output is ascending by decade and independent
// of input order.
func SummarizeDecades(comparison []ComparisonRecord) []DecadeRecord {
	groups := make(map[int][]ComparisonRecord)
	for _, r := range comparison {
		dec := Decade(r.Year)
		groups[dec] = append(groups[dec], r)
	}

	var decades []int
	for dec := range groups {
		decades = append(decades, dec)
	}
	sort.Ints(decades)

	var out []DecadeRecord
	for _, dec := range decades {
		recs := groups[dec]

		n := len(recs)
		cols := make([][]float64, 5)
		for ind := 0; ind < 5; ind++ {
			cols[ind] = make([]float64, n)
		}

		for ind, r := range recs {
			cols[0][ind] = r.HomePrice
			cols[1][ind] = r.Income
			cols[2][ind] = r.Ratio
			cols[3][ind] = r.AdjHomePrice
			cols[4][ind] = r.AdjIncome
		}

		out = append(out, DecadeRecord{
			Decade:          dec,
			AvgHomePrice:    stat.Mean(cols[0], nil),
			AvgIncome:       stat.Mean(cols[1], nil),
			AvgRatio:        stat.Mean(cols[2], nil),
			AvgAdjHomePrice: stat.Mean(cols[3], nil),
			AvgAdjIncome:    stat.Mean(cols[4], nil),
		})
	}

	return out
}
