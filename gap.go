package econ

// AnalyzeGaps compares each reference year's affordability ratio to the
// most recent year's.  The "current" anchor is always the last element of
// comparison (the input is ascending by year), recomputed each run.
//
// Reference years absent from comparison are skipped, not errors.  Output
// order follows referenceYears, not year order.  Both percentages are
// computed independently from the ratio quotient; they are not negatives
// of one another.
func AnalyzeGaps(comparison []ComparisonRecord, referenceYears []int) []GapRecord {
	if len(comparison) == 0 {
		return nil
	}

	byYear := make(map[int]float64, len(comparison))
	for ind := 0; ind < len(comparison); ind++ {
		byYear[comparison[ind].Year] = comparison[ind].Ratio
	}

	current := comparison[len(comparison)-1].Ratio

	var gaps []GapRecord
	for _, yr := range referenceYears {
		var (
			hist float64
			ok   bool
		)
		if hist, ok = byYear[yr]; !ok {
			continue
		}

		gaps = append(gaps, GapRecord{
			ReferenceYear:     yr,
			CurrentRatio:      current,
			HistoricalRatio:   hist,
			PriceDecreasePct:  (1.0 - hist/current) * 100.0,
			IncomeIncreasePct: (current/hist - 1.0) * 100.0,
		})
	}

	return gaps
}
