package econ

import "fmt"

// Derive computes the affordability fields for each annual record: the
// price-to-income ratio, and price and income rescaled to constant dollars
// of baseYear.  The input order (ascending by year) is preserved.
//
// Fails with *ConfigurationError if baseYear has no record, and with
// *DivisionError if any record carries a non-positive price, income or
// CPI -- partial output is never returned.  Every ratio leaving here is
// positive, so downstream quotients of ratios stay finite.
func Derive(recs []AnnualRecord, baseYear int) ([]ComparisonRecord, error) {
	var (
		baseCPI float64
		found   bool
	)
	for ind := 0; ind < len(recs); ind++ {
		if recs[ind].Year == baseYear {
			baseCPI, found = recs[ind].CPI, true
			break
		}
	}

	if !found {
		return nil, &ConfigurationError{Msg: fmt.Sprintf("base year %d not in data", baseYear)}
	}

	var out []ComparisonRecord
	for _, r := range recs {
		// the price ends up a denominator too, via ratio-of-ratio gap math
		if r.HomePrice <= 0.0 {
			return nil, &DivisionError{Year: r.Year, Field: "median_home_price", Value: r.HomePrice}
		}

		if r.Income <= 0.0 {
			return nil, &DivisionError{Year: r.Year, Field: "median_household_income", Value: r.Income}
		}

		if r.CPI <= 0.0 {
			return nil, &DivisionError{Year: r.Year, Field: "consumer_price_index", Value: r.CPI}
		}

		deflate := baseCPI / r.CPI
		out = append(out, ComparisonRecord{
			AnnualRecord: r,
			Ratio:        r.HomePrice / r.Income,
			AdjHomePrice: r.HomePrice * deflate,
			AdjIncome:    r.Income * deflate,
		})
	}

	return out, nil
}
