package econ

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// yearObs builds one observation per year over [from, to].
func yearObs(from, to int, val float64) []Observation {
	var obs []Observation
	for yr := from; yr <= to; yr++ {
		obs = append(obs, Observation{Date: YearDate(yr), Value: val})
	}

	return obs
}

func TestAnnualize_InnerJoin(t *testing.T) {
	home := yearObs(1970, 2023, 100000)
	income := yearObs(1975, 2023, 50000)
	cpi := yearObs(1970, 2023, 200)

	recs := Annualize(home, income, cpi)

	assert.Len(t, recs, 2023-1975+1)
	assert.Equal(t, 1975, recs[0].Year)
	assert.Equal(t, 2023, recs[len(recs)-1].Year)

	for ind := 1; ind < len(recs); ind++ {
		assert.Equal(t, recs[ind-1].Year+1, recs[ind].Year)
	}
}

func TestAnnualize_MonthlyMean(t *testing.T) {
	// quarterly home prices in 1990 average to 105000
	var home []Observation
	for ind, v := range []float64{90000, 100000, 110000, 120000} {
		dt := time.Date(1990, time.Month(3*ind+1), 1, 0, 0, 0, 0, time.UTC)
		home = append(home, Observation{Date: dt, Value: v})
	}

	income := yearObs(1990, 1990, 30000)
	cpi := yearObs(1990, 1990, 130.7)

	recs := Annualize(home, income, cpi)

	assert.Len(t, recs, 1)
	assert.InEpsilon(t, 105000.0, recs[0].HomePrice, 1e-9)

	// a year with a single observation is its own mean
	assert.InEpsilon(t, 30000.0, recs[0].Income, 1e-9)
	assert.InEpsilon(t, 130.7, recs[0].CPI, 1e-9)
}

func TestAnnualize_EmptyIndicator(t *testing.T) {
	home := yearObs(1970, 2023, 100000)
	income := yearObs(1970, 2023, 50000)

	recs := Annualize(home, income, nil)
	assert.Empty(t, recs)
}
