// Package econ derives housing-affordability metrics from raw economic
// time series.  The pipeline runs in four ordered stages:
// load -> annualize -> derive -> {gap analysis, decade summary}.
// Each run is a pure function of (sources, config); the outputs are
// immutable value slices handed to the store.
package econ

import (
	"time"
)

// Indicator names.  These double as the raw table names in the store, so
// they must stay stable across versions.
const (
	HomePrice = "median_home_price"
	Income    = "median_household_income"
	CPI       = "consumer_price_index"

	// supplemental series, persisted raw but not part of the annual join
	MinWage = "minimum_wage"
	Tuition = "college_tuition"
)

// CoreIndicators are the three series joined into the annual comparison.
func CoreIndicators() []string {
	return []string{HomePrice, Income, CPI}
}

// Observation is a single dated reading of an indicator.  Dates need not be
// aligned across indicators; monthly, quarterly and annual series all occur.
type Observation struct {
	Date  time.Time
	Value float64
}

// Year of the observation's calendar date.
func (o Observation) Year() int {
	return o.Date.Year()
}

// Series is a finite run of observations for one indicator.
type Series struct {
	Indicator string
	Obs       []Observation
}

// AnnualRecord is one joined year of the three core indicators.  A year is
// present only if all three indicators observed it.
type AnnualRecord struct {
	Year      int
	HomePrice float64
	Income    float64
	CPI       float64
}

// ComparisonRecord extends AnnualRecord with the derived affordability
// fields.  Adjusted values are in constant dollars of the base year.
type ComparisonRecord struct {
	AnnualRecord

	Ratio        float64 // home price / income
	AdjHomePrice float64
	AdjIncome    float64
}

// GapRecord says what would have to move to restore a reference year's
// affordability ratio at today's prices.
type GapRecord struct {
	ReferenceYear   int
	CurrentRatio    float64
	HistoricalRatio float64

	// percentages; note these are not negatives of one another since the
	// ratio is a quotient
	PriceDecreasePct  float64
	IncomeIncreasePct float64
}

// DecadeRecord holds per-decade means over the comparison records whose
// year falls in [Decade, Decade+10).
type DecadeRecord struct {
	Decade          int
	AvgHomePrice    float64
	AvgIncome       float64
	AvgRatio        float64
	AvgAdjHomePrice float64
	AvgAdjIncome    float64
}
