// Package store persists pipeline results to ClickHouse or Postgres and
// exposes a read-only ad-hoc query surface over them.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	econ "github.com/ameenbasith/economic-comparison-project"
	_ "github.com/jackc/pgx/stdlib"
)

// Store writes the four output tables plus the raw series.  One writer per
// run; concurrent runs against the same store are the caller's problem.
type Store struct {
	d *Dialect
}

// Open connects to the configured engine.  The DSN is an explicit single
// location; there is no path probing.
func Open(cfg econ.StoreConfig) (*Store, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Engine {
	case ch:
		var opts *clickhouse.Options
		if opts, err = clickhouse.ParseDSN(cfg.DSN); err != nil {
			return nil, fmt.Errorf("clickhouse dsn: %w", err)
		}
		db = clickhouse.OpenDB(opts)
	case pg:
		if db, err = sql.Open("pgx", cfg.DSN); err != nil {
			return nil, fmt.Errorf("postgres dsn: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown store engine %s", cfg.Engine)
	}

	if e := db.Ping(); e != nil {
		_ = db.Close()
		return nil, e
	}

	return NewStore(cfg.Engine, db)
}

func NewStore(engine string, db *sql.DB) (*Store, error) {
	d, e := NewDialect(engine, db)
	if e != nil {
		return nil, e
	}

	return &Store{d: d}, nil
}

func (s *Store) Close() error {
	return s.d.Close()
}

// Table schemas.  The presentation layer binds to these names; do not
// rename columns.
var (
	comparisonFields = []Field{
		{"year", DTint},
		{"median_home_price", DTfloat},
		{"median_household_income", DTfloat},
		{"consumer_price_index", DTfloat},
		{"home_price_to_income_ratio", DTfloat},
		{"inflation_adjusted_home_price", DTfloat},
		{"inflation_adjusted_income", DTfloat},
	}

	gapFields = []Field{
		{"comparison_year", DTint},
		{"current_ratio", DTfloat},
		{"historical_ratio", DTfloat},
		{"home_price_decrease_needed", DTfloat},
		{"income_increase_needed", DTfloat},
	}

	decadeFields = []Field{
		{"decade", DTint},
		{"avg_home_price", DTfloat},
		{"avg_income", DTfloat},
		{"avg_price_to_income_ratio", DTfloat},
		{"avg_adj_home_price", DTfloat},
		{"avg_adj_income", DTfloat},
	}

	runFields = []Field{
		{"run_id", DTstring},
		{"run_time", DTstring},
		{"base_year", DTint},
		{"synthetic", DTint},
	}
)

// SaveResult writes every table of a run: economic_comparison,
// affordability_comparison, decade_summary, one raw table per loaded
// series, and pipeline_runs.  Each write is a full replace.
func (s *Store) SaveResult(ctx context.Context, res *econ.Result) error {
	if e := s.saveComparison(ctx, res.Comparison); e != nil {
		return e
	}

	if e := s.saveGaps(ctx, res.Gaps); e != nil {
		return e
	}

	if e := s.saveDecades(ctx, res.Decades); e != nil {
		return e
	}

	for indicator, series := range res.Raw {
		if e := s.saveRaw(ctx, indicator, series); e != nil {
			return e
		}
	}

	return s.saveRun(ctx, res)
}

func (s *Store) saveComparison(ctx context.Context, recs []econ.ComparisonRecord) error {
	n := len(recs)
	years := make([]int, n)
	cols := make([][]float64, 6)
	for ind := range cols {
		cols[ind] = make([]float64, n)
	}

	for ind, r := range recs {
		years[ind] = r.Year
		cols[0][ind] = r.HomePrice
		cols[1][ind] = r.Income
		cols[2][ind] = r.CPI
		cols[3][ind] = r.Ratio
		cols[4][ind] = r.AdjHomePrice
		cols[5][ind] = r.AdjIncome
	}

	return s.d.Create(ctx, "economic_comparison", "year", comparisonFields,
		[]any{years, cols[0], cols[1], cols[2], cols[3], cols[4], cols[5]})
}

func (s *Store) saveGaps(ctx context.Context, gaps []econ.GapRecord) error {
	n := len(gaps)
	years := make([]int, n)
	cols := make([][]float64, 4)
	for ind := range cols {
		cols[ind] = make([]float64, n)
	}

	for ind, g := range gaps {
		years[ind] = g.ReferenceYear
		cols[0][ind] = g.CurrentRatio
		cols[1][ind] = g.HistoricalRatio
		cols[2][ind] = g.PriceDecreasePct
		cols[3][ind] = g.IncomeIncreasePct
	}

	return s.d.Create(ctx, "affordability_comparison", "comparison_year", gapFields,
		[]any{years, cols[0], cols[1], cols[2], cols[3]})
}

func (s *Store) saveDecades(ctx context.Context, decades []econ.DecadeRecord) error {
	n := len(decades)
	decs := make([]int, n)
	cols := make([][]float64, 5)
	for ind := range cols {
		cols[ind] = make([]float64, n)
	}

	for ind, d := range decades {
		decs[ind] = d.Decade
		cols[0][ind] = d.AvgHomePrice
		cols[1][ind] = d.AvgIncome
		cols[2][ind] = d.AvgRatio
		cols[3][ind] = d.AvgAdjHomePrice
		cols[4][ind] = d.AvgAdjIncome
	}

	return s.d.Create(ctx, "decade_summary", "decade", decadeFields,
		[]any{decs, cols[0], cols[1], cols[2], cols[3], cols[4]})
}

// saveRaw persists one raw series with a derived year column, e.g. table
// median_home_price has columns (date, median_home_price, year).
func (s *Store) saveRaw(ctx context.Context, indicator string, series *econ.Series) error {
	fields := []Field{
		{"date", DTdate},
		{indicator, DTfloat},
		{"year", DTint},
	}

	n := len(series.Obs)
	dates := make([]time.Time, n)
	vals := make([]float64, n)
	years := make([]int, n)

	for ind, o := range series.Obs {
		dates[ind] = o.Date
		vals[ind] = o.Value
		years[ind] = o.Year()
	}

	return s.d.Create(ctx, indicator, "date", fields, []any{dates, vals, years})
}

// saveRun records the run that produced the store's current contents.
// Replaced wholesale like every other table, so it always holds exactly
// the latest run's row.
func (s *Store) saveRun(ctx context.Context, res *econ.Result) error {
	synthetic := 0
	if res.Synthetic {
		synthetic = 1
	}

	return s.d.Create(ctx, "pipeline_runs", "run_id", runFields, []any{
		[]string{res.RunID},
		[]string{res.RunTime.Format(time.RFC3339)},
		[]int{res.BaseYear},
		[]int{synthetic},
	})
}

// Query runs consumer-supplied SQL against the store.  The store does not
// validate or sanitize the query; callers own that boundary and must grant
// read access only.
func (s *Store) Query(ctx context.Context, qry string) (colNames []string, rows [][]any, err error) {
	return s.d.Read(ctx, qry)
}

// RowCount is a convenience for the post-save verification counts.
func (s *Store) RowCount(ctx context.Context, tableName string) (int, error) {
	_, rows, e := s.d.Read(ctx, "SELECT count(*) FROM "+tableName)
	if e != nil {
		return 0, e
	}

	if len(rows) != 1 || len(rows[0]) != 1 {
		return 0, fmt.Errorf("unexpected count result for %s", tableName)
	}

	switch n := rows[0][0].(type) {
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", rows[0][0])
	}
}
