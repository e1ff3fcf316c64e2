package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDialect_Unknown(t *testing.T) {
	_, e := NewDialect("sqlite", nil)
	assert.NotNil(t, e)
}

func TestCreateSQL(t *testing.T) {
	fields := []Field{
		{"year", DTint},
		{"median_home_price", DTfloat},
	}

	dCH, e := NewDialect("clickhouse", nil)
	require.Nil(t, e)

	sqlCH, e1 := dCH.CreateSQL("economic_comparison", "year", fields)
	require.Nil(t, e1)

	assert.Contains(t, sqlCH, "CREATE TABLE economic_comparison")
	assert.Contains(t, sqlCH, "year Int64")
	assert.Contains(t, sqlCH, "median_home_price Float64")
	assert.Contains(t, sqlCH, "ENGINE = MergeTree()")
	assert.Contains(t, sqlCH, "ORDER BY (year)")

	// the raw series reach back past 1970 (MSPUS 1963, CPIAUCSL 1947), so
	// the date column must be Date32, not the 1970-floored Date
	sqlRaw, e4 := dCH.CreateSQL("median_home_price", "date", []Field{{"date", DTdate}, {"median_home_price", DTfloat}})
	require.Nil(t, e4)
	assert.Contains(t, sqlRaw, "date Date32")

	dPG, e2 := NewDialect("postgres", nil)
	require.Nil(t, e2)

	sqlPG, e3 := dPG.CreateSQL("economic_comparison", "year", fields)
	require.Nil(t, e3)

	assert.Contains(t, sqlPG, "year BIGINT")
	assert.Contains(t, sqlPG, "median_home_price DOUBLE PRECISION")
	assert.NotContains(t, sqlPG, "MergeTree")
}

func TestDropIfSQL(t *testing.T) {
	d, e := NewDialect("postgres", nil)
	require.Nil(t, e)

	assert.Equal(t, "DROP TABLE IF EXISTS decade_summary\n", d.DropIfSQL("decade_summary"))
}

func TestInsertSQL(t *testing.T) {
	d, e := NewDialect("clickhouse", nil)
	require.Nil(t, e)

	fields := []Field{
		{"date", DTdate},
		{"median_home_price", DTfloat},
		{"year", DTint},
	}

	cols := []any{
		[]time.Time{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		[]float64{23900},
		[]int{1970},
	}

	sqlStr, e1 := d.InsertSQL("median_home_price", fields, cols)
	require.Nil(t, e1)

	assert.Contains(t, sqlStr, "INSERT INTO median_home_price (date, median_home_price, year) VALUES")
	assert.Contains(t, sqlStr, "('1970-01-01', 23900, 1970)")
}

func TestInsertSQL_StringEscape(t *testing.T) {
	d, e := NewDialect("postgres", nil)
	require.Nil(t, e)

	sqlStr, e1 := d.InsertSQL("pipeline_runs", []Field{{"run_id", DTstring}}, []any{[]string{"it's"}})
	require.Nil(t, e1)

	assert.Contains(t, sqlStr, "('it''s')")
}

func TestInsertSQL_Mismatch(t *testing.T) {
	d, e := NewDialect("postgres", nil)
	require.Nil(t, e)

	_, e1 := d.InsertSQL("t", []Field{{"a", DTint}}, []any{[]int{1}, []int{2}})
	assert.NotNil(t, e1)

	_, e2 := d.InsertSQL("t", []Field{{"a", DTint}, {"b", DTint}}, []any{[]int{1}, []int{2, 3}})
	assert.NotNil(t, e2)

	_, e3 := d.InsertSQL("t", []Field{{"a", DTint}}, []any{[]bool{true}})
	assert.NotNil(t, e3)
}
