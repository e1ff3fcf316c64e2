package econ

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "econpipe.yaml")
	require.Nil(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
sources:
  median_home_price: {series: MSPUS}
  median_household_income: {series: MEHOINUSA646N}
  consumer_price_index: {series: CPIAUCSL}
`)

	cfg, e := LoadConfig(path)
	require.Nil(t, e)

	assert.Equal(t, DefaultBaseYear, cfg.BaseYear)
	assert.Equal(t, DefaultReferenceYears(), cfg.ReferenceYears)
	assert.Equal(t, DefaultTimeoutSecs, cfg.TimeoutSecs)
	assert.False(t, cfg.SyntheticFallback)
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
sources:
  median_home_price: {file: data/raw/median_home_price.csv}
  median_household_income: {series: MEHOINUSA646N}
  consumer_price_index: {series: CPIAUCSL}
  minimum_wage: {}
cacheDir: data/raw
baseYear: 2015
referenceYears: [1980, 1990]
syntheticFallback: true
store:
  engine: postgres
  dsn: postgres://localhost:5432/econ
`)

	cfg, e := LoadConfig(path)
	require.Nil(t, e)

	assert.Equal(t, 2015, cfg.BaseYear)
	assert.Equal(t, []int{1980, 1990}, cfg.ReferenceYears)
	assert.True(t, cfg.SyntheticFallback)
	assert.Equal(t, "postgres", cfg.Store.Engine)
	assert.Equal(t, "data/raw/median_home_price.csv", cfg.Sources[HomePrice].File)
}

func TestLoadConfig_MissingCoreSource(t *testing.T) {
	path := writeConfig(t, `
sources:
  median_home_price: {series: MSPUS}
  consumer_price_index: {series: CPIAUCSL}
`)

	_, e := LoadConfig(path)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(e, &cfgErr))
}

func TestLoadConfig_EmptyCoreSource(t *testing.T) {
	path := writeConfig(t, `
sources:
  median_home_price: {}
  median_household_income: {series: MEHOINUSA646N}
  consumer_price_index: {series: CPIAUCSL}
`)

	_, e := LoadConfig(path)
	assert.NotNil(t, e)
}

func TestLoadConfig_BadEngine(t *testing.T) {
	path := writeConfig(t, `
sources:
  median_home_price: {series: MSPUS}
  median_household_income: {series: MEHOINUSA646N}
  consumer_price_index: {series: CPIAUCSL}
store:
  engine: sqlite
  dsn: econ.db
`)

	_, e := LoadConfig(path)
	assert.NotNil(t, e)
}

func TestLoadConfig_NoFile(t *testing.T) {
	_, e := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, e)
}
