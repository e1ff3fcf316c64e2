package fred

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	econ "github.com/ameenbasith/economic-comparison-project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mspusCSV = `DATE,MSPUS
1970-01-01,23900
1970-04-01,.
1970-07-01,25200
1971-01-01,24300
`

func client4test(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &econ.Config{
		Sources: map[string]econ.Source{
			econ.HomePrice: {Series: "MSPUS"},
		},
		CacheDir:    t.TempDir(),
		TimeoutSecs: 5,
	}

	c := NewClient(cfg, WithURLTemplate(srv.URL+"/graph/fredgraph.csv?id=%s"))

	return c, srv
}

func serveCSV(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestClient_LoadNetwork(t *testing.T) {
	c, _ := client4test(t, serveCSV(mspusCSV))

	s, e := c.Load(context.Background(), econ.HomePrice)
	require.Nil(t, e)

	// the "." row is dropped
	assert.Len(t, s.Obs, 3)
	assert.Equal(t, 1970, s.Obs[0].Year())
	assert.InEpsilon(t, 23900.0, s.Obs[0].Value, 1e-9)

	// a successful fetch rewrites the cache
	_, e1 := os.Stat(filepath.Join(c.cacheDir, econ.HomePrice+".csv"))
	assert.Nil(t, e1)
}

func TestClient_CacheFallback(t *testing.T) {
	fail := false
	c, _ := client4test(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(mspusCSV))
	}))

	ctx := context.Background()

	_, e := c.Load(ctx, econ.HomePrice)
	require.Nil(t, e)

	fail = true

	s, e1 := c.Load(ctx, econ.HomePrice)
	require.Nil(t, e1)
	assert.Len(t, s.Obs, 3)
}

func TestClient_Unavailable(t *testing.T) {
	c, _ := client4test(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	_, e := c.Load(context.Background(), econ.HomePrice)

	var srcErr *econ.SourceUnavailableError
	assert.True(t, errors.As(e, &srcErr))
	assert.Equal(t, econ.HomePrice, srcErr.Indicator)
}

func TestClient_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hp.csv")
	require.Nil(t, os.WriteFile(path, []byte(mspusCSV), 0o644))

	cfg := &econ.Config{
		Sources: map[string]econ.Source{
			econ.HomePrice: {File: path},
		},
		TimeoutSecs: 5,
	}

	c := NewClient(cfg)

	s, e := c.Load(context.Background(), econ.HomePrice)
	require.Nil(t, e)
	assert.Len(t, s.Obs, 3)
}

func TestClient_Builtin(t *testing.T) {
	cfg := &econ.Config{
		Sources: map[string]econ.Source{
			econ.MinWage: {},
		},
		TimeoutSecs: 5,
	}

	c := NewClient(cfg)

	s, e := c.Load(context.Background(), econ.MinWage)
	require.Nil(t, e)
	assert.Equal(t, econ.MinWage, s.Indicator)
	assert.NotEmpty(t, s.Obs)
	assert.InEpsilon(t, 1.60, s.Obs[0].Value, 1e-9)

	assert.Nil(t, Builtin("nope"))
}

func TestClient_LoadAll(t *testing.T) {
	srv := httptest.NewServer(serveCSV(mspusCSV))
	t.Cleanup(srv.Close)

	cfg := &econ.Config{
		Sources: map[string]econ.Source{
			econ.HomePrice: {Series: "MSPUS"},
			econ.Income:    {Series: "MEHOINUSA646N"},
			econ.CPI:       {Series: "CPIAUCSL"},
		},
		TimeoutSecs: 5,
	}

	c := NewClient(cfg, WithURLTemplate(srv.URL+"/graph/fredgraph.csv?id=%s"))

	series, e := c.LoadAll(context.Background(), econ.CoreIndicators())
	require.Nil(t, e)

	assert.Len(t, series, 3)
	for _, indicator := range econ.CoreIndicators() {
		assert.Len(t, series[indicator].Obs, 3)
	}
}

func TestWriteCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpi.csv")

	obs := []econ.Observation{
		{Date: econ.YearDate(1970), Value: 38.8},
		{Date: econ.YearDate(2020), Value: 258.8},
	}

	require.Nil(t, writeCache(path, econ.CPI, obs))

	got, e := ReadObservations(path)
	require.Nil(t, e)
	require.Len(t, got, 2)

	assert.Equal(t, obs[0].Date, got[0].Date)
	assert.InEpsilon(t, 38.8, got[0].Value, 1e-9)
	assert.InEpsilon(t, 258.8, got[1].Value, 1e-9)
}
