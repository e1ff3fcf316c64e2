// Package fred loads indicator series from FRED (fredgraph CSV downloads),
// local CSV files, the on-disk cache, or the built-in compiled series --
// in that order of preference.
package fred

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	econ "github.com/ameenbasith/economic-comparison-project"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
)

// Client implements econ.Loader and econ.BatchLoader.
type Client struct {
	sources  map[string]econ.Source
	cacheDir string

	urlTemplate string
	http        *http.Client
	breaker     *gobreaker.CircuitBreaker
}

// Opt configures a Client.
type Opt func(c *Client)

// WithURLTemplate overrides the fredgraph URL (one %s, the series id).
func WithURLTemplate(tmpl string) Opt {
	return func(c *Client) { c.urlTemplate = tmpl }
}

// WithHTTPClient overrides the HTTP client, timeout included.
func WithHTTPClient(h *http.Client) Opt {
	return func(c *Client) { c.http = h }
}

func NewClient(cfg *econ.Config, opts ...Opt) *Client {
	c := &Client{
		sources:     cfg.Sources,
		cacheDir:    cfg.CacheDir,
		urlTemplate: econ.DefaultFredURL,
		http:        &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
	}

	// fail fast once FRED starts timing out instead of eating the full
	// timeout for every remaining series
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "fred",
		Timeout: 60 * time.Second,
	})

	for _, o := range opts {
		o(c)
	}

	return c
}

// Load fetches one indicator.  Order: local file, network (cache rewritten
// on success), cached copy, built-in series.  When all miss it returns
// *econ.SourceUnavailableError.
func (c *Client) Load(ctx context.Context, indicator string) (*econ.Series, error) {
	src := c.sources[indicator]

	if src.File != "" {
		var (
			obs []econ.Observation
			e   error
		)

		if obs, e = ReadObservations(src.File); e != nil {
			return nil, &econ.SourceUnavailableError{Indicator: indicator, Source: src.File, Err: e}
		}

		return &econ.Series{Indicator: indicator, Obs: obs}, nil
	}

	var fetchErr error
	if src.Series != "" {
		var obs []econ.Observation

		if obs, fetchErr = c.fetch(ctx, src.Series); fetchErr == nil {
			if c.cacheDir != "" {
				if e := writeCache(c.cachePath(indicator), indicator, obs); e != nil {
					log.Printf("cache write for %s failed: %v", indicator, e)
				}
			}

			return &econ.Series{Indicator: indicator, Obs: obs}, nil
		}

		log.Printf("fetch of %s failed: %v", src.Series, fetchErr)
	}

	if c.cacheDir != "" {
		if obs, e := ReadObservations(c.cachePath(indicator)); e == nil {
			log.Printf("using cached copy of %s", indicator)
			return &econ.Series{Indicator: indicator, Obs: obs}, nil
		}
	}

	if s := Builtin(indicator); s != nil {
		return s, nil
	}

	if fetchErr == nil {
		fetchErr = fmt.Errorf("no source configured")
	}

	return nil, &econ.SourceUnavailableError{Indicator: indicator, Source: src.Series, Err: fetchErr}
}

// LoadAll fetches the given indicators concurrently, one goroutine each.
// The first hard failure cancels the rest.
func (c *Client) LoadAll(ctx context.Context, indicators []string) (map[string]*econ.Series, error) {
	g, gctx := errgroup.WithContext(ctx)

	out := make([]*econ.Series, len(indicators))
	for ind := 0; ind < len(indicators); ind++ {
		ind := ind
		g.Go(func() error {
			s, e := c.Load(gctx, indicators[ind])
			if e != nil {
				return e
			}

			out[ind] = s

			return nil
		})
	}

	if e := g.Wait(); e != nil {
		return nil, e
	}

	series := make(map[string]*econ.Series, len(indicators))
	for ind, s := range out {
		series[indicators[ind]] = s
	}

	return series, nil
}

func (c *Client) cachePath(indicator string) string {
	return filepath.Join(c.cacheDir, indicator+".csv")
}

func (c *Client) fetch(ctx context.Context, seriesID string) ([]econ.Observation, error) {
	out, e := c.breaker.Execute(func() (any, error) {
		url := fmt.Sprintf(c.urlTemplate, seriesID)

		req, e1 := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if e1 != nil {
			return nil, e1
		}

		resp, e2 := c.http.Do(req)
		if e2 != nil {
			return nil, e2
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s returned %s", url, resp.Status)
		}

		return parseObservations(resp.Body)
	})

	if e != nil {
		return nil, e
	}

	return out.([]econ.Observation), nil
}

// parseObservations reads a two-column (date, value) CSV.  A header row is
// detected by its unparseable date; FRED marks missing values with "." and
// those rows are dropped.
func parseObservations(r io.Reader) ([]econ.Observation, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1

	var obs []econ.Observation
	for row := 0; ; row++ {
		rec, e := rdr.Read()
		if e == io.EOF {
			break
		}

		if e != nil {
			return nil, e
		}

		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d has %d fields", row, len(rec))
		}

		dt, e1 := econ.ParseDate(rec[0])
		if e1 != nil {
			if row == 0 {
				continue // header
			}

			return nil, e1
		}

		if rec[1] == "." || rec[1] == "" {
			continue
		}

		val, e2 := strconv.ParseFloat(rec[1], 64)
		if e2 != nil {
			return nil, fmt.Errorf("row %d: %w", row, e2)
		}

		obs = append(obs, econ.Observation{Date: dt, Value: val})
	}

	if obs == nil {
		return nil, fmt.Errorf("no observations")
	}

	return obs, nil
}
