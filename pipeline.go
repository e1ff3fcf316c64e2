package econ

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/oklog/ulid/v2"
)

// Loader fetches one indicator's raw observations.  The fred package has
// the production implementation.
type Loader interface {
	Load(ctx context.Context, indicator string) (*Series, error)
}

// BatchLoader is an optional Loader upgrade: fetch several indicators in
// one call (fred.Client fans out a goroutine per indicator).
type BatchLoader interface {
	LoadAll(ctx context.Context, indicators []string) (map[string]*Series, error)
}

// Pipeline runs the four derivation stages over freshly loaded series.
// It holds no mutable state across runs.
type Pipeline struct {
	cfg    *Config
	loader Loader

	fallback func() map[string]*Series
}

// Opt configures a Pipeline.
type Opt func(p *Pipeline)

// WithFallback injects the strategy used when every core source is
// unreachable.  The default is SyntheticSeries.
func WithFallback(fn func() map[string]*Series) Opt {
	return func(p *Pipeline) { p.fallback = fn }
}

func NewPipeline(cfg *Config, loader Loader, opts ...Opt) *Pipeline {
	p := &Pipeline{cfg: cfg, loader: loader, fallback: SyntheticSeries}
	for _, o := range opts {
		o(p)
	}

	return p
}

// Result is one pipeline run's output: the four derived tables plus the
// raw series they came from.  Synthetic is true when the placeholder
// dataset was substituted for unreachable sources.
type Result struct {
	RunID    string
	RunTime  time.Time
	BaseYear int

	Synthetic bool

	Raw        map[string]*Series
	Comparison []ComparisonRecord
	Gaps       []GapRecord
	Decades    []DecadeRecord
}

// Run loads the configured series and derives the output tables.
//
// An unreachable core source switches the whole run to the fallback
// dataset when syntheticFallback is on, and fails otherwise.  Supplemental
// sources are best-effort.  Configuration and division errors always
// surface; no partial Result is returned.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	raw, synthetic, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	annual := Annualize(raw[HomePrice].Obs, raw[Income].Obs, raw[CPI].Obs)

	var comparison []ComparisonRecord
	if comparison, err = Derive(annual, p.cfg.BaseYear); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:      ulid.Make().String(),
		RunTime:    time.Now().UTC(),
		BaseYear:   p.cfg.BaseYear,
		Synthetic:  synthetic,
		Raw:        raw,
		Comparison: comparison,
		Gaps:       AnalyzeGaps(comparison, p.cfg.ReferenceYears),
		Decades:    SummarizeDecades(comparison),
	}

	return res, nil
}

func (p *Pipeline) load(ctx context.Context) (raw map[string]*Series, synthetic bool, err error) {
	var e error
	if raw, e = p.loadCore(ctx); e != nil {
		var srcErr *SourceUnavailableError
		if errors.As(e, &srcErr) && p.cfg.SyntheticFallback {
			log.Printf("%v -- substituting synthetic dataset", e)
			return p.fallback(), true, nil
		}

		return nil, false, e
	}

	// supplemental series are persisted raw but never joined; a miss here
	// only drops the series
	for indicator := range p.cfg.Sources {
		if has(indicator, CoreIndicators()) {
			continue
		}

		var (
			s *Series
			e error
		)

		if s, e = p.loader.Load(ctx, indicator); e != nil {
			log.Printf("skipping supplemental series: %v", e)
			continue
		}

		raw[indicator] = s
	}

	return raw, false, nil
}

func (p *Pipeline) loadCore(ctx context.Context) (map[string]*Series, error) {
	if bl, ok := p.loader.(BatchLoader); ok {
		return bl.LoadAll(ctx, CoreIndicators())
	}

	raw := make(map[string]*Series)
	for _, indicator := range CoreIndicators() {
		var (
			s *Series
			e error
		)

		if s, e = p.loader.Load(ctx, indicator); e != nil {
			return nil, e
		}

		raw[indicator] = s
	}

	return raw, nil
}

func has[C comparable](needle C, haystack []C) bool {
	for _, straw := range haystack {
		if needle == straw {
			return true
		}
	}

	return false
}
