package econ

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults.  The base year anchors inflation adjustment; if it is missing
// from the joined data the run fails rather than substituting another year.
const (
	DefaultBaseYear     = 2020
	DefaultTimeoutSecs  = 30
	DefaultFredURL      = "https://fred.stlouisfed.org/graph/fredgraph.csv?id=%s"
	DefaultCacheDirPerm = 0o755
)

// DefaultReferenceYears are the historical anchors for the gap analysis.
func DefaultReferenceYears() []int {
	return []int{1970, 1980, 1990, 2000, 2010}
}

// Source says where one indicator's observations come from: a FRED series
// id (fetched over the network), a local CSV file, or both (file wins).
type Source struct {
	Series string `yaml:"series,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// StoreConfig locates the persisted store.  Engine is clickhouse or
// postgres.  The location is explicit; there is no path-probing fallback.
type StoreConfig struct {
	Engine   string `yaml:"engine"`
	DSN      string `yaml:"dsn"`
	Database string `yaml:"database,omitempty"`
}

// Config is the full pipeline configuration.
type Config struct {
	Sources map[string]Source `yaml:"sources"`

	CacheDir    string `yaml:"cacheDir,omitempty"`
	TimeoutSecs int    `yaml:"timeoutSecs,omitempty"`

	BaseYear       int   `yaml:"baseYear,omitempty"`
	ReferenceYears []int `yaml:"referenceYears,omitempty"`

	// substitute the built-in synthetic dataset when every core source is
	// unreachable; the Result is flagged so callers can tell
	SyntheticFallback bool `yaml:"syntheticFallback,omitempty"`

	Store StoreConfig `yaml:"store,omitempty"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if e := yaml.Unmarshal(data, &cfg); e != nil {
		return nil, fmt.Errorf("parsing config: %w", e)
	}

	cfg.applyDefaults()

	if e := cfg.validate(); e != nil {
		return nil, e
	}

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.BaseYear == 0 {
		cfg.BaseYear = DefaultBaseYear
	}

	if cfg.ReferenceYears == nil {
		cfg.ReferenceYears = DefaultReferenceYears()
	}

	if cfg.TimeoutSecs <= 0 {
		cfg.TimeoutSecs = DefaultTimeoutSecs
	}
}

func (cfg *Config) validate() error {
	for _, indicator := range CoreIndicators() {
		src, ok := cfg.Sources[indicator]
		if !ok {
			return &ConfigurationError{Msg: fmt.Sprintf("no source for %s", indicator)}
		}

		if src.Series == "" && src.File == "" {
			return &ConfigurationError{Msg: fmt.Sprintf("source for %s needs a series or a file", indicator)}
		}
	}

	switch cfg.Store.Engine {
	case "", "clickhouse", "postgres":
	default:
		return &ConfigurationError{Msg: fmt.Sprintf("unknown store engine %s", cfg.Store.Engine)}
	}

	return nil
}
