package econ

import "fmt"

// Error taxonomy.  SourceUnavailableError is recoverable (cache or
// synthetic fallback); ConfigurationError and DivisionError are fatal to
// the run and must reach the caller.

// SourceUnavailableError means neither the live source nor a cached copy
// of an indicator could be read.
type SourceUnavailableError struct {
	Indicator string
	Source    string
	Err       error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source unavailable for %s (%s): %v", e.Indicator, e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ConfigurationError means a required anchor is missing from the data,
// e.g. the base year has no record.  Never silently patched.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Msg
}

// DivisionError means a ratio denominator was degenerate.  The run aborts
// rather than writing NaN or Inf into the store.
type DivisionError struct {
	Year  int
	Field string
	Value float64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("division: %s is %v in year %d", e.Field, e.Value, e.Year)
}
