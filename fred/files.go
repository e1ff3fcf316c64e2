package fred

import (
	"fmt"
	"os"
	"strings"
	"time"

	econ "github.com/ameenbasith/economic-comparison-project"
)

// All code interacting with CSV files is here

const (
	Sep         = ','
	EOL         = '\n'
	DateFormat  = "2006-01-02"
	FloatFormat = "%.4f"
)

// Files writes observation CSVs in the shape FRED serves them: a header
// row of (date, indicator), then one row per observation.
type Files struct {
	FieldNames  []string
	EOL         byte
	Sep         byte
	DateFormat  string
	FloatFormat string

	file     *os.File
	fileName string
}

func NewFiles() *Files {
	f := &Files{
		EOL:         byte(EOL),
		Sep:         byte(Sep),
		DateFormat:  DateFormat,
		FloatFormat: FloatFormat,
	}

	return f
}

func (f *Files) Create(fileName string) error {
	var e error
	f.fileName = fileName
	f.file, e = os.Create(fileName)

	return e
}

func (f *Files) FileName() string {
	return f.fileName
}

func (f *Files) Close() error {
	if f.file != nil {
		return f.file.Close()
	}

	return fmt.Errorf("no open files")
}

func (f *Files) WriteHeader() error {
	if f.FieldNames == nil {
		return fmt.Errorf("field names not set in *Files")
	}

	_, e := f.file.WriteString(strings.Join(f.FieldNames, string(rune(f.Sep))) + string(rune(f.EOL)))

	return e
}

func (f *Files) WriteLine(v []any) error {
	var line []byte
	for ind := 0; ind < len(v); ind++ {
		var lx []byte
		switch d := v[ind].(type) {
		case float64:
			lx = []byte(fmt.Sprintf(f.FloatFormat, d))
		case int:
			lx = []byte(fmt.Sprintf("%v", d))
		case time.Time:
			lx = []byte(d.Format(f.DateFormat))
		case string:
			lx = []byte(d)
		default:
			lx = []byte("#err#")
		}

		line = append(line, lx...)
		if ind < len(v)-1 {
			line = append(line, f.Sep)
		}
	}

	if _, e := f.file.Write(line); e != nil {
		return e
	}
	_, e := f.file.Write([]byte{f.EOL})

	return e
}

// writeCache replaces the cache file for an indicator.  Full rewrite, never
// append, so a rerun is idempotent.
func writeCache(fileName, indicator string, obs []econ.Observation) error {
	f := NewFiles()
	f.FieldNames = []string{"date", indicator}

	if e := f.Create(fileName); e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if e := f.WriteHeader(); e != nil {
		return e
	}

	for ind := 0; ind < len(obs); ind++ {
		if e := f.WriteLine([]any{obs[ind].Date, obs[ind].Value}); e != nil {
			return e
		}
	}

	return nil
}

// ReadObservations loads a (date, value) CSV written by writeCache or by
// hand.
func ReadObservations(fileName string) ([]econ.Observation, error) {
	file, e := os.Open(fileName)
	if e != nil {
		return nil, e
	}
	defer func() { _ = file.Close() }()

	return parseObservations(file)
}
