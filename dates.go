package econ

import (
	"fmt"
	"strings"
	"time"
)

var dateFormats = []string{"2006-01-02", "20060102", "1/2/2006", "01/02/2006", "Jan 2, 2006",
	"January 2, 2006", "2006"}

// ParseDate tries the date layouts that show up in FRED downloads and
// hand-compiled CSVs.
func ParseDate(s string) (time.Time, error) {
	s = strings.Trim(s, "' \"")
	for _, fmtx := range dateFormats {
		if dt, e := time.Parse(fmtx, s); e == nil {
			return dt, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// YearDate is midnight Jan 1 of yr, the date a year-granularity observation
// carries.
func YearDate(yr int) time.Time {
	return time.Date(yr, time.January, 1, 0, 0, 0, 0, time.UTC)
}
