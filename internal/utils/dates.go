package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// InvalidDate is what a browser prints for a Date it could not parse.
const InvalidDate = "Invalid Date"

// Date-only ISO strings are UTC midnight; every other accepted form is
// read in the caller's location.
var utcLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Jan 2, 2006",
	"January 2, 2006",
	"1/2/2006",
}

// trailing "(Bangladesh Standard Time)" from Date.prototype.toString
var zoneName = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// LocaleDateString renders raw as an en-US short date (M/D/YYYY, no
// padding) in loc, the way appointment dates are stored. Input that does
// not parse yields InvalidDate.
func LocaleDateString(raw string, loc *time.Location) string {
	t, ok := ParseClientDate(raw, loc)
	if !ok {
		return InvalidDate
	}
	t = t.In(loc)
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// ParseClientDate accepts the date formats browsers send in query strings.
func ParseClientDate(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(zoneName.ReplaceAllString(raw, ""))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
