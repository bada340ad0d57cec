package format

import (
	"errors"
	"strings"
	"time"
)

// DateValue is anything FormatDate accepts: a time or a string to parse.
type DateValue interface {
	time.Time | string
}

// InvalidDate is what FormatDate returns for input that is not a date.
const InvalidDate = "Invalid Date"

// shortDateLayout is the en-PK short date: numeric day, abbreviated month, year.
const shortDateLayout = "2 Jan 2006"

// ErrInvalidDate is returned by ParseDate when no known layout matches.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order. Layouts without a zone parse as UTC, so a
// plain "2024-01-15" is midnight UTC on that day.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006-01",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006/01/02",
}

// ParseDate parses s using the layouts the ERP accepts for dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// FormatDate renders date in the en-PK short form, e.g. "15 Jan 2024".
//
// Strings are parsed with ParseDate first. Anything that does not parse, and
// the zero time, is rendered as InvalidDate rather than reported as an error.
// The time is shown in its own location; no zone conversion happens here.
func FormatDate[T DateValue](date T) string {
	var t time.Time

	switch v := any(date).(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return InvalidDate
		}
		t = parsed
	}

	if t.IsZero() {
		return InvalidDate
	}

	return t.Format(shortDateLayout)
}
