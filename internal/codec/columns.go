package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the textual date/time format of every time column. Times are
// written in UTC at second precision.
const TimeLayout = "2006-01-02 15:04:05"

// Layouts accepted on decode in addition to TimeLayout, for hand-edited files.
var lenientTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Column maps one field of R to one text column.
type Column[R any] struct {
	Name   string
	encode func(*R) string
	decode func(*R, string) error
}

// String is a free-text column. Values are stored verbatim except that CRLF
// line breaks are written as LF, which is what the CSV reader returns for
// them anyway.
func String[R any](name string, field func(*R) *string) Column[R] {
	return Column[R]{
		Name:   name,
		encode: func(r *R) string { return foldCRLF(*field(r)) },
		decode: func(r *R, s string) error {
			*field(r) = s
			return nil
		},
	}
}

// foldCRLF rewrites CRLF as LF until none is left, so "\r\r\n" cannot turn
// into a new CRLF after one pass.
func foldCRLF(s string) string {
	for strings.Contains(s, "\r\n") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	return s
}

// Float is a decimal column. Empty text decodes to 0.
func Float[R any](name string, field func(*R) *float64) Column[R] {
	return Column[R]{
		Name:   name,
		encode: func(r *R) string { return FormatFloat(*field(r)) },
		decode: func(r *R, s string) error {
			v, err := ParseFloat(s)
			if err != nil {
				return err
			}
			*field(r) = v
			return nil
		},
	}
}

// Int is an integer column. Empty text decodes to 0.
func Int[R any](name string, field func(*R) *int) Column[R] {
	return Column[R]{
		Name:   name,
		encode: func(r *R) string { return strconv.Itoa(*field(r)) },
		decode: func(r *R, s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				*field(r) = 0
				return nil
			}
			v, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			*field(r) = v
			return nil
		},
	}
}

// Time is a date/time column in TimeLayout. The zero time is written as an
// empty field and empty text decodes to the zero time.
func Time[R any](name string, field func(*R) *time.Time) Column[R] {
	return Column[R]{
		Name:   name,
		encode: func(r *R) string { return FormatTime(*field(r)) },
		decode: func(r *R, s string) error {
			t, err := ParseTime(s)
			if err != nil {
				return err
			}
			*field(r) = t
			return nil
		},
	}
}

// Enum is a named-value column. Empty text decodes to the zero value of E.
func Enum[R any, E interface {
	~int
	fmt.Stringer
}](name string, field func(*R) *E, parse func(string) (E, error)) Column[R] {
	return Column[R]{
		Name:   name,
		encode: func(r *R) string { return (*field(r)).String() },
		decode: func(r *R, s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				var zero E
				*field(r) = zero
				return nil
			}
			v, err := parse(s)
			if err != nil {
				return err
			}
			*field(r) = v
			return nil
		},
	}
}

// FormatFloat writes the shortest decimal text that parses back to v.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ParseFloat parses decimal text. Empty text is 0. A single decimal comma is
// accepted in place of a point.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// FormatTime writes t in TimeLayout (UTC), or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses TimeLayout, or one of the lenient layouts, as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}
	for _, layout := range lenientTimeLayouts {
		if lt, lerr := time.ParseInLocation(layout, s, time.UTC); lerr == nil {
			return lt.UTC(), nil
		}
	}
	return time.Time{}, err
}
