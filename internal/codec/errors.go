package codec

import (
	"errors"
	"fmt"
	"strings"

	"stackmeter/internal/domain"
)

var (
	ErrFieldCount    = errors.New("codec: wrong number of fields")
	ErrMalformedRow  = errors.New("codec: malformed row")
	ErrReservedValue = errors.New("codec: value equals a heading literal")
	ErrNotFinite     = errors.New("codec: number is not finite")
)

// ParseError describes one field (or, when Column is empty, one row) that
// could not be decoded.
type ParseError struct {
	Domain domain.ID
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s line %d: %v", e.Domain, e.Line, e.Err)
	}
	return fmt.Sprintf("%s line %d column %s: %q: %v", e.Domain, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Report collects the non-fatal problems found while decoding one block.
type Report struct {
	Domain domain.ID
	Rows   int
	Issues []*ParseError
}

// OK reports whether the block decoded without substitutions.
func (r *Report) OK() bool { return r == nil || len(r.Issues) == 0 }

// AffectedRows returns the number of distinct rows with at least one issue.
func (r *Report) AffectedRows() int {
	if r == nil {
		return 0
	}
	seen := make(map[int]struct{}, len(r.Issues))
	for _, issue := range r.Issues {
		seen[issue.Line] = struct{}{}
	}
	return len(seen)
}

// Err joins every issue into one error, or returns nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Issues))
	for i, issue := range r.Issues {
		errs[i] = issue
	}
	return errors.Join(errs...)
}

func (r *Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%s: %d rows", r.domainName(), r.rows())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows, %d affected", r.Domain, r.Rows, r.AffectedRows())
	for _, issue := range r.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.Error())
	}
	return b.String()
}

func (r *Report) domainName() string {
	if r == nil {
		return "-"
	}
	return r.Domain.Name()
}

func (r *Report) rows() int {
	if r == nil {
		return 0
	}
	return r.Rows
}

func (r *Report) add(line int, column, value string, err error) {
	r.Issues = append(r.Issues, &ParseError{Domain: r.Domain, Line: line, Column: column, Value: value, Err: err})
}
