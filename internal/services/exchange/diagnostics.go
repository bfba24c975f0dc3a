package exchange

import (
	"errors"

	"github.com/rs/zerolog"

	"stackmeter/internal/codec"
)

// Diagnostics holds one decode report per domain, in document order.
type Diagnostics []*codec.Report

// Total returns the number of parse issues across every domain.
func (d Diagnostics) Total() int {
	n := 0
	for _, r := range d {
		if r != nil {
			n += len(r.Issues)
		}
	}
	return n
}

// Affected returns the reports that carry at least one issue.
func (d Diagnostics) Affected() []*codec.Report {
	var out []*codec.Report
	for _, r := range d {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Err joins every issue into one error, or returns nil.
func (d Diagnostics) Err() error {
	var errs []error
	for _, r := range d {
		if err := r.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d Diagnostics) log(log zerolog.Logger, op string) {
	for _, r := range d.Affected() {
		log.Warn().
			Str("op", op).
			Str("domain", r.Domain.Name()).
			Int("rows", r.Rows).
			Int("affected_rows", r.AffectedRows()).
			Msg("fields replaced by defaults")
		for _, issue := range r.Issues {
			log.Debug().Str("domain", r.Domain.Name()).Err(issue).Msg("parse issue")
		}
	}
}
