package protocol

import (
	"errors"
	"fmt"

	"stackmeter/internal/domain"
)

var (
	ErrBlockOrder       = errors.New("protocol: blocks must cover every domain in document order")
	ErrMissingHeading   = errors.New("protocol: heading not found")
	ErrDuplicateHeading = errors.New("protocol: heading appears more than once")
	ErrBadTag           = errors.New("protocol: malformed heading tag")
	ErrLengthMismatch   = errors.New("protocol: block length mismatch")
	ErrDigestMismatch   = errors.New("protocol: block digest mismatch")
	ErrTrailingData     = errors.New("protocol: unexpected data after last block")
)

// StructuralError reports a document whose block framing is broken. Expected
// names the domain whose heading (or framed block) could not be read.
type StructuralError struct {
	Expected domain.ID
	Err      error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("protocol: expected %q: %v", e.Expected.Heading(), e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structural(id domain.ID, err error) error {
	return &StructuralError{Expected: id, Err: err}
}
