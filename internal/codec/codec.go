package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"stackmeter/internal/domain"
)

// Table is the type-erased view of a codec.
type Table interface {
	Domain() domain.ID
	Header() string
	// Recode decodes text and encodes the result again, yielding the
	// normalised block for text.
	Recode(text string) (string, *Report, error)
}

// Codec converts []R to and from a delimited text block.
type Codec[R any] struct {
	domain  domain.ID
	columns []Column[R]
	header  string
}

// New returns a codec for domain id with the given column order.
func New[R any](id domain.ID, columns ...Column[R]) *Codec[R] {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return &Codec[R]{domain: id, columns: columns, header: strings.Join(names, ",")}
}

func (c *Codec[R]) Domain() domain.ID { return c.domain }

// Header returns the header line without a trailing newline.
func (c *Codec[R]) Header() string { return c.header }

// Columns returns the column names in order.
func (c *Codec[R]) Columns() []string {
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name
	}
	return names
}

// Encode writes the header line and one row per record. A field whose value
// equals a heading literal is rejected with ErrReservedValue.
func (c *Codec[R]) Encode(records []R) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(c.Columns()); err != nil {
		return "", err
	}
	row := make([]string, len(c.columns))
	for i := range records {
		rec := &records[i]
		for j, col := range c.columns {
			v := col.encode(rec)
			if domain.IsHeading(v) {
				return "", fmt.Errorf("%w: %s record %d column %s", ErrReservedValue, c.domain, i+1, col.Name)
			}
			row[j] = v
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Decode parses a block. It never fails as a whole: problems are collected in
// the returned Report and the affected fields keep their zero value. Blank
// text yields an empty, non-nil slice.
func (c *Codec[R]) Decode(text string) ([]R, *Report) {
	report := &Report{Domain: c.domain}
	out := make([]R, 0)
	if strings.TrimSpace(text) == "" {
		return out, report
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	first := true
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			report.add(line, "", "", fmt.Errorf("%w: %v", ErrMalformedRow, err))
			continue
		}
		line, _ := r.FieldPos(0)
		if first {
			first = false
			if c.isHeader(fields) {
				continue
			}
		}
		out = append(out, c.decodeRow(fields, line, report))
	}
	report.Rows = len(out)
	return out, report
}

// Recode implements Table.
func (c *Codec[R]) Recode(text string) (string, *Report, error) {
	records, report := c.Decode(text)
	out, err := c.Encode(records)
	if err != nil {
		return "", report, err
	}
	return out, report, nil
}

func (c *Codec[R]) decodeRow(fields []string, line int, report *Report) R {
	var rec R
	if len(fields) != len(c.columns) {
		report.add(line, "", "", fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), len(c.columns)))
	}
	for i, col := range c.columns {
		if i >= len(fields) {
			break
		}
		if err := col.decode(&rec, fields[i]); err != nil {
			report.add(line, col.Name, fields[i], err)
		}
	}
	return rec
}

func (c *Codec[R]) isHeader(fields []string) bool {
	if len(fields) != len(c.columns) {
		return false
	}
	for i, col := range c.columns {
		if !strings.EqualFold(strings.TrimSpace(fields[i]), col.Name) {
			return false
		}
	}
	return true
}

// Compile-time assertion that Codec implements Table.
var _ Table = (*Codec[struct{}])(nil)
