package records

import (
	"context"
	"fmt"

	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
)

// Load returns the records stored for c's domain. A domain that was never
// saved yields an empty slice.
func Load[R any](ctx context.Context, bs domain.BlobStore, c *codec.Codec[R]) ([]R, *codec.Report, error) {
	text, _, err := bs.Load(ctx, c.Domain().StorageKey())
	if err != nil {
		return nil, nil, err
	}
	out, report := c.Decode(text)
	return out, report, nil
}

// Save encodes records and overwrites the stored value.
func Save[R any](ctx context.Context, bs domain.BlobStore, c *codec.Codec[R], records []R) error {
	text, err := c.Encode(records)
	if err != nil {
		return err
	}
	return bs.Save(ctx, c.Domain().StorageKey(), text)
}

// Replace normalises a raw text block through t and stores the result. Parse
// problems are returned in the report and do not prevent the save.
func Replace(ctx context.Context, bs domain.BlobStore, t codec.Table, text string) (*codec.Report, error) {
	normalised, report, err := t.Recode(text)
	if err != nil {
		return report, fmt.Errorf("replace %s: %w", t.Domain(), err)
	}
	if err := bs.Save(ctx, t.Domain().StorageKey(), normalised); err != nil {
		return report, err
	}
	return report, nil
}

// Clear overwrites t's domain with its empty encoding.
func Clear(ctx context.Context, bs domain.BlobStore, t codec.Table) error {
	_, err := Replace(ctx, bs, t, "")
	return err
}
