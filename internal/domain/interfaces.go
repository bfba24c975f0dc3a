package domain

import "context"

// BlobStore persists text values under string keys. A missing key is not an
// error: Load reports it with ok == false.
type BlobStore interface {
	Load(ctx context.Context, key string) (text string, ok bool, err error)
	Save(ctx context.Context, key, text string) error
}

// Entry is one key/value pair of a batched write.
type Entry struct {
	Key  string
	Text string
}

// BatchSaver is implemented by stores that can commit several keys as one
// staged write. Either every entry becomes visible or, on error, the store
// makes a best effort to leave previous values in place.
type BatchSaver interface {
	SaveAll(ctx context.Context, entries []Entry) error
}
