package app

import (
	"fmt"
	"os"

	"stackmeter/internal/domain"
	"stackmeter/internal/store"
)

// OpenStore builds the blob store chain described by cfg: a FileStore under
// the data directory, sealed when encryption is on.
func OpenStore(cfg Config, params store.ScryptParams) (domain.BlobStore, error) {
	dir := cfg.DataPath()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	fs := store.NewFileStore(dir)
	if !cfg.Encrypt {
		return fs, nil
	}
	sealed, err := store.NewSealedStore(fs, cfg.Passphrase, params)
	if err != nil {
		return nil, fmt.Errorf("open sealed store: %w", err)
	}
	return sealed, nil
}
