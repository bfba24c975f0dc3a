// Package store provides blob persistence for stackmeter's measurement
// sessions.
//
// It contains concrete implementations of domain.BlobStore, each keeping text
// values under the well-known per-domain keys. All methods are
// concurrency-safe via internal locking. Stored files typically live under
// the user's configured data directory.
//
// The package includes:
//   - FileStore: one file per key, written atomically
//   - SealedStore: passphrase encryption around any other BlobStore
//   - MemoryStore: an in-process map for tests and dry runs
package store
