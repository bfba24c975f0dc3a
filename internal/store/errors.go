package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKey      = errors.New("store: invalid key")
	ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted value")
	ErrNoPassphrase    = errors.New("store: passphrase required")
	ErrScryptParams    = errors.New("store: scrypt parameters out of range")
)

// StorageError wraps a failed read or write at the store boundary.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// validateKey rejects keys that cannot be used as a single file name.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
