package store

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"stackmeter/internal/domain"
	"stackmeter/internal/util/memzero"
)

// The current supported version of the sealed value format.
const sealedFormatVersion = 1

// envelope is the JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// ScryptParams are the key-derivation cost parameters for new values.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams returns the tunables used for new values.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds on key-derivation cost. scrypt needs 128*N*r bytes, so these
// cap a single derivation at 1 GiB.
const (
	maxScryptN = 1 << 20
	maxScryptR = 8
	maxScryptP = 16
)

// validate rejects parameters scrypt cannot use or that exceed the bounds.
func (p ScryptParams) validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 || p.N > maxScryptN ||
		p.R < 1 || p.R > maxScryptR || p.P < 1 || p.P > maxScryptP {
		return fmt.Errorf("%w: N=%d r=%d p=%d", ErrScryptParams, p.N, p.R, p.P)
	}
	return nil
}

// SealedStore encrypts every value with a passphrase before handing it to the
// inner store. The storage key is bound to the ciphertext, so a value copied
// under another key does not open.
type SealedStore struct {
	inner      domain.BlobStore
	passphrase string
	params     ScryptParams
}

// NewSealedStore wraps inner. An empty passphrase is rejected.
func NewSealedStore(inner domain.BlobStore, passphrase string, params ScryptParams) (*SealedStore, error) {
	if passphrase == "" {
		return nil, ErrNoPassphrase
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &SealedStore{inner: inner, passphrase: passphrase, params: params}, nil
}

// Load decrypts the value under key.
func (s *SealedStore) Load(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := s.inner.Load(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	pt, err := s.open(key, []byte(raw))
	if err != nil {
		return "", false, &StorageError{Op: "open", Key: key, Err: err}
	}
	return string(pt), true, nil
}

// Save encrypts text and stores it under key.
func (s *SealedStore) Save(ctx context.Context, key, text string) error {
	sealed, err := s.seal(key, []byte(text))
	if err != nil {
		return &StorageError{Op: "seal", Key: key, Err: err}
	}
	return s.inner.Save(ctx, key, string(sealed))
}

// SaveAll seals every entry first and forwards them as one batch when the
// inner store supports it.
func (s *SealedStore) SaveAll(ctx context.Context, entries []domain.Entry) error {
	sealed := make([]domain.Entry, len(entries))
	for i, e := range entries {
		ct, err := s.seal(e.Key, []byte(e.Text))
		if err != nil {
			return &StorageError{Op: "seal", Key: e.Key, Err: err}
		}
		sealed[i] = domain.Entry{Key: e.Key, Text: string(ct)}
	}
	if bs, ok := s.inner.(domain.BatchSaver); ok {
		return bs.SaveAll(ctx, sealed)
	}
	for _, e := range sealed {
		if err := s.inner.Save(ctx, e.Key, e.Text); err != nil {
			return err
		}
	}
	return nil
}

// seal derives a key from the passphrase and seals raw into a JSON envelope.
func (s *SealedStore) seal(key string, raw []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	aead, err := s.aead(salt[:], s.params)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, additionalData(salt[:], key))

	return json.Marshal(envelope{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      s.params.N,
		R:      s.params.R,
		P:      s.params.P,
		Cipher: ct,
	})
}

// open reverses seal.
func (s *SealedStore) open(key string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed value version %d", env.V)
	}
	params := ScryptParams{N: env.N, R: env.R, P: env.P}
	if err := params.validate(); err != nil {
		return nil, err
	}
	aead, err := s.aead(env.Salt, params)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, additionalData(env.Salt, key))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func (s *SealedStore) aead(salt []byte, p ScryptParams) (cipher.AEAD, error) {
	if len(salt) == 0 {
		return nil, errors.New("sealed value has no salt")
	}
	pass := []byte(s.passphrase)
	k, err := scrypt.Key(pass, salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
	memzero.Zero(pass)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(k)
	return chacha20poly1305.New(k)
}

func additionalData(salt []byte, key string) []byte {
	ad := make([]byte, 0, len(salt)+len(key))
	ad = append(ad, salt...)
	return append(ad, key...)
}

// Compile-time assertions that SealedStore implements the store contracts.
var (
	_ domain.BlobStore  = (*SealedStore)(nil)
	_ domain.BatchSaver = (*SealedStore)(nil)
)
