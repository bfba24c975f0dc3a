package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"stackmeter/internal/domain"
	"stackmeter/internal/store"
)

// fastParams keeps scrypt cheap in tests.
var fastParams = store.ScryptParams{N: 1 << 10, R: 8, P: 1}

func TestSealedStore_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	ss, err := store.NewSealedStore(inner, "pass", fastParams)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := ss.Save(ctx, "h2o-measurements.txt", "run,start\n1,\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw := inner.Snapshot()["h2o-measurements.txt"]
	if strings.Contains(raw, "run,start") {
		t.Fatalf("plaintext visible in inner store: %q", raw)
	}
	got, ok, err := ss.Load(ctx, "h2o-measurements.txt")
	if err != nil || !ok || got != "run,start\n1,\n" {
		t.Fatalf("load = %q, %v, %v", got, ok, err)
	}
}

func TestSealedStore_WrongPassphrase_Fails(t *testing.T) {
	ctx := context.Background()
	inner := store.NewFileStore(t.TempDir())
	good, _ := store.NewSealedStore(inner, "correct", fastParams)
	if err := good.Save(ctx, "k.txt", "secret"); err != nil {
		t.Fatalf("save: %v", err)
	}
	bad, _ := store.NewSealedStore(inner, "wrong", fastParams)
	if _, _, err := bad.Load(ctx, "k.txt"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestSealedStore_KeyBound(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	ss, _ := store.NewSealedStore(inner, "pass", fastParams)
	if err := ss.Save(ctx, "a.txt", "value"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := inner.Save(ctx, "b.txt", inner.Snapshot()["a.txt"]); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if _, _, err := ss.Load(ctx, "b.txt"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("value moved to another key should not open, got %v", err)
	}
}

func TestSealedStore_MissingAndBatch(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	ss, _ := store.NewSealedStore(inner, "pass", fastParams)
	if _, ok, err := ss.Load(ctx, "none.txt"); ok || err != nil {
		t.Fatalf("missing: ok=%v err=%v", ok, err)
	}
	entries := []domain.Entry{{Key: "a.txt", Text: "1"}, {Key: "b.txt", Text: "2"}}
	if err := ss.SaveAll(ctx, entries); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	for _, e := range entries {
		if got, ok, err := ss.Load(ctx, e.Key); err != nil || !ok || got != e.Text {
			t.Fatalf("%s = %q, %v, %v", e.Key, got, ok, err)
		}
	}
}

func TestSealedStore_RequiresPassphrase(t *testing.T) {
	if _, err := store.NewSealedStore(store.NewMemoryStore(), "", fastParams); !errors.Is(err, store.ErrNoPassphrase) {
		t.Fatalf("expected ErrNoPassphrase, got %v", err)
	}
}

func TestSealedStore_RejectsCostlyParams(t *testing.T) {
	ctx := context.Background()
	inner := store.NewMemoryStore()
	ss, _ := store.NewSealedStore(inner, "pass", fastParams)
	if err := ss.Save(ctx, "a.txt", "value"); err != nil {
		t.Fatalf("save: %v", err)
	}

	sealed := inner.Snapshot()["a.txt"]
	cases := []struct {
		field string
		value int
	}{
		{"scrypt_N", 1 << 30},
		{"scrypt_N", 1000},
		{"scrypt_r", 0},
		{"scrypt_p", 1 << 20},
	}
	for _, tc := range cases {
		var env map[string]any
		if err := json.Unmarshal([]byte(sealed), &env); err != nil {
			t.Fatalf("envelope: %v", err)
		}
		env[tc.field] = tc.value
		b, _ := json.Marshal(env)
		if err := inner.Save(ctx, "a.txt", string(b)); err != nil {
			t.Fatalf("tamper: %v", err)
		}
		if _, _, err := ss.Load(ctx, "a.txt"); !errors.Is(err, store.ErrScryptParams) {
			t.Fatalf("%s=%d: expected ErrScryptParams, got %v", tc.field, tc.value, err)
		}
	}

	if _, err := store.NewSealedStore(inner, "pass", store.ScryptParams{N: 1 << 24, R: 8, P: 1}); !errors.Is(err, store.ErrScryptParams) {
		t.Fatalf("expected ErrScryptParams for new store, got %v", err)
	}
}
