package records_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
	"stackmeter/internal/services/records"
	"stackmeter/internal/store"
	"stackmeter/internal/testutil/fixtures"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	bs := store.NewFileStore(t.TempDir())
	in := fixtures.Full().Dust

	if err := records.Save(ctx, bs, codec.Dust(), in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, report, err := records.Load(ctx, bs, codec.Dust())
	if err != nil || !report.OK() {
		t.Fatalf("load: %v %v", err, report)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestLoad_NeverSaved(t *testing.T) {
	out, report, err := records.Load(context.Background(), store.NewMemoryStore(), codec.Flows())
	if err != nil || !report.OK() || out == nil || len(out) != 0 {
		t.Fatalf("out=%v report=%v err=%v", out, report, err)
	}
}

func TestReplaceAndClear(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	table := codec.TableFor(domain.GasAnalyzer)

	report, err := records.Replace(ctx, ms, table, "O2,%,20.9,0,20.8,2024-05-14 08:00\nXX,ppm,1,0,1,\n")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if report.AffectedRows() != 1 {
		t.Fatalf("report = %v", report)
	}
	stored := ms.Snapshot()[domain.GasAnalyzer.StorageKey()]
	if !strings.HasPrefix(stored, table.Header()+"\n") || !strings.Contains(stored, "2024-05-14 08:00:00") {
		t.Fatalf("stored = %q", stored)
	}

	if err := records.Clear(ctx, ms, table); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _, _ := records.Load(ctx, ms, codec.GasAnalyzer())
	if len(out) != 0 {
		t.Fatalf("after clear: %+v", out)
	}
}

func TestSave_RejectsHeadingValue(t *testing.T) {
	ms := store.NewMemoryStore()
	err := records.Save(context.Background(), ms, codec.Utilities(), []domain.UtilityEvent{{Label: domain.Dust.Heading()}})
	if !errors.Is(err, codec.ErrReservedValue) {
		t.Fatalf("expected ErrReservedValue, got %v", err)
	}
	if ms.Saves() != 0 {
		t.Fatal("rejected records were written")
	}
}
