package storage

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func makeEvaluation(formula string, result float64) Evaluation {
	return Evaluation{
		Formula:     formula,
		Inputs:      map[string]any{"rate": 0.05},
		Result:      &result,
		EvaluatedAt: time.Now().UTC(),
	}
}

func TestMemoryHistorySaveAndRecent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHistory(10)

	for i := 0; i < 3; i++ {
		ev := makeEvaluation(fmt.Sprintf("fv-%d", i), float64(i))
		if err := store.Save(ctx, ev); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Formula != "fv-2" || entries[2].Formula != "fv-0" {
		t.Errorf("unexpected order: %s .. %s", entries[0].Formula, entries[2].Formula)
	}
}

func TestMemoryHistoryEviction(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHistory(5)

	for i := 0; i < 8; i++ {
		if err := store.Save(ctx, makeEvaluation(fmt.Sprintf("irr-%d", i), float64(i))); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	// Oldest three evicted.
	if entries[len(entries)-1].Formula != "irr-3" {
		t.Errorf("oldest surviving entry = %s, want irr-3", entries[len(entries)-1].Formula)
	}
}

func TestMemoryHistoryLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHistory(10)

	for i := 0; i < 6; i++ {
		if err := store.Save(ctx, makeEvaluation("pmt", float64(i))); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestMemoryHistoryConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryHistory(1000)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				store.Save(ctx, makeEvaluation("npv", float64(i)))
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 400 {
		t.Errorf("got %d entries, want 400", len(entries))
	}
}
