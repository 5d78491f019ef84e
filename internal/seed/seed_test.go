package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockpulse/internal/domain/models"
	"stockpulse/internal/storage"
)

type captureStore struct {
	batches [][]models.Observation
	err     error
}

func (s *captureStore) WritePoint(_ context.Context, _ models.Observation) error { return nil }
func (s *captureStore) WriteBatch(_ context.Context, obs []models.Observation) error {
	if s.err != nil {
		return s.err
	}
	cp := make([]models.Observation, len(obs))
	copy(cp, obs)
	s.batches = append(s.batches, cp)
	return nil
}
func (s *captureStore) RunQuery(_ context.Context, _ string) ([]storage.Row, error) {
	return nil, nil
}
func (s *captureStore) Ping(_ context.Context) error { return nil }
func (s *captureStore) Close()                       {}

func TestGenerator_Run(t *testing.T) {
	store := &captureStore{}
	gen := NewGenerator(store, 42)

	total, err := gen.Run(context.Background(), 1, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 symbols x 24 hourly points
	if total != 5*24 {
		t.Fatalf("want 120 observations, got %d", total)
	}

	for _, batch := range store.batches {
		for _, obs := range batch {
			if err := (&obs).Validate(); err != nil {
				t.Fatalf("generated observation fails validation: %+v: %v", obs, err)
			}
			if obs.Price < 1.0 {
				t.Fatalf("price below floor: %v", obs.Price)
			}
			if obs.Volume < 100 || obs.Volume > 9999 {
				t.Fatalf("volume out of range: %v", obs.Volume)
			}
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(&captureStore{}, 7)
	b := NewGenerator(&captureStore{}, 7)
	pa := a.nextPrice("AAPL", 150.0)
	pb := b.nextPrice("AAPL", 150.0)
	if pa != pb {
		t.Fatalf("same seed must give same walk: %v vs %v", pa, pb)
	}
}

func TestGenerator_StopsOnWriteError(t *testing.T) {
	store := &captureStore{err: errors.New("backend down")}
	gen := NewGenerator(store, 1)

	total, err := gen.Run(context.Background(), 30, time.Minute)
	if err == nil {
		t.Fatalf("expected write error to propagate")
	}
	if total != 0 {
		t.Fatalf("no batch should count as written, got %d", total)
	}
}

func TestNextPrice_MeanReversion(t *testing.T) {
	gen := NewGenerator(&captureStore{}, 3)

	// Far above base: the nudge makes the expected move negative, so over
	// many steps the price should drift down.
	high := basePrices["AAPL"] * 2
	sum := 0.0
	for i := 0; i < 1000; i++ {
		sum += gen.nextPrice("AAPL", high) - high
	}
	if sum >= 0 {
		t.Fatalf("expected downward drift above base, got mean change %v", sum/1000)
	}
}
