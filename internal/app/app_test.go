package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockpulse/config"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/storage"
)

type stubStore struct {
	pingErr error
	closed  bool
}

func (s *stubStore) WritePoint(_ context.Context, _ models.Observation) error   { return nil }
func (s *stubStore) WriteBatch(_ context.Context, _ []models.Observation) error { return nil }
func (s *stubStore) RunQuery(_ context.Context, _ string) ([]storage.Row, error) {
	return nil, nil
}
func (s *stubStore) Ping(_ context.Context) error { return s.pingErr }
func (s *stubStore) Close()                       { s.closed = true }

// TestInitializeApp_StoreFailure ensures InitializeApp returns error when
// the store cannot connect.
func TestInitializeApp_StoreFailure(t *testing.T) {
	old := storeOpener
	storeOpener = func(cfg config.Config) (storage.TimeSeriesStore, error) {
		return nil, errors.New("connection refused")
	}
	t.Cleanup(func() { storeOpener = old })

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with unreachable store")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	store := &stubStore{}
	old := storeOpener
	storeOpener = func(cfg config.Config) (storage.TimeSeriesStore, error) { return store, nil }
	t.Cleanup(func() { storeOpener = old })

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	cleanup()
	if !store.closed {
		t.Fatalf("cleanup must close the store")
	}
}

func TestInitializeApp_DegradedReadiness(t *testing.T) {
	store := &stubStore{pingErr: errors.New("influx down")}
	old := storeOpener
	storeOpener = func(cfg config.Config) (storage.TimeSeriesStore, error) { return store, nil }
	t.Cleanup(func() { storeOpener = old })

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	t.Cleanup(cleanup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d, want 503", w.Code)
	}
}
