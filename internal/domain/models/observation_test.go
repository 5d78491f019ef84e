package models

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeSymbol_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "already uppercase", in: "AAPL", want: "AAPL"},
		{name: "lowercased input", in: "googl", want: "GOOGL"},
		{name: "mixed case", in: "MsFt", want: "MSFT"},
		{name: "empty", in: "", wantErr: ErrInvalidSymbol},
		{name: "digits", in: "PETR4", wantErr: ErrInvalidSymbol},
		{name: "flux breakout attempt", in: `A")|>drop(`, wantErr: ErrInvalidSymbol},
		{name: "too long", in: "ABCDEFGHIJK", wantErr: ErrInvalidSymbol},
		{name: "whitespace", in: "AA PL", wantErr: ErrInvalidSymbol},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeSymbol(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got (%q, %v), want %q", got, err, tc.want)
			}
		})
	}
}

func TestObservation_Validate(t *testing.T) {
	t.Run("normalizes and rounds", func(t *testing.T) {
		obs := Observation{Symbol: "aapl", Price: 150.505, Volume: 1000}
		if err := obs.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if obs.Symbol != "AAPL" {
			t.Fatalf("symbol not normalized: %q", obs.Symbol)
		}
		if obs.Price != 150.51 {
			t.Fatalf("price not rounded to 2 decimals: %v", obs.Price)
		}
		if obs.Timestamp.IsZero() {
			t.Fatalf("zero timestamp should default to now")
		}
		if obs.Timestamp.Location() != time.UTC {
			t.Fatalf("timestamp not UTC: %v", obs.Timestamp)
		}
	})

	t.Run("keeps explicit timestamp", func(t *testing.T) {
		ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		obs := Observation{Symbol: "AAPL", Price: 1, Volume: 0, Timestamp: ts}
		if err := obs.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !obs.Timestamp.Equal(ts) {
			t.Fatalf("timestamp changed: %v", obs.Timestamp)
		}
	})

	cases := []struct {
		name string
		obs  Observation
		want error
	}{
		{name: "zero price", obs: Observation{Symbol: "AAPL", Price: 0, Volume: 1}, want: ErrInvalidPrice},
		{name: "negative price", obs: Observation{Symbol: "AAPL", Price: -1.5, Volume: 1}, want: ErrInvalidPrice},
		{name: "negative volume", obs: Observation{Symbol: "AAPL", Price: 1, Volume: -1}, want: ErrInvalidVolume},
		{name: "bad symbol", obs: Observation{Symbol: "AAPL1", Price: 1, Volume: 1}, want: ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.obs.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTimeRangeQuery_Validate(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	t.Run("defaults interval", func(t *testing.T) {
		q := TimeRangeQuery{Symbol: "aapl"}
		if err := q.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Interval != DefaultInterval || q.Symbol != "AAPL" {
			t.Fatalf("unexpected normalization: %+v", q)
		}
	})

	t.Run("accepts ordered range", func(t *testing.T) {
		q := TimeRangeQuery{Symbol: "AAPL", Start: &t0, End: &t1, Interval: "5m"}
		if err := q.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		q := TimeRangeQuery{Symbol: "AAPL", Start: &t1, End: &t0}
		if err := q.Validate(); !errors.Is(err, ErrInvertedRange) {
			t.Fatalf("want ErrInvertedRange, got %v", err)
		}
	})

	t.Run("rejects unknown interval", func(t *testing.T) {
		q := TimeRangeQuery{Symbol: "AAPL", Interval: "2m"}
		if err := q.Validate(); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("want ErrInvalidInterval, got %v", err)
		}
	})
}

func TestIntervals_AllValid(t *testing.T) {
	for _, iv := range Intervals {
		if !iv.Valid() {
			t.Fatalf("interval %q not in set", iv)
		}
	}
	if Interval("7m").Valid() {
		t.Fatalf("unexpected member 7m")
	}
}
