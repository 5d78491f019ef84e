package models

import (
	"errors"
	"time"
)

// Interval is a fixed-width aggregation bucket duration, expressed in the
// backend's duration syntax (e.g. "1m", "4h").
type Interval string

// DefaultInterval is used when a query does not specify one.
const DefaultInterval Interval = "1m"

// Intervals is the closed set of supported aggregation bucket widths,
// ordered from finest to coarsest.
var Intervals = []Interval{
	"1s", "5s", "10s", "30s",
	"1m", "5m", "15m", "30m",
	"1h", "4h", "1d",
}

var intervalSet = func() map[Interval]struct{} {
	m := make(map[Interval]struct{}, len(Intervals))
	for _, iv := range Intervals {
		m[iv] = struct{}{}
	}
	return m
}()

var (
	// ErrInvalidInterval is returned for intervals outside the supported set.
	ErrInvalidInterval = errors.New("interval must be one of 1s 5s 10s 30s 1m 5m 15m 30m 1h 4h 1d")

	// ErrInvertedRange is returned when a query's start lies after its end.
	ErrInvertedRange = errors.New("start time must not be after end time")
)

// Valid reports whether iv belongs to the supported interval set.
func (iv Interval) Valid() bool {
	_, ok := intervalSet[iv]
	return ok
}

// TimeRangeQuery describes a windowed aggregation query for one symbol.
// Start and End are optional; the effective window is resolved by the
// query builder (defaults: last 7 days ending now).
type TimeRangeQuery struct {
	Symbol   string     `json:"symbol" example:"AAPL"`
	Start    *time.Time `json:"start_time,omitempty"`
	End      *time.Time `json:"end_time,omitempty"`
	Interval Interval   `json:"interval" example:"1m"`
}

// Validate normalizes the query in place: uppercases and checks the
// symbol, defaults a missing interval, and rejects an inverted range.
//
// Rejecting start > end is a deliberate departure from permissive
// handling; an inverted window would otherwise produce an empty series
// that is indistinguishable from "no data".
func (q *TimeRangeQuery) Validate() error {
	sym, err := NormalizeSymbol(q.Symbol)
	if err != nil {
		return err
	}
	q.Symbol = sym

	if q.Interval == "" {
		q.Interval = DefaultInterval
	}
	if !q.Interval.Valid() {
		return ErrInvalidInterval
	}

	if q.Start != nil && q.End != nil && q.Start.After(*q.End) {
		return ErrInvertedRange
	}
	return nil
}
