// Package query builds Flux query text for the stock_data measurement.
//
// Every entry point re-validates the symbol through models.NormalizeSymbol
// immediately before interpolating it into query text. Upstream handlers
// validate too, but the builder never relies on that: symbols are the only
// caller-controlled value that reaches Flux source.
package query

import (
	"fmt"
	"time"

	"stockpulse/internal/domain/models"
)

// Measurement is the single logical time-series collection the service
// reads and writes. Schema: tag "symbol", fields "price" and "volume".
const Measurement = "stock_data"

const (
	// DefaultRangeLookback is the window used when a range query supplies
	// neither start nor end.
	DefaultRangeLookback = 7 * 24 * time.Hour

	// LatestLookback is the fixed window for latest-data queries.
	LatestLookback = time.Hour

	// SymbolsLookback is the fixed window scanned for distinct symbols.
	SymbolsLookback = 30 * 24 * time.Hour

	// DefaultLatestLimit caps latest-data results when the caller does
	// not supply a limit.
	DefaultLatestLimit = 100
)

// Builder produces Flux query text against a fixed bucket.
type Builder struct {
	bucket string
}

// NewBuilder returns a Builder targeting the given InfluxDB bucket.
func NewBuilder(bucket string) *Builder {
	return &Builder{bucket: bucket}
}

// ResolveRange computes the effective window for a range query: start
// defaults to now-7d, end to now. Callers must resolve once per request
// and reuse the result for both sub-queries and the reported time range,
// so the price series, the volume series, and the response all describe
// the same window.
func ResolveRange(q models.TimeRangeQuery, now time.Time) models.TimeRange {
	now = now.UTC()
	tr := models.TimeRange{
		Start: now.Add(-DefaultRangeLookback),
		End:   now,
	}
	if q.Start != nil {
		tr.Start = q.Start.UTC()
	}
	if q.End != nil {
		tr.End = q.End.UTC()
	}
	return tr
}

// PriceRange returns the aggregation query for the price field: mean per
// bucket of width q.Interval over tr, empty buckets suppressed, ascending.
func (b *Builder) PriceRange(q models.TimeRangeQuery, tr models.TimeRange) (string, error) {
	return b.aggregate(q.Symbol, tr, q.Interval, "price", "mean")
}

// VolumeRange returns the aggregation query for the volume field: sum per
// bucket of width q.Interval over tr, empty buckets suppressed, ascending.
func (b *Builder) VolumeRange(q models.TimeRangeQuery, tr models.TimeRange) (string, error) {
	return b.aggregate(q.Symbol, tr, q.Interval, "volume", "sum")
}

func (b *Builder) aggregate(symbol string, tr models.TimeRange, interval models.Interval, field, fn string) (string, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return "", err
	}
	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: %s, stop: %s)
  |> filter(fn: (r) => r["_measurement"] == %q)
  |> filter(fn: (r) => r["symbol"] == %q)
  |> filter(fn: (r) => r["_field"] == %q)
  |> aggregateWindow(every: %s, fn: %s, createEmpty: false)
  |> sort(columns: ["_time"])`,
		b.bucket,
		tr.Start.Format(time.RFC3339),
		tr.End.Format(time.RFC3339),
		Measurement,
		sym,
		field,
		interval,
		fn,
	)
	return flux, nil
}

// Latest returns the raw latest-data query: the most recent limit
// observations for symbol within the last hour, unaggregated, newest
// first. Price and volume are pivoted onto one row per observation, so
// no merge step is needed downstream.
func (b *Builder) Latest(symbol string, limit int) (string, error) {
	sym, err := models.NormalizeSymbol(symbol)
	if err != nil {
		return "", err
	}
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: -1h)
  |> filter(fn: (r) => r["_measurement"] == %q)
  |> filter(fn: (r) => r["symbol"] == %q)
  |> filter(fn: (r) => r["_field"] == "price" or r["_field"] == "volume")
  |> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
  |> sort(columns: ["_time"], desc: true)
  |> limit(n: %d)`,
		b.bucket,
		Measurement,
		sym,
		limit,
	)
	return flux, nil
}

// Symbols returns the query listing distinct symbol tag values observed
// within the last 30 days. Callers must still deduplicate: distinct runs
// per series, so a symbol present in multiple series groups repeats.
func (b *Builder) Symbols() string {
	return fmt.Sprintf(`from(bucket: %q)
  |> range(start: -30d)
  |> filter(fn: (r) => r["_measurement"] == %q)
  |> keep(columns: ["symbol"])
  |> distinct(column: "symbol")`,
		b.bucket,
		Measurement,
	)
}
