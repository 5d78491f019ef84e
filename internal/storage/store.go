package storage

import (
	"context"
	"time"

	"stockpulse/internal/domain/models"
)

// Row is one record returned by a Flux query, decoupled from the client
// library's record type so callers can be tested against fakes.
//
// Fields:
//   - Time: the record's _time column.
//   - Value: the record's _value column (single-field aggregation rows).
//   - Values: the full column map (pivoted rows carry "price"/"volume"
//     here; tag columns such as "symbol" also appear here).
type Row struct {
	Time   time.Time
	Value  interface{}
	Values map[string]interface{}
}

// TimeSeriesStore is the narrow contract to the time-series backend. It
// carries no business logic: writes take validated observations, reads
// take finished query text.
type TimeSeriesStore interface {
	WritePoint(ctx context.Context, obs models.Observation) error
	WriteBatch(ctx context.Context, obs []models.Observation) error
	RunQuery(ctx context.Context, flux string) ([]Row, error)
	Ping(ctx context.Context) error
	Close()
}
