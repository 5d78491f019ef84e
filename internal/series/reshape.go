package series

import (
	"stockpulse/internal/domain/models"
	"stockpulse/internal/storage"
)

// FromRows reshapes single-field aggregation rows into a Sample slice,
// preserving the backend's row order. Rows whose _value is missing or
// non-numeric are skipped.
func FromRows(rows []storage.Row) []Sample {
	out := make([]Sample, 0, len(rows))
	for _, r := range rows {
		v, ok := asFloat(r.Value)
		if !ok {
			continue
		}
		out = append(out, Sample{Time: r.Time, Value: v})
	}
	return out
}

// FromPivoted reshapes raw pivoted rows (one row per observation with
// "price" and "volume" columns) directly into CombinedPoints. No merge
// is involved: the backend already associates both fields with one
// timestamp for raw records.
func FromPivoted(rows []storage.Row) []models.CombinedPoint {
	out := make([]models.CombinedPoint, 0, len(rows))
	for _, r := range rows {
		p := models.CombinedPoint{Timestamp: r.Time}
		if v, ok := asFloat(r.Values["price"]); ok {
			p.Price = ptr(v)
		}
		if v, ok := asFloat(r.Values["volume"]); ok {
			p.Volume = ptr(v)
		}
		out = append(out, p)
	}
	return out
}

// asFloat widens the numeric types the Flux client hands back. Sums of
// integer fields arrive as int64, means as float64.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
