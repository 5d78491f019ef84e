// Package series reshapes and merges time-aggregated samples into the
// combined points the API returns.
package series

import (
	"time"

	"stockpulse/internal/domain/models"
)

// Sample is one (timestamp, value) pair of a single-field aggregated
// series. Inputs to Merge must be sorted ascending by Time; the query
// builder's sort clause guarantees that for backend-produced series.
type Sample struct {
	Time  time.Time
	Value float64
}

// Merge joins a price series and a volume series into one ascending
// sequence of CombinedPoints using a two-pointer merge. Equal timestamps
// (exact equality, no tolerance) collapse into a single point carrying
// both values; unmatched samples pass through as singletons with the
// other field absent. Runs in O(n+m) with no buffering beyond the two
// heads.
func Merge(price, volume []Sample) []models.CombinedPoint {
	out := make([]models.CombinedPoint, 0, len(price)+len(volume))
	i, j := 0, 0

	for i < len(price) && j < len(volume) {
		p, v := price[i], volume[j]
		switch {
		case p.Time.Equal(v.Time):
			out = append(out, models.CombinedPoint{
				Timestamp: p.Time,
				Price:     ptr(p.Value),
				Volume:    ptr(v.Value),
			})
			i++
			j++
		case p.Time.Before(v.Time):
			out = append(out, models.CombinedPoint{Timestamp: p.Time, Price: ptr(p.Value)})
			i++
		default:
			out = append(out, models.CombinedPoint{Timestamp: v.Time, Volume: ptr(v.Value)})
			j++
		}
	}

	// Drain whichever side remains.
	for ; i < len(price); i++ {
		out = append(out, models.CombinedPoint{Timestamp: price[i].Time, Price: ptr(price[i].Value)})
	}
	for ; j < len(volume); j++ {
		out = append(out, models.CombinedPoint{Timestamp: volume[j].Time, Volume: ptr(volume[j].Value)})
	}

	return out
}

func ptr(f float64) *float64 { return &f }
