package models

import "time"

// CombinedPoint is one merged output record. Price and Volume are
// pointers because either side may be absent when only one of the two
// aggregated series produced a sample at this timestamp.
type CombinedPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     *float64  `json:"price,omitempty" example:"150.50"`
	Volume    *float64  `json:"volume,omitempty" example:"1000"`
}

// TimeRange is the effective window a query actually covered, which may
// differ from what the caller supplied (defaults are resolved server-side).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// QueryResult is the response shape shared by range and latest queries.
//
// TimeRange always reflects the window that was queried, not the span of
// the returned points.
//
// swagger:model QueryResult
type QueryResult struct {
	Symbol      string          `json:"symbol" example:"AAPL"`
	Points      []CombinedPoint `json:"data_points"`
	TotalPoints int             `json:"total_points" example:"42"`
	TimeRange   TimeRange       `json:"time_range"`
	Interval    Interval        `json:"interval" example:"1m"`
}
