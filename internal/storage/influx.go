package storage

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"stockpulse/internal/domain/models"
)

// measurement must match the name the query builder filters on.
const measurement = "stock_data"

// InfluxStore implements TimeSeriesStore over an InfluxDB 2.x server
// using the blocking write API. The underlying client is safe for
// concurrent use; InfluxStore adds no state of its own.
type InfluxStore struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	queryAPI api.QueryAPI
}

// NewInfluxStore constructs a store bound to one org and bucket.
//
// Parameters:
//   - url: InfluxDB base URL (e.g., "http://localhost:8086").
//   - token: API token with read/write access to the bucket.
//   - org: organization name.
//   - bucket: destination bucket for the stock_data measurement.
//
// The connection is lazy; use Ping to verify reachability.
func NewInfluxStore(url, token, org, bucket string) *InfluxStore {
	client := influxdb2.NewClient(url, token)
	return &InfluxStore{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		queryAPI: client.QueryAPI(org),
	}
}

// WritePoint persists a single observation.
func (s *InfluxStore) WritePoint(ctx context.Context, obs models.Observation) error {
	if err := s.writeAPI.WritePoint(ctx, toPoint(obs)); err != nil {
		return fmt.Errorf("influx write point: %w", err)
	}
	return nil
}

// WriteBatch persists all observations in one write call. The backend
// may partially apply a failed batch; no rollback is attempted here.
func (s *InfluxStore) WriteBatch(ctx context.Context, obs []models.Observation) error {
	points := make([]*write.Point, 0, len(obs))
	for _, o := range obs {
		points = append(points, toPoint(o))
	}
	if err := s.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("influx write batch: %w", err)
	}
	return nil
}

// RunQuery executes Flux query text and drains the result into Rows.
func (s *InfluxStore) RunQuery(ctx context.Context, flux string) ([]Row, error) {
	result, err := s.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("influx query: %w", err)
	}
	defer func() { _ = result.Close() }()

	var rows []Row
	for result.Next() {
		rec := result.Record()
		rows = append(rows, Row{
			Time:   rec.Time(),
			Value:  rec.Value(),
			Values: rec.Values(),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("influx query result: %w", err)
	}
	return rows, nil
}

// Ping verifies the server is reachable.
func (s *InfluxStore) Ping(ctx context.Context) error {
	ok, err := s.client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("influx ping: %w", err)
	}
	if !ok {
		return fmt.Errorf("influx ping: server not ready")
	}
	return nil
}

// Close releases the underlying HTTP client resources.
func (s *InfluxStore) Close() {
	s.client.Close()
}

func toPoint(obs models.Observation) *write.Point {
	return influxdb2.NewPoint(
		measurement,
		map[string]string{"symbol": obs.Symbol},
		map[string]interface{}{
			"price":  obs.Price,
			"volume": obs.Volume,
		},
		obs.Timestamp,
	)
}
