package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"stockpulse/internal/cache"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/logger"
	"stockpulse/internal/query"
	"stockpulse/internal/series"
	"stockpulse/internal/storage"
)

var (
	// ErrEmptyBatch is returned when a batch write carries no observations.
	// Transport-level validation should reject this earlier; the service
	// re-asserts it before touching the store.
	ErrEmptyBatch = errors.New("batch must contain at least one observation")

	// ErrStorageWrite wraps any store failure during a write operation.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageQuery wraps any store failure during a query operation.
	ErrStorageQuery = errors.New("storage query failed")
)

// Cache TTLs for the hot read paths. Kept short so cached responses
// only absorb request bursts without going stale.
const (
	latestCacheTTL  = 5 * time.Second
	symbolsCacheTTL = 30 * time.Second
)

// StockService exposes the five stock data operations to the transport
// layer. Implementations are stateless per call; every method is safe for
// concurrent use.
type StockService interface {
	StoreOne(ctx context.Context, obs models.Observation) error
	StoreBatch(ctx context.Context, obs []models.Observation) (int, error)
	QueryRange(ctx context.Context, q models.TimeRangeQuery) (*models.QueryResult, error)
	QueryLatest(ctx context.Context, symbol string, limit int) (*models.QueryResult, error)
	ListSymbols(ctx context.Context) ([]string, error)
}

type stockService struct {
	store   storage.TimeSeriesStore
	builder *query.Builder
	cache   cache.ResultCache // nil disables caching
	now     func() time.Time
}

// NewStockService wires the service with its injected collaborators.
// resultCache may be nil; the service then always queries the store.
func NewStockService(store storage.TimeSeriesStore, builder *query.Builder, resultCache cache.ResultCache) StockService {
	return &stockService{
		store:   store,
		builder: builder,
		cache:   resultCache,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// StoreOne forwards a single observation to the store. No retry, no
// buffering: a store failure is reported as-is.
func (s *stockService) StoreOne(ctx context.Context, obs models.Observation) error {
	if err := s.store.WritePoint(ctx, obs); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// StoreBatch forwards the whole batch in one store call and returns the
// number of observations written. The store call is expected to be
// effectively all-or-nothing, but no transactional guarantee is made;
// a failed batch is reported failed in its entirety.
func (s *stockService) StoreBatch(ctx context.Context, obs []models.Observation) (int, error) {
	if len(obs) == 0 {
		return 0, ErrEmptyBatch
	}
	if err := s.store.WriteBatch(ctx, obs); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return len(obs), nil
}

// QueryRange resolves the effective window once, runs the price and
// volume aggregation queries concurrently over that same window, and
// merge-joins the two series. The returned TimeRange is the resolved
// window, not the span of the returned points.
func (s *stockService) QueryRange(ctx context.Context, q models.TimeRangeQuery) (*models.QueryResult, error) {
	tr := query.ResolveRange(q, s.now())

	priceFlux, err := s.builder.PriceRange(q, tr)
	if err != nil {
		return nil, err
	}
	volumeFlux, err := s.builder.VolumeRange(q, tr)
	if err != nil {
		return nil, err
	}

	var priceRows, volumeRows []storage.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		priceRows, err = s.store.RunQuery(gctx, priceFlux)
		return err
	})
	g.Go(func() error {
		var err error
		volumeRows, err = s.store.RunQuery(gctx, volumeFlux)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageQuery, err)
	}

	points := series.Merge(series.FromRows(priceRows), series.FromRows(volumeRows))

	return &models.QueryResult{
		Symbol:      q.Symbol,
		Points:      points,
		TotalPoints: len(points),
		TimeRange:   tr,
		Interval:    q.Interval,
	}, nil
}

// QueryLatest returns the most recent raw observations for symbol,
// newest first, capped at limit (default 100). The reported TimeRange is
// the fixed one-hour lookback actually queried.
func (s *stockService) QueryLatest(ctx context.Context, symbol string, limit int) (*models.QueryResult, error) {
	if limit <= 0 {
		limit = query.DefaultLatestLimit
	}

	flux, err := s.builder.Latest(symbol, limit)
	if err != nil {
		return nil, err
	}
	sym, _ := models.NormalizeSymbol(symbol)

	key := cache.LatestKey(sym, limit)
	if s.cache != nil {
		if cached, err := s.cache.GetResult(ctx, key); err != nil {
			logger.L().Debug().Err(err).Str("key", key).Msg("cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	rows, err := s.store.RunQuery(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageQuery, err)
	}

	points := series.FromPivoted(rows)
	now := s.now()
	result := &models.QueryResult{
		Symbol:      sym,
		Points:      points,
		TotalPoints: len(points),
		TimeRange:   models.TimeRange{Start: now.Add(-query.LatestLookback), End: now},
		Interval:    models.DefaultInterval,
	}

	if s.cache != nil {
		if err := s.cache.SetResult(ctx, key, result, latestCacheTTL); err != nil {
			logger.L().Debug().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return result, nil
}

// ListSymbols returns the distinct symbols observed over the last 30
// days. Order is not guaranteed: the listing has set semantics.
func (s *stockService) ListSymbols(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSymbols(ctx); err != nil {
			logger.L().Debug().Err(err).Msg("cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	rows, err := s.store.RunQuery(ctx, s.builder.Symbols())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageQuery, err)
	}

	seen := make(map[string]struct{})
	symbols := make([]string, 0, len(rows))
	for _, r := range rows {
		sym := symbolOf(r)
		if sym == "" {
			continue
		}
		if _, dup := seen[sym]; dup {
			continue
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	}

	if s.cache != nil {
		if err := s.cache.SetSymbols(ctx, symbols, symbolsCacheTTL); err != nil {
			logger.L().Debug().Err(err).Msg("cache write failed")
		}
	}
	return symbols, nil
}

// symbolOf extracts the symbol from a distinct-query row. Depending on
// the backend's column layout the value lands either in the symbol tag
// column or in _value.
func symbolOf(r storage.Row) string {
	if v, ok := r.Values["symbol"].(string); ok && v != "" {
		return v
	}
	if v, ok := r.Value.(string); ok {
		return v
	}
	return ""
}
