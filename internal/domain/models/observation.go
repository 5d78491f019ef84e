package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// MaxSymbolLength bounds ticker symbols; anything longer is rejected
// before it can reach query construction.
const MaxSymbolLength = 10

var (
	// ErrInvalidSymbol is returned when a symbol is empty, too long,
	// or contains anything other than letters.
	ErrInvalidSymbol = errors.New("symbol must be 1-10 letters")

	// ErrInvalidPrice is returned for zero or negative prices.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidVolume is returned for negative volumes.
	ErrInvalidVolume = errors.New("volume must be non-negative")
)

// Observation is a single stock data point: one (symbol, price, volume)
// record at an instant in time. Observations are immutable once validated;
// they are created at ingestion time and never mutated afterwards.
type Observation struct {
	Symbol    string    `json:"symbol" example:"AAPL"`
	Price     float64   `json:"price" example:"150.50"`
	Volume    int64     `json:"volume" example:"1000"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate normalizes the observation in place and reports the first
// violated invariant:
//   - Symbol: letters only, uppercased, at most MaxSymbolLength runes.
//   - Price: strictly positive, rounded to 2 decimal places.
//   - Volume: non-negative.
//   - Timestamp: zero value defaults to the current time; always UTC.
func (o *Observation) Validate() error {
	sym, err := NormalizeSymbol(o.Symbol)
	if err != nil {
		return err
	}
	o.Symbol = sym

	if o.Price <= 0 {
		return ErrInvalidPrice
	}
	o.Price = math.Round(o.Price*100) / 100

	if o.Volume < 0 {
		return ErrInvalidVolume
	}

	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	} else {
		o.Timestamp = o.Timestamp.UTC()
	}
	return nil
}

// NormalizeSymbol validates that s is a plausible ticker symbol (letters
// only, bounded length) and returns its canonical uppercase form.
//
// Symbols are interpolated into Flux query text downstream, so only the
// A-Z allow-list passes. Callers must use the returned value, never the
// input.
func NormalizeSymbol(s string) (string, error) {
	if len(s) == 0 || len(s) > MaxSymbolLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = c
		case c >= 'a' && c <= 'z':
			out[i] = c - ('a' - 'A')
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
		}
	}
	return string(out), nil
}
