package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpulse/internal/storage"
)

func TestFromRows(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := []storage.Row{
		{Time: t0, Value: 150.5},
		{Time: t0.Add(time.Minute), Value: int64(2000)}, // integer sums
		{Time: t0.Add(2 * time.Minute), Value: nil},     // skipped
		{Time: t0.Add(3 * time.Minute), Value: "n/a"},   // skipped
	}

	out := FromRows(rows)
	require.Len(t, out, 2)
	assert.Equal(t, 150.5, out[0].Value)
	assert.Equal(t, 2000.0, out[1].Value)
	assert.True(t, out[1].Time.Equal(t0.Add(time.Minute)))
}

func TestFromPivoted(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := []storage.Row{
		{Time: t0, Values: map[string]interface{}{"price": 150.5, "volume": int64(1000)}},
		{Time: t0.Add(time.Second), Values: map[string]interface{}{"price": 151.0}},
		{Time: t0.Add(2 * time.Second), Values: map[string]interface{}{"volume": int64(500)}},
	}

	out := FromPivoted(rows)
	require.Len(t, out, 3)

	require.NotNil(t, out[0].Price)
	require.NotNil(t, out[0].Volume)
	assert.Equal(t, 150.5, *out[0].Price)
	assert.Equal(t, 1000.0, *out[0].Volume)

	assert.NotNil(t, out[1].Price)
	assert.Nil(t, out[1].Volume)

	assert.Nil(t, out[2].Price)
	assert.NotNil(t, out[2].Volume)
}
