package units

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeters(t *testing.T) {
	m, err := ParseMeters("10")
	require.NoError(t, err)
	assert.Equal(t, Meters(10), m)

	m, err = ParseMeters("30ft")
	require.NoError(t, err)
	assert.InDelta(t, 9.144, float64(m), 0.0001)

	m, err = ParseMeters(" -10 ft")
	require.NoError(t, err)
	assert.InDelta(t, -3.048, float64(m), 0.0001)

	_, err = ParseMeters("tall")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	m := Meters(1609.344)

	assert.Equal(t, "1609.3 m", m.String())
	assert.Equal(t, "1.0 mi", m.Miles())
	assert.Equal(t, "1.6 km", m.Kilometers())
	assert.Equal(t, "5280.0 ft", m.Feet())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "0:59", FormatDuration(59*time.Minute+59*time.Second))
	assert.Equal(t, "1:05", FormatDuration(65*time.Minute))
	assert.Equal(t, "3:05", FormatDuration(3*time.Hour+5*time.Minute))
	assert.Equal(t, "26:00", FormatDuration(26*time.Hour))
}
