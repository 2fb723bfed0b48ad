package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:30"), ts)

	for _, bad := range []string{"", "25:00", "14:60", "1430", "14:30:00", "abc"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("10:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 600, m)

	m, err = TimeString("19:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1170, m)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("10:00"), FromMinutes(600))
	assert.Equal(t, TimeString("20:00"), FromMinutes(1200))
	assert.Equal(t, TimeString("00:00"), FromMinutes(1440))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("14:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:30"), ts)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:30"))
}

func TestAt(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
