package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"2 uur 15 min", 135},
		{"1 uur 30 min", 90},
		{"2 uur", 120},
		{"45 min", 45},
		{"90 min.", 90},
		{"onbekend", 90},
		{"", 90},
		{"uur", 90},
		{"0 min", 90},
		{"abc uur 10 min", 90},
		{"1 uur abc min", 90},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.text))
		})
	}
}

func TestParseDateTimeISO(t *testing.T) {
	dt, ok := ParseDateTime("2025-06-06T20:15", []string{"nl", "en"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 6, 20, 15, 0, 0, time.Local), dt)
}

func TestParseDateTimeDutch(t *testing.T) {
	dt, ok := ParseDateTime("vr 6 jun 20:15", []string{"nl", "en"})
	require.True(t, ok)
	assert.Equal(t, time.June, dt.Month())
	assert.Equal(t, 6, dt.Day())
	assert.Equal(t, 20, dt.Hour())
	assert.Equal(t, 15, dt.Minute())
}

func TestParseDateTimeEnglish(t *testing.T) {
	dt, ok := ParseDateTime("6 June 2025 19:30", []string{"nl", "en"})
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 6, 19, 30, 0, 0, time.Local), dt)
}

func TestParseDateTimeGarbage(t *testing.T) {
	for _, text := range []string{"", "   ", "garbage", "klik hier voor kaartjes"} {
		_, ok := ParseDateTime(text, []string{"nl", "en"})
		assert.False(t, ok, text)
	}
}

func TestParseDateTimeWithoutTimeMarker(t *testing.T) {
	dt, ok := ParseDateTime("2025-12-31", []string{"nl"})
	require.True(t, ok)
	assert.Equal(t, 0, dt.Hour())
	assert.Equal(t, 0, dt.Minute())
}

func TestInjectYear(t *testing.T) {
	dt := time.Date(0, time.June, 6, 20, 15, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, time.June, 6, 20, 15, 0, 0, time.Local), InjectYear(dt, 2025))
}

func TestWallClockStripsZone(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	aware := time.Date(2025, time.June, 1, 20, 0, 0, 0, zone)
	naive := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.Local)

	assert.True(t, WallClock(aware).Equal(WallClock(naive)))
}

func TestNewWindow(t *testing.T) {
	start := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.Local)
	w := NewWindow(start, 90, 10)

	assert.Equal(t, start, w.Start)
	assert.Equal(t, 90, w.Minutes)
	assert.Equal(t, start.Add(90*time.Minute), w.End)
	assert.Equal(t, start.Add(100*time.Minute), w.BufferedEnd)
}
