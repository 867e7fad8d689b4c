package trains

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripAt(dep, arr string) Trip {
	return Trip{Legs: []Leg{{
		Origin:      Stop{Name: "Utrecht Centraal", Planned: dep},
		Destination: Stop{Name: "Amsterdam Centraal", Planned: arr},
	}}}
}

func TestFilterOutboundRespectsShowStart(t *testing.T) {
	showStart := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.Local)
	trips := []Trip{
		tripAt("2025-06-01T18:30:00+0200", "2025-06-01T19:05:00+0200"),
		tripAt("2025-06-01T19:00:00+0200", "2025-06-01T19:35:00+0200"),
		tripAt("2025-06-01T19:40:00+0200", "2025-06-01T20:15:00+0200"), // arrives too late
		tripAt("2025-06-01T19:25:00+0200", "2025-06-01T20:00:00+0200"), // arrives exactly on time
	}

	kept := FilterOutbound(trips, showStart, 5)

	require.Len(t, kept, 3)
	for _, trip := range kept {
		arr, err := PlannedTime(trip.Arrival().Planned)
		require.NoError(t, err)
		assert.False(t, arr.Hour() > 20, "no kept trip arrives after the show starts")
	}
	assert.Equal(t, "2025-06-01T20:00:00+0200", kept[2].Arrival().Planned,
		"arrival equal to show start qualifies")
}

func TestFilterOutboundEarlyTermination(t *testing.T) {
	showStart := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.Local)

	// Ten qualifying trips in provider preference order; the first five are
	// taken, not the five earliest.
	var trips []Trip
	for i := 9; i >= 0; i-- {
		dep := fmt.Sprintf("2025-06-01T%02d:00:00+0200", 8+i)
		arr := fmt.Sprintf("2025-06-01T%02d:40:00+0200", 8+i)
		trips = append(trips, tripAt(dep, arr))
	}

	kept := FilterOutbound(trips, showStart, 5)

	require.Len(t, kept, 5)
	assert.Equal(t, trips[0].Departure().Planned, kept[0].Departure().Planned,
		"provider ordering preserved")
}

func TestFilterReturnRespectsBufferedEnd(t *testing.T) {
	bufferedEnd := time.Date(2025, time.June, 1, 22, 10, 0, 0, time.Local)
	trips := []Trip{
		tripAt("2025-06-01T21:55:00+0200", "2025-06-01T22:30:00+0200"), // departs too early
		tripAt("2025-06-01T22:10:00+0200", "2025-06-01T22:45:00+0200"), // departs exactly at the bound
		tripAt("2025-06-01T22:25:00+0200", "2025-06-01T23:00:00+0200"),
	}

	kept := FilterReturn(trips, bufferedEnd, 5)

	require.Len(t, kept, 2)
	for _, trip := range kept {
		dep, err := PlannedTime(trip.Departure().Planned)
		require.NoError(t, err)
		assert.False(t, dep.Hour() == 21, "no kept trip departs before the buffered end")
	}
}

func TestFilterSkipsUnparseableTimestamps(t *testing.T) {
	showStart := time.Date(2025, time.June, 1, 20, 0, 0, 0, time.Local)
	trips := []Trip{
		tripAt("2025-06-01T18:30:00+0200", "not-a-timestamp"),
		tripAt("2025-06-01T19:00:00+0200", "2025-06-01T19:35:00+0200"),
	}

	kept := FilterOutbound(trips, showStart, 5)
	require.Len(t, kept, 1)
}

func TestFormatDuration(t *testing.T) {
	got, err := FormatDuration("2025-06-01T20:00:00+0200", "2025-06-01T22:15:00+0200")
	require.NoError(t, err)
	assert.Equal(t, "2h 15m", got)

	got, err = FormatDuration("2025-06-01T20:00:00+0200", "2025-06-01T20:45:00+0200")
	require.NoError(t, err)
	assert.Equal(t, "0h 45m", got)
}

func TestFormatDurationAcrossOffsets(t *testing.T) {
	// Same instant expressed in two offsets: zero duration.
	got, err := FormatDuration("2025-06-01T20:00:00+0200", "2025-06-01T18:00:00+0000")
	require.NoError(t, err)
	assert.Equal(t, "0h 0m", got)
}

func TestFormatDurationNegative(t *testing.T) {
	got, err := FormatDuration("2025-06-01T22:15:00+0200", "2025-06-01T20:00:00+0200")
	require.NoError(t, err)
	assert.Equal(t, "-2h -15m", got, "negative spans surface as-is")
}

func TestFormatDurationBadInput(t *testing.T) {
	_, err := FormatDuration("garbage", "2025-06-01T20:00:00+0200")
	assert.Error(t, err)
}
