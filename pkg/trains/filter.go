package trains

import (
	"fmt"
	"time"

	"github.com/rdvelde/showtrip/pkg/temporal"
)

// PlannedLayout is the provider's fixed offset-aware timestamp format.
const PlannedLayout = "2006-01-02T15:04:05-0700"

// PlannedTime parses a provider timestamp.
func PlannedTime(s string) (time.Time, error) {
	t, err := time.Parse(PlannedLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("planned time %q: %w", s, err)
	}
	return t, nil
}

// FilterOutbound keeps trips whose final-leg arrival is at or before the
// show start, in provider order, stopping once max qualify. The provider
// returns results sorted by preference, so the first max qualifying trips
// are taken, not the max earliest. Trips with unparseable timestamps are
// skipped.
func FilterOutbound(trips []Trip, showStart time.Time, max int) []Trip {
	limit := temporal.WallClock(showStart)
	var kept []Trip
	for _, t := range trips {
		arr, err := PlannedTime(t.Arrival().Planned)
		if err != nil {
			continue
		}
		if temporal.WallClock(arr).After(limit) {
			continue
		}
		kept = append(kept, t)
		if len(kept) >= max {
			break
		}
	}
	return kept
}

// FilterReturn keeps trips whose first-leg departure is at or after the
// buffered show end, with the same early-termination semantics as
// FilterOutbound.
func FilterReturn(trips []Trip, bufferedEnd time.Time, max int) []Trip {
	limit := temporal.WallClock(bufferedEnd)
	var kept []Trip
	for _, t := range trips {
		dep, err := PlannedTime(t.Departure().Planned)
		if err != nil {
			continue
		}
		if temporal.WallClock(dep).Before(limit) {
			continue
		}
		kept = append(kept, t)
		if len(kept) >= max {
			break
		}
	}
	return kept
}

// FormatDuration renders the span between two provider timestamps as
// "XhYm", flooring to whole minutes. An arrival before its departure
// produces truncated negative components ("-2h -15m" for -135 minutes);
// the anomaly is surfaced rather than hidden.
func FormatDuration(depISO, arrISO string) (string, error) {
	dep, err := PlannedTime(depISO)
	if err != nil {
		return "", err
	}
	arr, err := PlannedTime(arrISO)
	if err != nil {
		return "", err
	}

	minutes := int(arr.Sub(dep).Minutes())
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60), nil
}
