package temporal

import "time"

// Window is the computed time frame of one performance. It is built once
// per session and never mutated.
type Window struct {
	// Start is the performance start time.
	Start time.Time

	// Minutes is the show duration.
	Minutes int

	// End is Start plus the show duration.
	End time.Time

	// BufferedEnd is End plus the user-supplied buffer; return trips are
	// searched from here.
	BufferedEnd time.Time
}

// NewWindow computes the window for a show starting at start with the given
// duration and post-show buffer, both in minutes.
func NewWindow(start time.Time, minutes, bufferMinutes int) Window {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return Window{
		Start:       start,
		Minutes:     minutes,
		End:         end,
		BufferedEnd: end.Add(time.Duration(bufferMinutes) * time.Minute),
	}
}
