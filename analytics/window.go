package analytics

import "time"

// PeriodWindow is a half-open time interval [Start, End).
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Windows holds the current trailing period and the immediately preceding
// period of identical length, so previous.End == current.Start.
type Windows struct {
	Current  PeriodWindow
	Previous PeriodWindow
}

// ComputeWindows returns the trailing window of the given number of days
// ending at now, plus the equal-length window immediately before it.
// Callers must supply days > 0; non-positive values produce inverted bounds.
func ComputeWindows(days int, now time.Time) Windows {
	start := now.Add(-time.Duration(days) * 24 * time.Hour)
	prevStart := now.Add(-time.Duration(2*days) * 24 * time.Hour)
	return Windows{
		Current:  PeriodWindow{Start: start, End: now},
		Previous: PeriodWindow{Start: prevStart, End: start},
	}
}

// Contains reports whether t falls inside the window.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
