package domain

import "time"

// Slot represents a half-open time interval [Start, End) in UTC
type Slot struct {
	Start time.Time
	End   time.Time
}

// NewSlot builds the slot starting at start with the given fixed duration.
// The start is normalized to UTC.
func NewSlot(start time.Time, duration time.Duration) Slot {
	startUTC := start.UTC()
	return Slot{Start: startUTC, End: startUTC.Add(duration)}
}

// Overlaps reports whether two half-open intervals share any point.
// Slots that merely touch (one ends exactly when the other starts) do
// not overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}
