package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSlot_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("EDT", -4*60*60)
	start := time.Date(2025, 4, 23, 16, 0, 0, 0, loc)

	s := NewSlot(start, time.Hour)

	assert.Equal(t, time.UTC, s.Start.Location())
	assert.True(t, s.Start.Equal(time.Date(2025, 4, 23, 20, 0, 0, 0, time.UTC)))
	assert.True(t, s.End.Equal(time.Date(2025, 4, 23, 21, 0, 0, 0, time.UTC)))
}

func TestSlot_Overlaps(t *testing.T) {
	base := time.Date(2025, 4, 23, 16, 0, 0, 0, time.UTC)
	slot := func(startOffset, endOffset time.Duration) Slot {
		return Slot{Start: base.Add(startOffset), End: base.Add(endOffset)}
	}

	existing := slot(0, time.Hour)

	tests := []struct {
		name      string
		candidate Slot
		want      bool
	}{
		{
			name:      "identical interval",
			candidate: slot(0, time.Hour),
			want:      true,
		},
		{
			name:      "candidate starts inside existing",
			candidate: slot(30*time.Minute, 90*time.Minute),
			want:      true,
		},
		{
			name:      "candidate ends inside existing",
			candidate: slot(-30*time.Minute, 30*time.Minute),
			want:      true,
		},
		{
			name:      "candidate contains existing",
			candidate: slot(-time.Hour, 2*time.Hour),
			want:      true,
		},
		{
			name:      "back to back after does not overlap",
			candidate: slot(time.Hour, 2*time.Hour),
			want:      false,
		},
		{
			name:      "back to back before does not overlap",
			candidate: slot(-time.Hour, 0),
			want:      false,
		},
		{
			name:      "fully disjoint",
			candidate: slot(3*time.Hour, 4*time.Hour),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	b := &Booking{Status: StatusScheduled}
	assert.True(t, b.IsActive())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("completed").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}
