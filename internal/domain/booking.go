package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known states
func (s BookingStatus) IsValid() bool {
	return s == StatusScheduled || s == StatusCancelled
}

// Booking represents a reservation of the single salon chair for one slot.
// Cancellation is terminal: a cancelled booking is never reopened, a
// reschedule creates a new row instead. Rows are never physically deleted.
type Booking struct {
	ID            string
	CustomerID    string
	StartDatetime time.Time // UTC
	EndDatetime   time.Time // UTC, always StartDatetime + slot duration
	BookingReason *string
	Status        BookingStatus
	CreatedAt     time.Time
}

// IsActive returns true if the booking currently occupies its slot
// and participates in overlap checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusScheduled
}

// Slot returns the half-open interval [start, end) reserved by the booking
func (b *Booking) Slot() Slot {
	return Slot{Start: b.StartDatetime, End: b.EndDatetime}
}
