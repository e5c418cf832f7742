package domain

import "time"

// Customer represents a salon customer. Customers are deduplicated by
// phone number: the first booking for a phone number creates the record,
// later bookings reuse it unchanged (name/email drift is not reconciled).
type Customer struct {
	ID          string
	Name        string
	PhoneNumber string
	Email       *string
	CreatedAt   time.Time
}
