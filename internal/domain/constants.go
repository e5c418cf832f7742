package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultDisplayTimezone     = "America/Toronto"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNameLength          = 200
	MaxPhoneNumberLength   = 32
	MaxEmailLength         = 254
	MaxBookingReasonLength = 500
)
