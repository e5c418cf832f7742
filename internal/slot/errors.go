package slot

import "errors"

var (
	// ErrInvalidFormat возвращается, когда строка не парсится как ISO 8601 timestamp
	ErrInvalidFormat = errors.New("slot: invalid datetime format, must be ISO 8601 with timezone")

	// ErrMissingTimezone возвращается, когда timestamp парсится, но не содержит offset
	// Timestamp без явного offset отклоняется, а не дополняется дефолтной таймзоной
	ErrMissingTimezone = errors.New("slot: datetime must include timezone info")

	// ErrPastSlot возвращается, когда запрошенное время не строго в будущем
	ErrPastSlot = errors.New("slot: the requested timeslot is in the past")
)
