package create_booking

import (
	"fmt"
	"strings"

	"github.com/esh-b/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Временная валидация (формат, прошлое) выполняется отдельно через SlotValidator
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phoneNumber is required", ErrInvalidInput)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phoneNumber is too long", ErrInvalidInput)
	}

	if req.Email != nil && len(*req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}

	if req.BookingReason != nil && len(*req.BookingReason) > domain.MaxBookingReasonLength {
		return fmt.Errorf("%w: bookingReason is too long", ErrInvalidInput)
	}

	return nil
}
