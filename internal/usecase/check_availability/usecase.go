package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/esh-b/salon-booking-service/internal/domain"
)

// UseCase use case для проверки доступности слота
// Read-only операция: корректность конкурентного бронирования обеспечивает
// не эта проверка, а транзакция внутри create_booking
type UseCase struct {
	bookingRepo   BookingRepository
	slotValidator SlotValidator
	slotDuration  time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotValidator SlotValidator,
	slotDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotValidator: slotValidator,
		slotDuration:  slotDuration,
		logger:        logger,
	}
}

// Execute выполняет проверку доступности слота
// Ошибки валидации (ErrInvalidFormat, ErrMissingTimezone, ErrPastSlot)
// пробрасываются из SlotValidator без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: start=%s", req.StartDatetime)

	start, err := uc.slotValidator.Validate(req.StartDatetime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: slot validation failed: %v", err)
		return nil, err
	}

	candidate := domain.NewSlot(start, uc.slotDuration)

	overlapping, err := uc.bookingRepo.CountOverlapping(ctx, candidate.Start, candidate.End)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
	}

	available := overlapping == 0
	uc.logger.Info("CheckAvailability: slot %s - %s available=%t (%d overlapping)",
		candidate.Start.Format(time.RFC3339), candidate.End.Format(time.RFC3339), available, overlapping)

	return &Response{
		Available:     available,
		StartDatetime: candidate.Start,
		EndDatetime:   candidate.End,
	}, nil
}
