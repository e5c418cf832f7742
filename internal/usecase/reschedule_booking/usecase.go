package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/esh-b/salon-booking-service/internal/domain"
	bookingRepo "github.com/esh-b/salon-booking-service/internal/infra/storage/booking"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	slotValidator SlotValidator
	txManager     TransactionManager
	slotDuration  time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotValidator SlotValidator,
	txManager TransactionManager,
	slotDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotValidator: slotValidator,
		txManager:     txManager,
		slotDuration:  slotDuration,
		logger:        logger,
	}
}

// Execute выполняет перенос бронирования одной атомарной транзакцией:
// отмена исходной строки и вставка новой либо коммитятся вместе, либо
// откатываются вместе. При недоступности нового слота исходное
// бронирование остается в статусе scheduled без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, new_start=%s, phone=%s",
		req.BookingID, req.StartDatetime, req.PhoneNumber)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.BookingID) == "" {
		uc.logger.Warn("RescheduleBooking: empty booking id")
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	// 2. Валидация нового времени начала (до открытия транзакции)
	start, err := uc.slotValidator.Validate(req.StartDatetime)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: slot validation failed: %v", err)
		return nil, err
	}

	candidate := domain.NewSlot(start, uc.slotDuration)

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем исходное бронирование (с блокировкой строки)
		original, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// Отмененное бронирование перенести нельзя
		if !original.IsActive() {
			uc.logger.Warn("RescheduleBooking: booking id=%s is already cancelled", req.BookingID)
			return ErrBookingNotFound
		}

		// 3.2. Проверяем доступность нового слота
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, candidate.Start, candidate.End)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %w", ErrInternal, err)
		}

		if overlapping > 0 {
			// Собственный интервал бронирования тоже блокирует перенос:
			// проверка доступности идет до отмены исходной строки
			if candidate.Overlaps(original.Slot()) {
				uc.logger.Warn("RescheduleBooking: new slot overlaps booking id=%s own interval", original.ID)
			}
			uc.logger.Warn("RescheduleBooking: slot %s - %s not available, original booking untouched",
				candidate.Start.Format(time.RFC3339), candidate.End.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		// 3.3. Отмечаем исходное бронирование отмененным
		if err := uc.bookingRepo.Cancel(txCtx, original.ID); err != nil {
			uc.logger.Error("RescheduleBooking: failed to cancel booking id=%s: %v", original.ID, err)
			return fmt.Errorf("%w: failed to cancel original booking: %w", ErrInternal, err)
		}

		// 3.4. Создаем новую строку с тем же клиентом и причиной визита
		replacement := &domain.Booking{
			ID:            uuid.NewString(),
			CustomerID:    original.CustomerID,
			StartDatetime: candidate.Start,
			EndDatetime:   candidate.End,
			BookingReason: original.BookingReason,
			Status:        domain.StatusScheduled,
		}

		created, err := uc.bookingRepo.Create(txCtx, replacement)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to create replacement booking: %v", err)
			return fmt.Errorf("%w: failed to create replacement booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s rescheduled, new booking id=%s",
		req.BookingID, result.ID)

	return &Response{
		NewBookingID:  result.ID,
		OldBookingID:  req.BookingID,
		StartDatetime: result.StartDatetime,
		EndDatetime:   result.EndDatetime,
	}, nil
}
