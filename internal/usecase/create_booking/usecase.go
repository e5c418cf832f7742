package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/esh-b/salon-booking-service/internal/domain"
	customerRepo "github.com/esh-b/salon-booking-service/internal/infra/storage/customer"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	customerRepo  CustomerRepository
	slotValidator SlotValidator
	txManager     TransactionManager
	slotDuration  time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	slotValidator SlotValidator,
	txManager TransactionManager,
	slotDuration time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		customerRepo:  customerRepo,
		slotValidator: slotValidator,
		txManager:     txManager,
		slotDuration:  slotDuration,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота, поиск/создание клиента и вставка бронирования
// выполняются в одной сериализуемой транзакции: это закрывает гонку
// check-then-act между конкурентными бронированиями одного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, start=%s", req.PhoneNumber, req.StartDatetime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация времени начала слота (до открытия транзакции)
	start, err := uc.slotValidator.Validate(req.StartDatetime)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	candidate := domain.NewSlot(start, uc.slotDuration)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем доступность слота
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, candidate.Start, candidate.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %w", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: slot %s - %s not available, %d overlapping booking(s)",
				candidate.Start.Format(time.RFC3339), candidate.End.Format(time.RFC3339), overlapping)
			return ErrSlotNotAvailable
		}

		// 3.2. Находим или создаем клиента по номеру телефона
		cust, err := uc.resolveCustomer(txCtx, req)
		if err != nil {
			return err
		}

		// 3.3. Создаем бронирование
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			CustomerID:    cust.ID,
			StartDatetime: candidate.Start,
			EndDatetime:   candidate.End,
			BookingReason: req.BookingReason,
			Status:        domain.StatusScheduled,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for customer id=%s",
		result.ID, result.CustomerID)

	return &Response{
		BookingID:     result.ID,
		CustomerID:    result.CustomerID,
		StartDatetime: result.StartDatetime,
		EndDatetime:   result.EndDatetime,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// resolveCustomer находит клиента по номеру телефона или создает нового
// Существующий клиент возвращается как есть: имя и email из запроса
// не перезаписывают сохраненные значения
func (uc *UseCase) resolveCustomer(ctx context.Context, req *Request) (*domain.Customer, error) {
	existing, err := uc.customerRepo.GetByPhone(ctx, req.PhoneNumber)
	if err == nil {
		uc.logger.Info("CreateBooking: found existing customer id=%s for phone=%s", existing.ID, req.PhoneNumber)
		return existing, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateBooking: failed to look up customer: %v", err)
		return nil, fmt.Errorf("%w: failed to look up customer: %w", ErrInternal, err)
	}

	created, err := uc.customerRepo.Create(ctx, &domain.Customer{
		ID:          uuid.NewString(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err == nil {
		uc.logger.Info("CreateBooking: created customer id=%s for phone=%s", created.ID, req.PhoneNumber)
		return created, nil
	}

	// Конкурентное первое бронирование с того же номера: вставку выиграл
	// другой вызов, повторяем lookup вместо возврата ошибки
	if errors.Is(err, customerRepo.ErrPhoneAlreadyExists) {
		existing, lookupErr := uc.customerRepo.GetByPhone(ctx, req.PhoneNumber)
		if lookupErr != nil {
			uc.logger.Error("CreateBooking: retry lookup after phone conflict failed: %v", lookupErr)
			return nil, fmt.Errorf("%w: retry lookup after phone conflict: %w", ErrInternal, lookupErr)
		}
		return existing, nil
	}

	uc.logger.Error("CreateBooking: failed to create customer: %v", err)
	return nil, fmt.Errorf("%w: failed to create customer: %w", ErrInternal, err)
}
