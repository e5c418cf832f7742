package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/esh-b/salon-booking-service/internal/domain"
	bookingRepo "github.com/esh-b/salon-booking-service/internal/infra/storage/booking"
	customerRepo "github.com/esh-b/salon-booking-service/internal/infra/storage/customer"
	"github.com/esh-b/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
// Многошаговые атомарные операции (создание, перенос) живут в usecases
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	txManager    TransactionManager
	displayLoc   *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	txManager TransactionManager,
	displayLoc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		displayLoc:   displayLoc,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.displayLoc), nil
}

// GetActiveBookings получает активные бронирования клиента по номеру телефона
// Неизвестный номер или отсутствие активных бронирований - это пустой список,
// а не ошибка
func (s *Service) GetActiveBookings(ctx context.Context, phone string) (*models.ActiveBookingsResponse, error) {
	s.logger.Info("GetActiveBookings: fetching bookings for phone=%s", phone)

	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	// Поиск клиента и выборка его бронирований выполняются в одной
	// read-only транзакции: список не должен видеть запись, отмененную
	// между двумя запросами
	var bookings []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		cust, err := s.customerRepo.GetByPhone(txCtx, phone)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				s.logger.Info("GetActiveBookings: no customer for phone=%s", phone)
				return nil
			}
			s.logger.Error("GetActiveBookings: customer lookup failed for phone=%s: %v", phone, err)
			return fmt.Errorf("%w: GetActiveBookings - customer lookup: %w", ErrInternal, err)
		}

		list, err := s.bookingRepo.GetActiveByCustomer(txCtx, cust.ID)
		if err != nil {
			s.logger.Error("GetActiveBookings: repository error for customer id=%s: %v", cust.ID, err)
			return fmt.Errorf("%w: GetActiveBookings - repository error: %w", ErrInternal, err)
		}

		bookings = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetActiveBookings: %d active booking(s) for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings, s.displayLoc), nil
}

// Cancel отменяет бронирование
// Отмена уже отмененного или несуществующего бронирования возвращает
// ErrBookingNotFound без записи в хранилище: повторный вызов безопасен
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: no active booking id=%s, nothing cancelled", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}
