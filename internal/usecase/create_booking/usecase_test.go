package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esh-b/salon-booking-service/internal/domain"
	customerRepo "github.com/esh-b/salon-booking-service/internal/infra/storage/customer"
	"github.com/esh-b/salon-booking-service/internal/slot"
)

type mockBookingRepository struct {
	createFunc           func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	countOverlappingFunc func(ctx context.Context, start, end time.Time) (int, error)

	createCalls int
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	created := *booking
	created.CreatedAt = time.Now()
	return &created, nil
}

func (m *mockBookingRepository) CountOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	if m.countOverlappingFunc != nil {
		return m.countOverlappingFunc(ctx, start, end)
	}
	return 0, nil
}

type mockCustomerRepository struct {
	getByPhoneFunc func(ctx context.Context, phone string) (*domain.Customer, error)
	createFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	createCalls int
}

func (m *mockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if m.getByPhoneFunc != nil {
		return m.getByPhoneFunc(ctx, phone)
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	created := *c
	created.CreatedAt = time.Now()
	return &created, nil
}

type mockSlotValidator struct {
	validateFunc func(raw string) (time.Time, error)
}

func (m *mockSlotValidator) Validate(raw string) (time.Time, error) {
	if m.validateFunc != nil {
		return m.validateFunc(raw)
	}
	return time.Parse(time.RFC3339, raw)
}

// mockTxManager выполняет closure без реальной транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StartDatetime: "2030-04-23T16:00:00-04:00",
		Name:          "Maria Lopez",
		PhoneNumber:   "+14165550123",
	}
}

func TestCreateBooking_Success_NewCustomer(t *testing.T) {
	bookingRepo := &mockBookingRepository{}
	custRepo := &mockCustomerRepository{}
	txMgr := &mockTxManager{}

	uc := NewUseCase(bookingRepo, custRepo, &mockSlotValidator{}, txMgr, time.Hour, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)
	assert.NotEmpty(t, resp.CustomerID)
	assert.True(t, resp.EndDatetime.Equal(resp.StartDatetime.Add(time.Hour)))
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, 1, custRepo.createCalls)
	assert.Equal(t, 1, bookingRepo.createCalls)
}

func TestCreateBooking_Success_ExistingCustomer(t *testing.T) {
	existing := &domain.Customer{ID: "cust-1", Name: "Old Name", PhoneNumber: "+14165550123"}

	bookingRepo := &mockBookingRepository{}
	custRepo := &mockCustomerRepository{
		getByPhoneFunc: func(ctx context.Context, phone string) (*domain.Customer, error) {
			return existing, nil
		},
	}

	uc := NewUseCase(bookingRepo, custRepo, &mockSlotValidator{}, &mockTxManager{}, time.Hour, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "cust-1", resp.CustomerID)
	// Повторный клиент: новая запись не создается, атрибуты не обновляются
	assert.Equal(t, 0, custRepo.createCalls)
}

func TestCreateBooking_SlotNotAvailable(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		countOverlappingFunc: func(ctx context.Context, start, end time.Time) (int, error) {
			return 1, nil
		},
	}
	custRepo := &mockCustomerRepository{}

	uc := NewUseCase(bookingRepo, custRepo, &mockSlotValidator{}, &mockTxManager{}, time.Hour, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 0, custRepo.createCalls)
	assert.Equal(t, 0, bookingRepo.createCalls)
}

func TestCreateBooking_SlotValidationFailsBeforeTransaction(t *testing.T) {
	tests := []struct {
		name    string
		slotErr error
	}{
		{"invalid format", slot.ErrInvalidFormat},
		{"missing timezone", slot.ErrMissingTimezone},
		{"past slot", slot.ErrPastSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &mockBookingRepository{}
			txMgr := &mockTxManager{}
			validator := &mockSlotValidator{
				validateFunc: func(raw string) (time.Time, error) {
					return time.Time{}, tt.slotErr
				},
			}

			uc := NewUseCase(bookingRepo, &mockCustomerRepository{}, validator, txMgr, time.Hour, noopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.slotErr)
			// Транзакция не открывается, записей нет
			assert.Equal(t, 0, txMgr.calls)
			assert.Equal(t, 0, bookingRepo.createCalls)
		})
	}
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"whitespace name", func(r *Request) { r.Name = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txMgr := &mockTxManager{}
			uc := NewUseCase(&mockBookingRepository{}, &mockCustomerRepository{}, &mockSlotValidator{}, txMgr, time.Hour, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, txMgr.calls)
		})
	}
}

func TestCreateBooking_PhoneConflictRetriesLookup(t *testing.T) {
	winner := &domain.Customer{ID: "cust-winner", PhoneNumber: "+14165550123"}

	lookups := 0
	custRepo := &mockCustomerRepository{
		getByPhoneFunc: func(ctx context.Context, phone string) (*domain.Customer, error) {
			lookups++
			if lookups == 1 {
				// Первый lookup: клиента еще нет
				return nil, customerRepo.ErrCustomerNotFound
			}
			// Повторный lookup после проигранной вставки
			return winner, nil
		},
		createFunc: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			return nil, customerRepo.ErrPhoneAlreadyExists
		},
	}

	uc := NewUseCase(&mockBookingRepository{}, custRepo, &mockSlotValidator{}, &mockTxManager{}, time.Hour, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "cust-winner", resp.CustomerID)
	assert.Equal(t, 2, lookups)
}

func TestCreateBooking_RepositoryErrorWrappedAsInternal(t *testing.T) {
	bookingRepo := &mockBookingRepository{
		countOverlappingFunc: func(ctx context.Context, start, end time.Time) (int, error) {
			return 0, errors.New("connection reset")
		},
	}

	uc := NewUseCase(bookingRepo, &mockCustomerRepository{}, &mockSlotValidator{}, &mockTxManager{}, time.Hour, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreateBooking_SlotBoundsUseConfiguredDuration(t *testing.T) {
	var created *domain.Booking
	bookingRepo := &mockBookingRepository{
		createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created = booking
			return booking, nil
		},
	}

	uc := NewUseCase(bookingRepo, &mockCustomerRepository{}, &mockSlotValidator{}, &mockTxManager{}, 30*time.Minute, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, time.UTC, created.StartDatetime.Location())
	assert.True(t, created.EndDatetime.Equal(created.StartDatetime.Add(30*time.Minute)))
	assert.Equal(t, domain.StatusScheduled, created.Status)
}
