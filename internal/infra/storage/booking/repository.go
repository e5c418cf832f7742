package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/esh-b/salon-booking-service/internal/domain"
	"github.com/esh-b/salon-booking-service/pkg/dbmetrics"
	"github.com/esh-b/salon-booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"start_datetime",
	"end_datetime",
	"booking_reason",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её - при
// создании бронирования с проверкой доступности слота запись обязана
// выполняться в той же транзакции, что и проверка
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_id",
			"start_datetime",
			"end_datetime",
			"booking_reason",
			"status",
		).
		Values(
			booking.ID,
			booking.CustomerID,
			booking.StartDatetime,
			booking.EndDatetime,
			booking.BookingReason,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	return booking, nil
}

// GetByID получает бронирование по ID
// Если в контексте есть активная транзакция, строка блокируется FOR UPDATE -
// перенос бронирования не должен гоняться с его отменой
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.StartDatetime,
		&booking.EndDatetime,
		&booking.BookingReason,
		&booking.Status,
		&booking.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	if !booking.Status.IsValid() {
		return nil, fmt.Errorf("%w: GetByID - unknown booking status %q", ErrScanRow, booking.Status)
	}

	return &booking, nil
}

// GetActiveByCustomer получает активные (scheduled) бронирования клиента,
// отсортированные по времени начала
func (r *Repository) GetActiveByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"customer_id": customerID,
			"status":      domain.StatusScheduled,
		}).
		OrderBy("start_datetime ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCustomer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountOverlapping считает активные бронирования, пересекающиеся с
// полуоткрытым интервалом [start, end)
// Отмененные бронирования никогда не участвуют в проверке пересечений.
// Внутри транзакции найденные строки блокируются FOR UPDATE
func (r *Repository) CountOverlapping(ctx context.Context, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// COUNT(*) нельзя комбинировать с FOR UPDATE, поэтому выбираем id
	// пересекающихся строк и считаем их на стороне приложения
	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Lt{"start_datetime": end}).
		Where(squirrel.Gt{"end_datetime": start}).
		Where(squirrel.Eq{"status": domain.StatusScheduled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountOverlapping - scan row: %w", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %w", ErrScanRow, err)
	}

	return count, nil
}

// Cancel переводит бронирование в статус cancelled
// Переход выполняется только из статуса scheduled; если строка отсутствует
// или уже отменена, возвращается ErrBookingNotFound и запись не выполняется
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusScheduled,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.StartDatetime,
			&booking.EndDatetime,
			&booking.BookingReason,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		if !booking.Status.IsValid() {
			return nil, fmt.Errorf("%w: scanBookings - unknown booking status %q", ErrScanRow, booking.Status)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
