package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/esh-b/salon-booking-service/internal/domain"
	"github.com/esh-b/salon-booking-service/pkg/dbmetrics"
	"github.com/esh-b/salon-booking-service/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"name",
	"phone_number",
	"email",
	"created_at",
}

// Repository репозиторий для работы с клиентами
// Клиенты дедуплицируются по номеру телефона (уникальный индекс в БД)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"phone_number": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.PhoneNumber,
		&c.Email,
		&c.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan customer: %w", ErrScanRow, err)
	}

	return &c, nil
}

// Create создает нового клиента
// При конфликте по номеру телефона строка не вставляется и возвращается
// ErrPhoneAlreadyExists: конкурентную гонку первой записи выигрывает один
// из вызовов, остальные должны повторить GetByPhone
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"id",
			"name",
			"phone_number",
			"email",
		).
		Values(
			c.ID,
			c.Name,
			c.PhoneNumber,
			c.Email,
		).
		Suffix("ON CONFLICT (phone_number) DO NOTHING RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	// DO NOTHING не возвращает строку, если сработал конфликт
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPhoneAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}
