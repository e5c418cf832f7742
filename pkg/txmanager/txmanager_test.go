package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esh-b/salon-booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeTxBeginner struct {
	beginErrs []error // ошибка на n-й вызов BeginTx, nil = успех
	calls     int
	txs       []*fakeTx
}

func (b *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	if b.calls <= len(b.beginErrs) && b.beginErrs[b.calls-1] != nil {
		return nil, b.beginErrs[b.calls-1]
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

var (
	errExec     = errors.New("repo: failed to execute query")
	errInternal = errors.New("usecase: internal error")
)

// Ошибка сериализации так, как она доходит до менеджера из закрытия usecase:
// pq.Error, обернутая репозиторием и поверх обернутая usecase
func wrappedSerializationFailure() error {
	cause := &pq.Error{Code: "40001"}
	repoErr := fmt.Errorf("%w: CountOverlapping - execute query: %w", errExec, cause)
	return fmt.Errorf("%w: failed to count overlapping bookings: %w", errInternal, repoErr)
}

func TestDoSerializable_RetriesStatementSerializationFailure(t *testing.T) {
	beginner := &fakeTxBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			// Первый запуск проигрывает конкуренту: 40001 в момент SELECT
			return wrappedSerializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	// Первая транзакция откатилась, вторая закоммитилась
	require.Len(t, beginner.txs, 2)
	assert.Equal(t, 1, beginner.txs[0].rollbacks)
	assert.Equal(t, 1, beginner.txs[1].commits)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	beginner := &fakeTxBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrappedSerializationFailure()
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, attempts)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestDoSerializable_NoRetryOnBusinessError(t *testing.T) {
	beginner := &fakeTxBeginner{}
	m := NewTransactionManager(beginner)

	businessErr := errors.New("slot is not available")

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return businessErr
	})

	assert.ErrorIs(t, err, businessErr)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_RetriesBeginTxFailure(t *testing.T) {
	beginner := &fakeTxBeginner{
		beginErrs: []error{&pq.Error{Code: "40P01"}},
	}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 2, beginner.calls)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "bare serialization failure",
			err:  &pq.Error{Code: "40001"},
			want: true,
		},
		{
			name: "bare deadlock",
			err:  &pq.Error{Code: "40P01"},
			want: true,
		},
		{
			name: "wrapped through repository and usecase layers",
			err:  wrappedSerializationFailure(),
			want: true,
		},
		{
			name: "wrapped at commit",
			err:  fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}),
			want: true,
		},
		{
			name: "other sqlstate",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
