package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-danang/Serenity-BookingService/pkg/dbmetrics"
	"github.com/serenity-danang/Serenity-BookingService/pkg/txmanager"
)

// stubDriver минимальный драйвер, умеющий только открывать и завершать транзакции.
// Запросы внутри транзакций в тестах не выполняются
type stubDriver struct{}

func (stubDriver) Open(name string) (driver.Conn, error) {
	return &stubConn{}, nil
}

type stubConn struct{}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{}, nil
}

func (c *stubConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	return &stubTx{}, nil
}

type stubTx struct{}

func (t *stubTx) Commit() error {
	return nil
}

func (t *stubTx) Rollback() error {
	return nil
}

func init() {
	sql.Register("simpletxmanager_stub", stubDriver{})
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("simpletxmanager_stub", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func serializationFailure() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesThenSucceeds(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationFailure()
	})

	require.Error(t, err)
	// Сентинел общий с txmanager, чтобы вызывающая сторона не различала менеджеров
	assert.ErrorIs(t, err, txmanager.ErrTxRetryExhausted)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_NonSerializationErrorReturnedImmediately(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	bizErr := errors.New("slot is full")
	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return bizErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, bizErr)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_ContextCancelledDuringBackoff(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := manager.DoSerializable(ctx, func(ctx context.Context) error {
		attempts++
		cancel()
		return serializationFailure()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestDo_PutsTransactionIntoContext(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
}

func TestDo_ReturnsFnError(t *testing.T) {
	manager := NewTransactionManager(newTestDB(t))

	fnErr := errors.New("insert failed")
	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, fnErr)
}
