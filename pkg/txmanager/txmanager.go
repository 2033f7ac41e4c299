// Package txmanager runs functions inside database transactions opened on a
// metrics-aware connection. The open transaction travels through context
// (dbmetrics.WithTx), so repositories called from fn join it transparently.
package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cimillas/CML-SpaceService/pkg/dbmetrics"
)

// TxBeginner opens metrics-aware transactions
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs functions inside transactions
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a transaction manager over db
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a default-isolation transaction
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.withTx(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction.
// Используется на пути записи брони: одновременные запросы на один слот
// не могут оба пройти проверку доступности.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.withTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly runs fn inside a read-only transaction
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.withTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) withTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}
