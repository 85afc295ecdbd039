package database

import (
	"context"

	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type DelegateTxManager struct {
	txBeginner TxBeginner
	logger     logging.Logger
}

func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger) *DelegateTxManager {
	return &DelegateTxManager{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	err = txFn(ctx, tx)
	if err != nil {
		return errors.Wrap(err, "failed to execute logic within transaction")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
