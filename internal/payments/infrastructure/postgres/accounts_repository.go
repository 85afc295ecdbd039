package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/payment-service/internal/pkg/database"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type AccountsRepository struct {
	querier   database.Querier
	txManager database.TxManager
}

func NewAccountsRepository(querier database.Querier, txManager database.TxManager) *AccountsRepository {
	return &AccountsRepository{
		querier:   querier,
		txManager: txManager,
	}
}

func (r *AccountsRepository) GetAccount(ctx context.Context, accountNumber string) (domain.Account, bool, error) {
	selectSQL := `SELECT account_number, allowed_schemes, status, balance::text, version
FROM accounts
WHERE account_number = $1`

	var (
		account        domain.Account
		allowedSchemes int
		status         string
		balance        string
	)

	err := r.querier.QueryRow(ctx, selectSQL, accountNumber).
		Scan(&account.AccountNumber, &allowedSchemes, &status, &balance, &account.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}

		return domain.Account{}, false, errors.Wrap(err, "failed to select account")
	}

	account.AllowedPaymentSchemes = domain.AllowedPaymentSchemesFromBits(allowedSchemes)

	account.Status, err = domain.ParseAccountStatus(status)
	if err != nil {
		return domain.Account{}, false, errors.Wrapf(err, "account %s has corrupted status", accountNumber)
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return domain.Account{}, false, errors.Wrapf(err, "account %s has corrupted balance", accountNumber)
	}

	return account, true, nil
}

// UpdateAccount persists the account only if nobody changed it since it was read.
func (r *AccountsRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		return updateAccount(ctx, executor, account)
	})
}

func updateAccount(ctx context.Context, executor database.Executor, account domain.Account) error {
	updateSQL := `UPDATE accounts
SET balance = $1, allowed_schemes = $2, status = $3, version = version + 1, updated_at = now()
WHERE account_number = $4 AND version = $5`

	tag, err := executor.Exec(ctx, updateSQL,
		account.Balance.String(),
		account.AllowedPaymentSchemes.Bits(),
		account.Status.String(),
		account.AccountNumber,
		account.Version,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update account")
	} else if tag.RowsAffected() == 0 {
		return &domain.ConcurrentModificationError{
			Msg: fmt.Sprintf("account %s was modified or removed since version %d", account.AccountNumber, account.Version),
		}
	}

	insertHistorySQL := `INSERT INTO account_balance_history (account_number, balance, version) VALUES ($1, $2, $3)`
	_, err = executor.Exec(ctx, insertHistorySQL, account.AccountNumber, account.Balance.String(), account.Version+1)
	if err != nil {
		return errors.Wrap(err, "failed to insert balance history record")
	}

	return nil
}
