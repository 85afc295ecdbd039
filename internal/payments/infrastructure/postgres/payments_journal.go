package postgres

import (
	"context"

	"github.com/Lexv0lk/payment-service/internal/pkg/database"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/pkg/errors"
)

type PaymentsJournal struct {
	executor database.Executor
}

func NewPaymentsJournal(executor database.Executor) *PaymentsJournal {
	return &PaymentsJournal{
		executor: executor,
	}
}

func (j *PaymentsJournal) RecordPayment(ctx context.Context, payment domain.CompletedPayment) error {
	insertSQL := `INSERT INTO payments (id, debtor_account_number, creditor_account_number, scheme, amount, payment_date)
VALUES ($1, $2, $3, $4, $5, $6)`

	request := payment.Request
	_, err := j.executor.Exec(ctx, insertSQL,
		payment.PaymentID,
		request.DebtorAccountNumber,
		request.CreditorAccountNumber,
		request.PaymentScheme.String(),
		request.Amount.String(),
		request.PaymentDate,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert payment record")
	}

	return nil
}
