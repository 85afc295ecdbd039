package application

import (
	"context"

	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/pkg/errors"
)

type PaymentCase struct {
	dataStore domain.DataStore
	logger    logging.Logger
}

func NewPaymentCase(dataStore domain.DataStore, logger logging.Logger) *PaymentCase {
	return &PaymentCase{
		dataStore: dataStore,
		logger:    logger,
	}
}

// MakePayment debits the debtor account when every rule of the request's scheme passes.
// Rule failures are reported through the result; only invalid input and store failures are errors.
// The account is read and written without locking, so concurrent payments rely on the store's own checks.
func (pc *PaymentCase) MakePayment(ctx context.Context, request domain.PaymentRequest) (domain.PaymentResult, error) {
	if err := domain.ValidateAmount(request.Amount); err != nil {
		return domain.PaymentResult{}, err
	}

	account, found, err := pc.dataStore.GetAccount(ctx, request.DebtorAccountNumber)
	if err != nil {
		return domain.PaymentResult{}, errors.Wrap(err, "failed to get debtor account")
	}

	result := validatePayment(request, account, found)

	pc.logger.Info("payment validated",
		"debtor", request.DebtorAccountNumber,
		"scheme", request.PaymentScheme.String(),
		"amount", request.Amount.String(),
		"outcome", result.Outcome(),
	)

	if !result.Success {
		return result, nil
	}

	account.Debit(request.Amount)

	err = pc.dataStore.UpdateAccount(ctx, account)
	if err != nil {
		return domain.PaymentResult{}, errors.Wrap(err, "failed to update debtor account")
	}

	return result, nil
}

// validatePayment checks, in order: account presence, scheme permission, then the scheme's own rule.
func validatePayment(request domain.PaymentRequest, account domain.Account, found bool) domain.PaymentResult {
	if !found {
		return domain.FailedPayment(domain.FailureAccountNotFound)
	}

	if !account.AllowedPaymentSchemes.Has(request.PaymentScheme) {
		return domain.FailedPayment(domain.FailureSchemeNotAllowed)
	}

	switch request.PaymentScheme {
	case domain.FasterPayments:
		if account.Balance.LessThan(request.Amount) {
			return domain.FailedPayment(domain.FailureInsufficientBalance)
		}
	case domain.Chaps:
		if account.Status != domain.Live {
			return domain.FailedPayment(domain.FailureAccountNotLive)
		}
	case domain.Bacs:
	}

	return domain.SucceededPayment()
}
