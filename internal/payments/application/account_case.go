package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/pkg/errors"
)

type AccountCase struct {
	dataStore domain.DataStore
}

func NewAccountCase(dataStore domain.DataStore) *AccountCase {
	return &AccountCase{
		dataStore: dataStore,
	}
}

func (ac *AccountCase) GetAccount(ctx context.Context, accountNumber string) (domain.Account, error) {
	if accountNumber == "" {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "account number is required"}
	}

	account, found, err := ac.dataStore.GetAccount(ctx, accountNumber)
	if err != nil {
		return domain.Account{}, errors.Wrap(err, "failed to get account")
	}

	if !found {
		return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountNumber)}
	}

	return account, nil
}
