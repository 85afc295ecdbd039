package application

import (
	"context"

	"fmt"
	"testing"

	mocks "github.com/Lexv0lk/payment-service/gen/mocks/payments"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/Lexv0lk/payment-service/internal/payments/infrastructure/memory"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const debtorAccount = "12345678"

type debitedAccountMatcher struct {
	accountNumber string
	balance       decimal.Decimal
}

func debitedAccount(accountNumber string, balance int64) gomock.Matcher {
	return debitedAccountMatcher{accountNumber: accountNumber, balance: decimal.NewFromInt(balance)}
}

func (m debitedAccountMatcher) Matches(x interface{}) bool {
	account, ok := x.(domain.Account)
	return ok && account.AccountNumber == m.accountNumber && account.Balance.Equal(m.balance)
}

func (m debitedAccountMatcher) String() string {
	return fmt.Sprintf("account %s with balance %s", m.accountNumber, m.balance)
}

func TestPaymentCase_MakePayment(t *testing.T) {
	t.Parallel()

	type deps struct {
		dataStore *mocks.MockDataStore
	}

	type testCase struct {
		name    string
		request domain.PaymentRequest

		prepareFn func(t *testing.T, d *deps)

		expectedResult domain.PaymentResult
		expectedErr    error
	}

	account := func(schemes domain.AllowedPaymentSchemes, status domain.AccountStatus, balance int64) domain.Account {
		return domain.Account{
			AccountNumber:         debtorAccount,
			AllowedPaymentSchemes: schemes,
			Status:                status,
			Balance:               decimal.NewFromInt(balance),
			Version:               1,
		}
	}

	request := func(scheme domain.PaymentScheme, amount int64) domain.PaymentRequest {
		return domain.PaymentRequest{
			DebtorAccountNumber:   debtorAccount,
			CreditorAccountNumber: "87654321",
			Amount:                decimal.NewFromInt(amount),
			PaymentScheme:         scheme,
		}
	}

	tests := []testCase{
		{
			name:    "account not found",
			request: request(domain.FasterPayments, 5),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(domain.Account{}, false, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureAccountNotFound),
		},
		{
			name:    "empty request against missing account",
			request: domain.PaymentRequest{},
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), "").
					Return(domain.Account{}, false, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureAccountNotFound),
		},
		{
			name:    "faster payments not allowed",
			request: request(domain.FasterPayments, 1),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(), domain.Live, 100), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureSchemeNotAllowed),
		},
		{
			name:    "chaps not allowed",
			request: request(domain.Chaps, 1),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments, domain.Bacs), domain.Live, 100), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureSchemeNotAllowed),
		},
		{
			name:    "bacs not allowed",
			request: request(domain.Bacs, 1),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Chaps), domain.Live, 100), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureSchemeNotAllowed),
		},
		{
			name:    "unknown scheme is never allowed",
			request: request(domain.PaymentScheme(5), 1),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments, domain.Chaps, domain.Bacs), domain.Live, 100), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureSchemeNotAllowed),
		},
		{
			name:    "faster payments balance below amount",
			request: request(domain.FasterPayments, 20),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments), domain.Live, 10), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureInsufficientBalance),
		},
		{
			name:    "chaps account disabled",
			request: request(domain.Chaps, 0),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Chaps), domain.Disabled, 0), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureAccountNotLive),
		},
		{
			name:    "chaps account inbound payments only",
			request: request(domain.Chaps, 0),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Chaps), domain.InboundPaymentsOnly, 50), true, nil)
			},
			expectedResult: domain.FailedPayment(domain.FailureAccountNotLive),
		},
		{
			name:    "faster payments success",
			request: request(domain.FasterPayments, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, 10)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "faster payments with balance equal to amount",
			request: request(domain.FasterPayments, 20),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments), domain.Disabled, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, 0)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "chaps success",
			request: request(domain.Chaps, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Chaps), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, 10)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "chaps ignores balance",
			request: request(domain.Chaps, 30),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Chaps), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, -10)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "bacs success",
			request: request(domain.Bacs, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Bacs), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, 10)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "bacs ignores balance and status",
			request: request(domain.Bacs, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.Bacs), domain.Disabled, 5), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, -5)).
					Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:        "negative amount",
			request:     request(domain.Bacs, -1),
			prepareFn:   func(t *testing.T, d *deps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "amount finer than four decimal places",
			request: domain.PaymentRequest{
				DebtorAccountNumber: debtorAccount,
				Amount:              decimal.RequireFromString("0.00005"),
				PaymentScheme:       domain.FasterPayments,
			},
			prepareFn:   func(t *testing.T, d *deps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "amount beyond fifteen integer digits",
			request: domain.PaymentRequest{
				DebtorAccountNumber: debtorAccount,
				Amount:              decimal.RequireFromString("1000000000000000"),
				PaymentScheme:       domain.Bacs,
			},
			prepareFn:   func(t *testing.T, d *deps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name: "trailing zeros past four decimal places",
			request: domain.PaymentRequest{
				DebtorAccountNumber: debtorAccount,
				Amount:              decimal.RequireFromString("10.50000"),
				PaymentScheme:       domain.FasterPayments,
			},
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccountMatcher{
					accountNumber: debtorAccount,
					balance:       decimal.RequireFromString("9.5"),
				}).Return(nil)
			},
			expectedResult: domain.SucceededPayment(),
		},
		{
			name:    "get account error",
			request: request(domain.FasterPayments, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(domain.Account{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:    "update account conflict",
			request: request(domain.FasterPayments, 10),
			prepareFn: func(t *testing.T, d *deps) {
				d.dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).
					Return(account(domain.NewAllowedPaymentSchemes(domain.FasterPayments), domain.Live, 20), true, nil)
				d.dataStore.EXPECT().UpdateAccount(gomock.Any(), debitedAccount(debtorAccount, 10)).
					Return(&domain.ConcurrentModificationError{Msg: "account changed"})
			},
			expectedErr: &domain.ConcurrentModificationError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				dataStore: mocks.NewMockDataStore(ctrl),
			}

			tt.prepareFn(t, d)

			paymentCase := NewPaymentCase(d.dataStore, logging.NopLogger)
			result, err := paymentCase.MakePayment(context.Background(), tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, result.Success)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestPaymentCase_MakePayment_NotIdempotent(t *testing.T) {
	t.Parallel()

	store := memory.NewAccountsStore()
	store.Seed(domain.Account{
		AccountNumber:         debtorAccount,
		AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.FasterPayments),
		Status:                domain.Live,
		Balance:               decimal.NewFromInt(25),
	})

	paymentCase := NewPaymentCase(store, logging.NopLogger)
	request := domain.PaymentRequest{
		DebtorAccountNumber: debtorAccount,
		Amount:              decimal.NewFromInt(10),
		PaymentScheme:       domain.FasterPayments,
	}

	for i := 0; i < 2; i++ {
		result, err := paymentCase.MakePayment(context.Background(), request)
		require.NoError(t, err)
		assert.True(t, result.Success)
	}

	account, found, err := store.GetAccount(context.Background(), debtorAccount)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, decimal.NewFromInt(5).Equal(account.Balance), account.Balance.String())

	result, err := paymentCase.MakePayment(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, domain.FailedPayment(domain.FailureInsufficientBalance), result)
}

func TestAccountCase_GetAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name          string
		accountNumber string

		prepareFn func(t *testing.T, dataStore *mocks.MockDataStore)

		expectedAccount domain.Account
		expectedErr     error
	}

	existing := domain.Account{
		AccountNumber:         debtorAccount,
		AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.Bacs),
		Status:                domain.InboundPaymentsOnly,
		Balance:               decimal.NewFromInt(42),
		Version:               3,
	}

	tests := []testCase{
		{
			name:          "found",
			accountNumber: debtorAccount,
			prepareFn: func(t *testing.T, dataStore *mocks.MockDataStore) {
				dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).Return(existing, true, nil)
			},
			expectedAccount: existing,
		},
		{
			name:          "not found",
			accountNumber: "missing",
			prepareFn: func(t *testing.T, dataStore *mocks.MockDataStore) {
				dataStore.EXPECT().GetAccount(gomock.Any(), "missing").Return(domain.Account{}, false, nil)
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name:          "empty account number",
			accountNumber: "",
			prepareFn:     func(t *testing.T, dataStore *mocks.MockDataStore) {},
			expectedErr:   &domain.InvalidArgumentsError{},
		},
		{
			name:          "store error",
			accountNumber: debtorAccount,
			prepareFn: func(t *testing.T, dataStore *mocks.MockDataStore) {
				dataStore.EXPECT().GetAccount(gomock.Any(), debtorAccount).Return(domain.Account{}, false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			dataStore := mocks.NewMockDataStore(ctrl)
			tt.prepareFn(t, dataStore)

			account, err := NewAccountCase(dataStore).GetAccount(context.Background(), tt.accountNumber)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAccount, account)
			}
		})
	}
}
