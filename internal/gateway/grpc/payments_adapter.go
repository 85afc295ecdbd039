package grpc

import (
	"context"
	"time"

	paymentsv1 "github.com/Lexv0lk/payment-service/api/payments/v1"
	"github.com/Lexv0lk/payment-service/internal/gateway/domain"
)

const contextTimeLimit = 2 * time.Second

type PaymentsAdapter struct {
	client paymentsv1.PaymentServiceClient
}

func NewPaymentsAdapter(client paymentsv1.PaymentServiceClient) *PaymentsAdapter {
	return &PaymentsAdapter{
		client: client,
	}
}

func (a *PaymentsAdapter) MakePayment(ctx context.Context, order domain.PaymentOrder) (domain.PaymentOutcome, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	req := &paymentsv1.MakePaymentRequest{
		DebtorAccountNumber:   order.DebtorAccountNumber,
		CreditorAccountNumber: order.CreditorAccountNumber,
		Amount:                order.Amount,
		PaymentScheme:         order.PaymentScheme,
		PaymentDate:           order.PaymentDate,
	}

	resp, err := a.client.MakePayment(limitCtx, req)
	if err != nil {
		return domain.PaymentOutcome{}, err
	}

	return domain.PaymentOutcome{
		Success:   resp.Success,
		Reason:    resp.FailureReason,
		PaymentID: resp.PaymentID,
	}, nil
}

func (a *PaymentsAdapter) GetAccount(ctx context.Context, accountNumber string) (domain.AccountView, error) {
	limitCtx, cancel := context.WithTimeout(ctx, contextTimeLimit)
	defer cancel()

	resp, err := a.client.GetAccount(limitCtx, &paymentsv1.GetAccountRequest{AccountNumber: accountNumber})
	if err != nil {
		return domain.AccountView{}, err
	}

	schemes := resp.AllowedPaymentSchemes
	if schemes == nil {
		schemes = []string{}
	}

	return domain.AccountView{
		AccountNumber:         resp.AccountNumber,
		AllowedPaymentSchemes: schemes,
		Status:                resp.Status,
		Balance:               resp.Balance,
	}, nil
}
