package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/gateway/mock_domain.go -package=mocks . PaymentService

type PaymentService interface {
	MakePayment(ctx context.Context, order PaymentOrder) (PaymentOutcome, error)
	GetAccount(ctx context.Context, accountNumber string) (AccountView, error)
}

type PaymentOrder struct {
	DebtorAccountNumber   string
	CreditorAccountNumber string
	Amount                string
	PaymentScheme         string
	PaymentDate           string
}

// PaymentOutcome is returned for both executed and declined payments.
type PaymentOutcome struct {
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
}

type AccountView struct {
	AccountNumber         string   `json:"accountNumber"`
	AllowedPaymentSchemes []string `json:"allowedPaymentSchemes"`
	Status                string   `json:"status"`
	Balance               string   `json:"balance"`
}
