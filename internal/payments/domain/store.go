package domain

import "context"

//go:generate mockgen -destination=../../../gen/mocks/payments/mock_domain.go -package=mocks . DataStore,PaymentsJournal,PaymentEventPublisher

// DataStore owns account records. GetAccount reports an absent account with found=false and a nil error.
type DataStore interface {
	GetAccount(ctx context.Context, accountNumber string) (account Account, found bool, err error)
	UpdateAccount(ctx context.Context, account Account) error
}

type PaymentsJournal interface {
	RecordPayment(ctx context.Context, payment CompletedPayment) error
}

type PaymentEventPublisher interface {
	PublishPaymentCompleted(ctx context.Context, payment CompletedPayment) error
}
