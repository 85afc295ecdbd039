package memory

import (
	"context"
	"sync"

	"github.com/Lexv0lk/payment-service/internal/payments/domain"
)

type PaymentsJournal struct {
	mu       sync.Mutex
	payments []domain.CompletedPayment
}

func NewPaymentsJournal() *PaymentsJournal {
	return &PaymentsJournal{}
}

func (j *PaymentsJournal) RecordPayment(_ context.Context, payment domain.CompletedPayment) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.payments = append(j.payments, payment)
	return nil
}

func (j *PaymentsJournal) Payments() []domain.CompletedPayment {
	j.mu.Lock()
	defer j.mu.Unlock()

	result := make([]domain.CompletedPayment, len(j.payments))
	copy(result, j.payments)
	return result
}
