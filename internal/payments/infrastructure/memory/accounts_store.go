package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lexv0lk/payment-service/internal/payments/domain"
)

// AccountsStore keeps account copies in memory. Callers never share the stored values.
type AccountsStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountsStore() *AccountsStore {
	return &AccountsStore{
		accounts: make(map[string]domain.Account),
	}
}

func (s *AccountsStore) Seed(accounts ...domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range accounts {
		s.accounts[account.AccountNumber] = account
	}
}

func (s *AccountsStore) GetAccount(_ context.Context, accountNumber string) (domain.Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountNumber]
	return account, ok, nil
}

func (s *AccountsStore) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.accounts[account.AccountNumber]
	if !ok {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", account.AccountNumber)}
	}

	if stored.Version != account.Version {
		return &domain.ConcurrentModificationError{
			Msg: fmt.Sprintf("account %s changed since version %d", account.AccountNumber, account.Version),
		}
	}

	account.Version++
	s.accounts[account.AccountNumber] = account

	return nil
}
