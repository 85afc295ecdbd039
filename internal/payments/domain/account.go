package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type AccountStatus int

const (
	Live AccountStatus = iota
	Disabled
	InboundPaymentsOnly
)

var accountStatusNames = [...]string{
	Live:                "live",
	Disabled:            "disabled",
	InboundPaymentsOnly: "inbound_payments_only",
}

func (s AccountStatus) String() string {
	if s < Live || s > InboundPaymentsOnly {
		return fmt.Sprintf("AccountStatus(%d)", int(s))
	}

	return accountStatusNames[s]
}

func ParseAccountStatus(s string) (AccountStatus, error) {
	for status, name := range accountStatusNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return AccountStatus(status), nil
		}
	}

	return 0, &InvalidArgumentsError{Msg: fmt.Sprintf("unknown account status %q", s)}
}

type Account struct {
	AccountNumber         string
	AllowedPaymentSchemes AllowedPaymentSchemes
	Status                AccountStatus
	Balance               decimal.Decimal

	// Version is maintained by the data store for optimistic concurrency.
	Version int64
}

func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}
