package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	DebtorAccountNumber   string
	CreditorAccountNumber string
	Amount                decimal.Decimal
	PaymentDate           time.Time
	PaymentScheme         PaymentScheme
}

// AmountScale is the number of decimal places an amount or balance can carry.
const AmountScale = 4

// maxAmount bounds amounts to the 15 integer digits a NUMERIC(19, 4) column holds.
var maxAmount = decimal.New(1, 19-AmountScale)

// ValidateAmount rejects amounts that cannot be debited and stored without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &InvalidArgumentsError{Msg: "payment amount must not be negative"}
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return &InvalidArgumentsError{Msg: "payment amount must have at most 4 decimal places"}
	}

	if amount.GreaterThanOrEqual(maxAmount) {
		return &InvalidArgumentsError{Msg: "payment amount is too large"}
	}

	return nil
}

type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureAccountNotFound
	FailureSchemeNotAllowed
	FailureInsufficientBalance
	FailureAccountNotLive
)

var failureReasonNames = [...]string{
	FailureNone:                "none",
	FailureAccountNotFound:     "account_not_found",
	FailureSchemeNotAllowed:    "scheme_not_allowed",
	FailureInsufficientBalance: "insufficient_balance",
	FailureAccountNotLive:      "account_not_live",
}

func (r FailureReason) String() string {
	if r < FailureNone || r > FailureAccountNotLive {
		return "unknown"
	}

	return failureReasonNames[r]
}

// PaymentResult reports whether every rule for the request's scheme passed.
// Reason is FailureNone exactly when Success is true.
type PaymentResult struct {
	Success bool
	Reason  FailureReason
}

func SucceededPayment() PaymentResult {
	return PaymentResult{Success: true, Reason: FailureNone}
}

func FailedPayment(reason FailureReason) PaymentResult {
	return PaymentResult{Success: false, Reason: reason}
}

// Outcome is the label used for logs and metrics.
func (r PaymentResult) Outcome() string {
	if r.Success {
		return "success"
	}

	return r.Reason.String()
}

type CompletedPayment struct {
	PaymentID string
	Request   PaymentRequest
}
