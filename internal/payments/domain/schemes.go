package domain

import (
	"fmt"
	"strings"
)

type PaymentScheme int

const (
	FasterPayments PaymentScheme = iota
	Chaps
	Bacs
)

var paymentSchemeNames = [...]string{
	FasterPayments: "FasterPayments",
	Chaps:          "Chaps",
	Bacs:           "Bacs",
}

func (p PaymentScheme) IsValid() bool {
	return p >= FasterPayments && p <= Bacs
}

func (p PaymentScheme) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("PaymentScheme(%d)", int(p))
	}

	return paymentSchemeNames[p]
}

// Flag returns the scheme's bit, 1 << ordinal. Unknown schemes map to no bit.
func (p PaymentScheme) Flag() AllowedPaymentSchemes {
	if !p.IsValid() {
		return 0
	}

	return AllowedPaymentSchemes(1 << uint(p))
}

func ParsePaymentScheme(s string) (PaymentScheme, error) {
	for scheme, name := range paymentSchemeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return PaymentScheme(scheme), nil
		}
	}

	return 0, &InvalidArgumentsError{Msg: fmt.Sprintf("unknown payment scheme %q", s)}
}

// AllowedPaymentSchemes is the set of schemes an account may be debited through.
// The zero value is the empty set.
type AllowedPaymentSchemes uint8

const allSchemesMask = AllowedPaymentSchemes(1<<uint(FasterPayments) | 1<<uint(Chaps) | 1<<uint(Bacs))

func NewAllowedPaymentSchemes(schemes ...PaymentScheme) AllowedPaymentSchemes {
	var set AllowedPaymentSchemes
	for _, scheme := range schemes {
		set = set.With(scheme)
	}

	return set
}

func (s AllowedPaymentSchemes) Has(scheme PaymentScheme) bool {
	flag := scheme.Flag()
	return flag != 0 && s&flag == flag
}

func (s AllowedPaymentSchemes) With(scheme PaymentScheme) AllowedPaymentSchemes {
	return s | scheme.Flag()
}

func (s AllowedPaymentSchemes) Without(scheme PaymentScheme) AllowedPaymentSchemes {
	return s &^ scheme.Flag()
}

func (s AllowedPaymentSchemes) IsEmpty() bool {
	return s&allSchemesMask == 0
}

func (s AllowedPaymentSchemes) Schemes() []PaymentScheme {
	schemes := make([]PaymentScheme, 0, len(paymentSchemeNames))
	for scheme := range paymentSchemeNames {
		if s.Has(PaymentScheme(scheme)) {
			schemes = append(schemes, PaymentScheme(scheme))
		}
	}

	return schemes
}

func (s AllowedPaymentSchemes) String() string {
	schemes := s.Schemes()
	if len(schemes) == 0 {
		return "None"
	}

	names := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		names = append(names, scheme.String())
	}

	return strings.Join(names, "|")
}

// AllowedPaymentSchemesFromBits restores a persisted set, dropping bits that name no scheme.
func AllowedPaymentSchemesFromBits(bits int) AllowedPaymentSchemes {
	return AllowedPaymentSchemes(bits) & allSchemesMask
}

func (s AllowedPaymentSchemes) Bits() int {
	return int(s & allSchemesMask)
}
