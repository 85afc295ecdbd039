package paymentsv1

type MakePaymentRequest struct {
	DebtorAccountNumber   string `json:"debtorAccountNumber"`
	CreditorAccountNumber string `json:"creditorAccountNumber"`
	// Amount is a decimal string, e.g. "10.50".
	Amount        string `json:"amount"`
	PaymentScheme string `json:"paymentScheme"`
	// PaymentDate is RFC 3339. Empty means now.
	PaymentDate string `json:"paymentDate,omitempty"`
}

type MakePaymentResponse struct {
	Success       bool   `json:"success"`
	FailureReason string `json:"failureReason,omitempty"`
	PaymentID     string `json:"paymentId,omitempty"`
}

type GetAccountRequest struct {
	AccountNumber string `json:"accountNumber"`
}

type GetAccountResponse struct {
	AccountNumber         string   `json:"accountNumber"`
	AllowedPaymentSchemes []string `json:"allowedPaymentSchemes"`
	Status                string   `json:"status"`
	Balance               string   `json:"balance"`
}
