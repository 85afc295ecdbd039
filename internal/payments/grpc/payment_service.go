package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	paymentsv1 "github.com/Lexv0lk/payment-service/api/payments/v1"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/Lexv0lk/payment-service/internal/pkg/metrics"
	"github.com/Lexv0lk/payment-service/internal/payments/application"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type PaymentServerGRPC struct {
	paymentsv1.UnimplementedPaymentServiceServer

	paymentCase *application.PaymentCase
	accountCase *application.AccountCase

	journal   domain.PaymentsJournal
	publisher domain.PaymentEventPublisher
	metrics   *metrics.PaymentMetrics
	logger    logging.Logger

	now func() time.Time
}

// NewPaymentServerGRPC builds the service. publisher may be nil when no event bus is configured.
func NewPaymentServerGRPC(
	paymentCase *application.PaymentCase,
	accountCase *application.AccountCase,
	journal domain.PaymentsJournal,
	publisher domain.PaymentEventPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	logger logging.Logger,
) *PaymentServerGRPC {
	return &PaymentServerGRPC{
		paymentCase: paymentCase,
		accountCase: accountCase,
		journal:     journal,
		publisher:   publisher,
		metrics:     paymentMetrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *PaymentServerGRPC) MakePayment(ctx context.Context, req *paymentsv1.MakePaymentRequest) (*paymentsv1.MakePaymentResponse, error) {
	request, err := s.convertPaymentRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	started := s.now()
	result, err := s.paymentCase.MakePayment(ctx, request)
	if err != nil {
		s.metrics.ObservePayment(request.PaymentScheme, "error", s.now().Sub(started))
		s.logger.Error("failed to make payment",
			"client", clientIDFromContext(ctx),
			"debtor", request.DebtorAccountNumber,
			"error", err.Error(),
		)

		return nil, toStatusError(err)
	}
	s.metrics.ObservePayment(request.PaymentScheme, result.Outcome(), s.now().Sub(started))

	if !result.Success {
		return &paymentsv1.MakePaymentResponse{
			Success:       false,
			FailureReason: result.Reason.String(),
		}, nil
	}

	payment := domain.CompletedPayment{
		PaymentID: uuid.NewString(),
		Request:   request,
	}
	s.afterPayment(ctx, payment)

	return &paymentsv1.MakePaymentResponse{
		Success:   true,
		PaymentID: payment.PaymentID,
	}, nil
}

// afterPayment runs once the debit is stored, so its failures are logged and never reported to the caller.
func (s *PaymentServerGRPC) afterPayment(ctx context.Context, payment domain.CompletedPayment) {
	if err := s.journal.RecordPayment(ctx, payment); err != nil {
		s.logger.Error("failed to record payment", "payment_id", payment.PaymentID, "error", err.Error())
	}

	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishPaymentCompleted(ctx, payment); err != nil {
		s.logger.Warn("failed to publish payment event", "payment_id", payment.PaymentID, "error", err.Error())
	}
}

func (s *PaymentServerGRPC) GetAccount(ctx context.Context, req *paymentsv1.GetAccountRequest) (*paymentsv1.GetAccountResponse, error) {
	account, err := s.accountCase.GetAccount(ctx, strings.TrimSpace(req.AccountNumber))
	if err != nil {
		if !errors.Is(err, &domain.AccountNotFoundError{}) {
			s.logger.Error("failed to get account", "account", req.AccountNumber, "error", err.Error())
		}

		return nil, toStatusError(err)
	}

	return convertToAccountResponse(account), nil
}

func (s *PaymentServerGRPC) convertPaymentRequest(req *paymentsv1.MakePaymentRequest) (domain.PaymentRequest, error) {
	if req.DebtorAccountNumber == "" {
		return domain.PaymentRequest{}, errors.New("debtor account number is required")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return domain.PaymentRequest{}, errors.New("amount must be a decimal number")
	}

	scheme, err := domain.ParsePaymentScheme(req.PaymentScheme)
	if err != nil {
		return domain.PaymentRequest{}, err
	}

	paymentDate := s.now().UTC()
	if req.PaymentDate != "" {
		paymentDate, err = time.Parse(time.RFC3339, req.PaymentDate)
		if err != nil {
			return domain.PaymentRequest{}, errors.New("payment date must be RFC 3339")
		}
	}

	return domain.PaymentRequest{
		DebtorAccountNumber:   req.DebtorAccountNumber,
		CreditorAccountNumber: req.CreditorAccountNumber,
		Amount:                amount,
		PaymentDate:           paymentDate,
		PaymentScheme:         scheme,
	}, nil
}

func convertToAccountResponse(account domain.Account) *paymentsv1.GetAccountResponse {
	schemes := account.AllowedPaymentSchemes.Schemes()
	schemeNames := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		schemeNames = append(schemeNames, scheme.String())
	}

	return &paymentsv1.GetAccountResponse{
		AccountNumber:         account.AccountNumber,
		AllowedPaymentSchemes: schemeNames,
		Status:                account.Status.String(),
		Balance:               account.Balance.String(),
	}
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, &domain.AccountNotFoundError{}):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, &domain.ConcurrentModificationError{}):
		return status.Error(codes.Aborted, "account was modified concurrently, retry the payment")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
