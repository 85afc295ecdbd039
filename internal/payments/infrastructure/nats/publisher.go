package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const PaymentCompletedSubject = "payments.completed"

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
}

type PaymentCompleted struct {
	PaymentID             string    `json:"paymentId"`
	DebtorAccountNumber   string    `json:"debtorAccountNumber"`
	CreditorAccountNumber string    `json:"creditorAccountNumber"`
	Scheme                string    `json:"scheme"`
	Amount                string    `json:"amount"`
	PaymentDate           time.Time `json:"paymentDate"`
}

type EventPublisher struct {
	conn Conn
}

func NewEventPublisher(conn Conn) *EventPublisher {
	return &EventPublisher{
		conn: conn,
	}
}

func (p *EventPublisher) PublishPaymentCompleted(ctx context.Context, payment domain.CompletedPayment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := PaymentCompleted{
		PaymentID:             payment.PaymentID,
		DebtorAccountNumber:   payment.Request.DebtorAccountNumber,
		CreditorAccountNumber: payment.Request.CreditorAccountNumber,
		Scheme:                payment.Request.PaymentScheme.String(),
		Amount:                payment.Request.Amount.String(),
		PaymentDate:           payment.Request.PaymentDate,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal payment completed event")
	}

	if err := p.conn.Publish(PaymentCompletedSubject, data); err != nil {
		return errors.Wrap(err, "failed to publish payment completed event")
	}

	return nil
}

func Connect(url string, logger logging.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("payment-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to nats at %s", url)
	}

	return conn, nil
}
