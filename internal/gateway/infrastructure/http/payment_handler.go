package http

import (
	"encoding/json"
	"net/http"

	"github.com/Lexv0lk/payment-service/internal/gateway/domain"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const AccountNumberKey = "accountNumber"

type makePaymentRequestBody struct {
	DebtorAccountNumber   string      `json:"debtorAccountNumber" binding:"required"`
	CreditorAccountNumber string      `json:"creditorAccountNumber"`
	Amount                json.Number `json:"amount" binding:"required"`
	PaymentScheme         string      `json:"paymentScheme" binding:"required"`
	PaymentDate           string      `json:"paymentDate"`
}

type PaymentHandler struct {
	service domain.PaymentService
	logger  logging.Logger
}

func NewPaymentHandler(service domain.PaymentService, logger logging.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// MakePayment answers 200 for declined payments too; the body says whether the debit happened.
func (h *PaymentHandler) MakePayment(c *gin.Context) {
	var body makePaymentRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	outcome, err := h.service.MakePayment(c, domain.PaymentOrder{
		DebtorAccountNumber:   body.DebtorAccountNumber,
		CreditorAccountNumber: body.CreditorAccountNumber,
		Amount:                body.Amount.String(),
		PaymentScheme:         body.PaymentScheme,
		PaymentDate:           body.PaymentDate,
	})
	if err != nil {
		h.handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *PaymentHandler) GetAccount(c *gin.Context) {
	accountNumber := c.Param(AccountNumberKey)

	account, err := h.service.GetAccount(c, accountNumber)
	if err != nil {
		h.handleGRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *PaymentHandler) handleGRPCError(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		h.logger.Error("payments call failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
		return
	}

	switch st.Code() {
	case codes.Unauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"errors": st.Message()})
	case codes.InvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"errors": st.Message()})
	case codes.NotFound:
		c.JSON(http.StatusNotFound, gin.H{"errors": st.Message()})
	case codes.Aborted:
		c.JSON(http.StatusConflict, gin.H{"errors": st.Message()})
	default:
		h.logger.Error("payments call failed", "path", c.FullPath(), "code", st.Code().String(), "error", st.Message())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
