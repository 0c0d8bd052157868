package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/stripe"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type createIntentRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Description *string  `json:"description"`
}

type PaymentHandler struct {
	log      *logger.Logger
	payments services.PaymentService
	metrics  *observability.Metrics
}

func NewPaymentHandler(log *logger.Logger, payments services.PaymentService, metrics *observability.Metrics) *PaymentHandler {
	return &PaymentHandler{log: log.With("handler", "PaymentHandler"), payments: payments, metrics: metrics}
}

// POST /api/create-payment-intent
// body: { "amount": 25, "description": "..." }
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, h.log, bindError(err))
		return
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), *req.Amount, description)
	h.metrics.IncPayment("create_intent", paymentOutcome(err))
	if err != nil {
		response.RespondAPIError(c, h.log, paymentError(err, "create_intent_failed", "Error creating payment intent"))
		return
	}
	response.RespondOK(c, intent)
}

// GET /api/payment-status?payment_intent=ID
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Query("payment_intent"))
	if id == "" {
		response.RespondAPIError(c, h.log, apierr.BadRequest("missing_payment_intent", "Payment intent ID is required", nil))
		return
	}
	status, err := h.payments.Status(c.Request.Context(), id)
	h.metrics.IncPayment("status", paymentOutcome(err))
	if err != nil {
		response.RespondAPIError(c, h.log, paymentError(err, "payment_status_failed", "Error retrieving payment status"))
		return
	}
	response.RespondOK(c, status)
}

func paymentError(err error, code, prefix string) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return apierr.BadRequest("invalid_amount", "Invalid amount. Minimum is $1", err)
	case errors.Is(err, services.ErrPaymentUnavailable):
		return apierr.Unavailable("payment_unavailable", "Payment service unavailable", err)
	}
	msg := "unexpected error"
	var pe *stripe.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		msg = pe.Message
	}
	return apierr.New(http.StatusInternalServerError, code, prefix+": "+msg, err)
}

func paymentOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, services.ErrInvalidAmount):
		return "invalid"
	case errors.Is(err, services.ErrPaymentUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
