package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/apierr"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

const (
	contactSentMessage    = "Message sent successfully. You'll receive a reply soon!"
	contactNotSentMessage = "Message saved successfully, but email notification failed."
)

type ContactHandler struct {
	log     *logger.Logger
	contact services.ContactService
	metrics *observability.Metrics
}

func NewContactHandler(log *logger.Logger, contact services.ContactService, metrics *observability.Metrics) *ContactHandler {
	return &ContactHandler{log: log.With("handler", "ContactHandler"), contact: contact, metrics: metrics}
}

// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req types.MessageRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, h.log, bindError(err))
		return
	}
	res, err := h.contact.Submit(c.Request.Context(), req.Input())
	if err != nil {
		response.RespondAPIError(c, h.log, apierr.Internal("contact_failed", "Failed to send message", err))
		return
	}

	h.metrics.IncContactDelivery(string(res.Delivery.Status))
	sent := res.Delivery.Sent()
	msg := contactNotSentMessage
	if sent {
		msg = contactSentMessage
	}
	response.RespondCreated(c, gin.H{
		"success":   true,
		"message":   msg,
		"id":        res.Message.ID,
		"emailSent": sent,
	})
}
