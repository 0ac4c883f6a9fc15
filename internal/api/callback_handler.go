package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidpereyra2016/cv-generador/internal/api/middleware"
	"github.com/davidpereyra2016/cv-generador/internal/errcode"
	"github.com/davidpereyra2016/cv-generador/internal/store"
)

// CallbackHandler terminates the two payment callback paths: the browser
// redirect after hosted checkout and the provider's server-to-server
// webhook.
type CallbackHandler struct {
	gateway PaymentGateway
	store   *store.Store
}

// NewCallbackHandler constructs a CallbackHandler.
func NewCallbackHandler(gateway PaymentGateway, st *store.Store) *CallbackHandler {
	return &CallbackHandler{gateway: gateway, store: st}
}

// Success is the browser redirect target after checkout. The payment status
// is confirmed against the provider, never trusted from query parameters
// alone. Non-approved payments bounce to /failure; a missing reference or
// stored submission renders a hard error view (deterministic policy, no
// client-side-storage fallback).
func (h *CallbackHandler) Success(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	if c.Query("status") != "approved" {
		c.Redirect(http.StatusFound, "/failure")
		return
	}

	payment, err := h.gateway.GetPayment(c.Request.Context(), c.Query("payment_id"))
	if err != nil {
		log.Error("confirm payment failed",
			slog.Int("code", errcode.SystemError),
			slog.Any("error", err),
		)
		renderHTML(c, http.StatusBadGateway, notFoundViewTemplate)
		return
	}
	if !payment.Approved() {
		log.Warn("redirect carried approved status but provider disagrees",
			slog.String("provider_status", payment.Status),
		)
		c.Redirect(http.StatusFound, "/failure")
		return
	}

	formID := strings.TrimSpace(c.Query("external_reference"))
	if formID == "" {
		formID = strings.TrimSpace(payment.ExternalReference)
	}
	if formID == "" {
		log.Warn("approved payment without external reference",
			slog.Int("code", errcode.ResourceMissing),
		)
		renderHTML(c, http.StatusNotFound, notFoundViewTemplate)
		return
	}

	sub, err := h.store.Load(formID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("stored submission missing for approved payment",
				slog.String("form_id", formID),
				slog.Int("code", errcode.ResourceMissing),
			)
			renderHTML(c, http.StatusNotFound, notFoundViewTemplate)
			return
		}
		log.Error("load stored submission failed",
			slog.Int("code", errcode.SystemError),
			slog.Any("error", err),
		)
		renderHTML(c, http.StatusInternalServerError, notFoundViewTemplate)
		return
	}

	log.Info("payment confirmed",
		slog.String("form_id", formID),
		slog.Int64("payment_id", payment.ID),
		slog.Float64("amount", payment.TransactionAmount),
	)
	renderSuccessView(c, formID, sub.TemplateType)
}

// Failure renders the static payment-failed view.
func (h *CallbackHandler) Failure(c *gin.Context) {
	renderHTML(c, http.StatusOK, failureView)
}

// Pending renders the static payment-pending view.
func (h *CallbackHandler) Pending(c *gin.Context) {
	renderHTML(c, http.StatusOK, pendingView)
}

type webhookNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// Webhook receives provider-pushed payment notifications. Policy is
// acknowledge-first: anything structurally valid returns 200 so the
// provider does not retry; only malformed payloads get a 400. Payment
// notifications fetch the authoritative record and log it.
func (h *CallbackHandler) Webhook(c *gin.Context) {
	log := middleware.LoggerFromContext(c)

	var notification webhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		BadRequest(c, "notificación inválida")
		return
	}

	if notification.Type == "payment" || strings.HasPrefix(notification.Action, "payment.") {
		paymentID := notification.Data.ID.String()
		if paymentID == "" {
			paymentID = c.Query("data.id")
		}

		payment, err := h.gateway.GetPayment(c.Request.Context(), paymentID)
		if err != nil {
			// Still acknowledged: the redirect flow is authoritative and the
			// provider would otherwise retry indefinitely.
			log.Error("fetch payment for webhook failed",
				slog.String("payment_id", paymentID),
				slog.Any("error", err),
			)
		} else {
			log.Info("payment notification",
				slog.Int64("payment_id", payment.ID),
				slog.String("status", payment.Status),
				slog.String("status_detail", payment.StatusDetail),
				slog.String("external_reference", payment.ExternalReference),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
