package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
)

// maxWebhookBytes bounds the webhook body read.
const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListPayments godoc
//
//	@Summary	List the caller's charges
//	@Tags		Payments
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		size	query		int	false	"Page size"
//	@Success	200		{object}	models.PaginatedResponse
//	@Security	BearerAuth
//	@Router		/payments [get]
func (h *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		page, size := utils.ParsePagination(r)

		payments, total, err := h.paymentService.ListPayments(r.Context(), principal.UserID, page, size)
		if err != nil {
			logger.Error("Failed to list payments", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     payments,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

// HandleStripeWebhook godoc
//
//	@Summary		Payment processor webhook
//	@Description	Keeps the local payments ledger in step with charge outcomes and refunds.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Webhook signature"
//	@Success		200					{object}	map[string]bool
//	@Failure		400					{object}	response.ErrorResponse	"Invalid signature or payload"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.Any("error", err))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook",
				slog.String("eventId", event.ID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Payment webhook processed", slog.String("eventId", event.ID), slog.String("type", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]bool{"success": true})
	}
}
