package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type LayawayHandler struct {
	layawayService service.LayawayService
	validator      *validator.Validate
}

func NewLayawayHandler(layawayService service.LayawayService) *LayawayHandler {
	return &LayawayHandler{layawayService: layawayService, validator: validator.New()}
}

// CreateLayaway godoc
//
//	@Summary		Open a layaway
//	@Description	Charges the deposit percentage of the product total and holds the stock until the balance is paid.
//	@Tags			Layaways
//	@Accept			json
//	@Produce		json
//	@Param			layaway	body		models.CreateLayawayRequest	true	"Product, quantity, deposit percentage and payment method"
//	@Success		201		{object}	models.LayawayPaymentResult
//	@Failure		402		{object}	response.ErrorResponse	"Deposit charge failed"
//	@Failure		422		{object}	response.ErrorResponse	"Deposit percentage out of range"
//	@Security		BearerAuth
//	@Router			/layaways [post]
func (h *LayawayHandler) CreateLayaway() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CreateLayawayRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid layaway input")
			return
		}

		result, err := h.layawayService.CreateLayaway(r.Context(), principal.UserID, &req)
		if err != nil {
			logger.Error("Failed to create layaway", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Layaway created", slog.String("layawayId", result.Layaway.ID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}

// Pay godoc
//
//	@Summary		Pay toward a layaway
//	@Description	The amount may not exceed the outstanding balance. Paying the full balance settles the layaway.
//	@Tags			Layaways
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Layaway ID"	Format(uuid)
//	@Param			payment	body		models.LayawayPaymentRequest	true	"Amount and payment method"
//	@Success		200		{object}	models.LayawayPaymentResult
//	@Failure		409		{object}	response.ErrorResponse	"Already settled or amount above balance"
//	@Security		BearerAuth
//	@Router			/layaways/{id}/payments [post]
func (h *LayawayHandler) Pay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		layawayID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.LayawayPaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid layaway payment input")
			return
		}

		result, err := h.layawayService.Pay(r.Context(), principal.UserID, layawayID, &req)
		if err != nil {
			logger.Error("Layaway payment failed", slog.String("layawayId", layawayID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Layaway payment applied",
			slog.String("layawayId", layawayID.String()),
			slog.String("status", string(result.Layaway.Status)))
		response.Success(w, http.StatusOK, result)
	}
}

func (h *LayawayHandler) MarkPickedUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		layawayID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		layaway, err := h.layawayService.MarkPickedUp(r.Context(), principal, layawayID)
		if err != nil {
			logger.Error("Failed to mark layaway picked up", slog.String("layawayId", layawayID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Layaway picked up", slog.String("layawayId", layawayID.String()))
		response.Success(w, http.StatusOK, layaway)
	}
}

// ListLayaways godoc
//
//	@Summary	List the caller's layaways
//	@Tags		Layaways
//	@Produce	json
//	@Param		status	query		string	false	"reserved, settled or picked_up"
//	@Success	200		{array}		models.Layaway
//	@Security	BearerAuth
//	@Router		/layaways [get]
func (h *LayawayHandler) ListLayaways() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		status := r.URL.Query().Get("status")

		layaways, err := h.layawayService.ListLayaways(r.Context(), principal.UserID, status)
		if err != nil {
			logger.Error("Failed to list layaways", slog.String("status", status), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, layaways)
	}
}

func (h *LayawayHandler) GetLayaway() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		layawayID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		layaway, err := h.layawayService.GetLayaway(r.Context(), principal.UserID, layawayID)
		if err != nil {
			logger.Warn("Failed to get layaway", slog.String("layawayId", layawayID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, layaway)
	}
}
