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

type ReservationHandler struct {
	reservationService service.ReservationService
	validator          *validator.Validate
}

func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService, validator: validator.New()}
}

// ReserveCart godoc
//
//	@Summary		Reserve the whole cart for in-store pickup
//	@Description	Holds the stock of every cart line without charging. Reservations expire after the configured window.
//	@Tags			Reservations
//	@Produce		json
//	@Success		201	{array}		models.Reservation
//	@Failure		409	{object}	response.ErrorResponse	"Insufficient stock"
//	@Failure		422	{object}	response.ErrorResponse	"Empty cart"
//	@Security		BearerAuth
//	@Router			/reservations [post]
func (h *ReservationHandler) ReserveCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		reservations, err := h.reservationService.ReserveCart(r.Context(), principal.UserID)
		if err != nil {
			logger.Error("Failed to reserve cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart reserved", slog.Int("reservations", len(reservations)))
		response.Success(w, http.StatusCreated, reservations)
	}
}

func (h *ReservationHandler) ReserveStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		storeID, err := utils.ParseUUIDPathValue(r, "storeId")
		if err != nil {
			response.Error(w, err)
			return
		}

		reservations, err := h.reservationService.ReserveStore(r.Context(), principal.UserID, storeID)
		if err != nil {
			logger.Error("Failed to reserve store items", slog.String("storeId", storeID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Store items reserved", slog.String("storeId", storeID.String()), slog.Int("reservations", len(reservations)))
		response.Success(w, http.StatusCreated, reservations)
	}
}

func (h *ReservationHandler) ReserveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.ReserveProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reservation input")
			return
		}

		reservations, err := h.reservationService.ReserveProduct(r.Context(), principal.UserID, &req)
		if err != nil {
			logger.Error("Failed to reserve product", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product reserved", slog.String("productId", req.ProductID.String()))
		response.Success(w, http.StatusCreated, reservations)
	}
}

// MarkPickedUp godoc
//
//	@Summary		Pick up a reservation
//	@Description	A reservation past its window is marked expired and the pickup is refused.
//	@Tags			Reservations
//	@Produce		json
//	@Param			id	path		string	true	"Reservation ID"	Format(uuid)
//	@Success		200	{object}	models.Reservation
//	@Failure		410	{object}	response.ErrorResponse	"Reservation expired"
//	@Security		BearerAuth
//	@Router			/reservations/{id}/pickup [patch]
func (h *ReservationHandler) MarkPickedUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		reservationID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reservation, err := h.reservationService.MarkPickedUp(r.Context(), principal, reservationID)
		if err != nil {
			logger.Warn("Reservation pickup refused", slog.String("reservationId", reservationID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Reservation picked up", slog.String("reservationId", reservationID.String()))
		response.Success(w, http.StatusOK, reservation)
	}
}

func (h *ReservationHandler) ListReservations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		status := r.URL.Query().Get("status")

		reservations, err := h.reservationService.ListReservations(r.Context(), principal.UserID, status)
		if err != nil {
			logger.Error("Failed to list reservations", slog.String("status", status), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reservations)
	}
}

func (h *ReservationHandler) GetReservation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		reservationID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		reservation, err := h.reservationService.GetReservation(r.Context(), principal.UserID, reservationID)
		if err != nil {
			logger.Warn("Failed to get reservation", slog.String("reservationId", reservationID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reservation)
	}
}
