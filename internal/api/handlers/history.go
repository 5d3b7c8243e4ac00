package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils/response"
)

type HistoryHandler struct {
	historyService service.HistoryService
}

func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistory godoc
//
//	@Summary		Purchase history
//	@Description	Full purchases, layaways and pickup reservations of the caller, newest first.
//	@Tags			History
//	@Produce		json
//	@Param			status	query		string	false	"pending, picked_up, reserved, settled or expired"
//	@Success		200		{array}		models.HistoryEntry
//	@Failure		400		{object}	response.ErrorResponse	"Invalid status filter"
//	@Security		BearerAuth
//	@Router			/history [get]
func (h *HistoryHandler) ListHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		status := r.URL.Query().Get("status")

		entries, err := h.historyService.ListHistory(r.Context(), principal.UserID, status)
		if err != nil {
			logger.Error("Failed to list purchase history", slog.String("status", status), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entries)
	}
}

func (h *HistoryHandler) GetEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		kind := models.PurchaseKind(r.PathValue("kind"))
		if !kind.Valid() {
			response.Error(w, errors.BadRequestError("Unknown purchase kind"))
			return
		}

		id, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		entry, err := h.historyService.GetEntry(r.Context(), principal.UserID, kind, id)
		if err != nil {
			logger.Warn("Failed to get purchase", slog.String("kind", string(kind)), slog.String("id", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entry)
	}
}
