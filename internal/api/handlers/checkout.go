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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// CheckoutCart godoc
//
//	@Summary		Pay for the whole cart
//	@Description	Charges every store in the cart separately. Stores charged before a failure stay charged and are listed in the error details.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout		body		models.CheckoutRequest	true	"Payment method"
//	@Param			Idempotency-Key	header		string					false	"Replays the first response for a repeated key"
//	@Success		201				{object}	models.CheckoutResult	"One result per store"
//	@Failure		402				{object}	response.ErrorResponse	"Payment failed"
//	@Failure		409				{object}	response.ErrorResponse	"Insufficient stock"
//	@Failure		422				{object}	response.ErrorResponse	"Empty cart"
//	@Failure		429				{object}	response.ErrorResponse	"Too many checkout attempts"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) CheckoutCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.CheckoutCart(r.Context(), principal.UserID, &req)
		if err != nil {
			logger.Error("Cart checkout failed", slog.Int("storesCharged", storesCharged(result)), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart checked out", slog.Int("stores", len(result.Results)))
		response.Success(w, http.StatusCreated, result)
	}
}

// CheckoutStore godoc
//
//	@Summary		Pay for one store of the cart
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			storeId		path		string					true	"Store ID"	Format(uuid)
//	@Param			checkout	body		models.CheckoutRequest	true	"Payment method"
//	@Success		201			{object}	models.CheckoutResult
//	@Failure		404			{object}	response.ErrorResponse	"No cart items for this store"
//	@Security		BearerAuth
//	@Router			/checkout/stores/{storeId} [post]
func (h *CheckoutHandler) CheckoutStore() http.HandlerFunc {
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

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.CheckoutStore(r.Context(), principal.UserID, storeID, &req)
		if err != nil {
			logger.Error("Store checkout failed", slog.String("storeId", storeID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Store checked out", slog.String("storeId", storeID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}

// PurchaseProduct godoc
//
//	@Summary		Buy one product directly
//	@Description	Full-payment purchase of a single product without going through the cart.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			purchase	body		models.PurchaseProductRequest	true	"Product, quantity and payment method"
//	@Success		201			{object}	models.CheckoutResult
//	@Security		BearerAuth
//	@Router			/purchases [post]
func (h *CheckoutHandler) PurchaseProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.PurchaseProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid purchase input")
			return
		}

		result, err := h.checkoutService.PurchaseProduct(r.Context(), principal.UserID, &req)
		if err != nil {
			logger.Error("Product purchase failed", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product purchased", slog.String("productId", req.ProductID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}

// MarkPurchasePickedUp godoc
//
//	@Summary		Confirm pickup of a prepaid purchase
//	@Description	Store staff of the owning store, or a superadmin, marks the purchase as picked up.
//	@Tags			Checkout
//	@Produce		json
//	@Param			id	path		string	true	"Purchase ID"	Format(uuid)
//	@Success		200	{object}	models.PurchaseFull
//	@Failure		403	{object}	response.ErrorResponse	"Not the store's staff"
//	@Failure		409	{object}	response.ErrorResponse	"Already picked up"
//	@Security		BearerAuth
//	@Router			/purchases/{id}/pickup [patch]
func (h *CheckoutHandler) MarkPurchasePickedUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		principal, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		purchaseID, err := utils.ParseUUIDPathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		purchase, err := h.checkoutService.MarkPurchasePickedUp(r.Context(), principal, purchaseID)
		if err != nil {
			logger.Error("Failed to mark purchase picked up", slog.String("purchaseId", purchaseID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Purchase picked up", slog.String("purchaseId", purchaseID.String()))
		response.Success(w, http.StatusOK, purchase)
	}
}

func storesCharged(result *models.CheckoutResult) int {
	if result == nil {
		return 0
	}

	return len(result.Results)
}
