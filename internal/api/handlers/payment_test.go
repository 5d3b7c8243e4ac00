package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/services/mocks"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

func TestListPayments(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Pagination", func(t *testing.T) {
		// Arrange
		paymentService := mocks.NewPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		payments := []*models.Payment{{ID: uuid.New(), UserID: userID, Amount: decimal.RequireFromString("30.00")}}
		paymentService.On("ListPayments", mock.Anything, userID, 2, 5).Return(payments, 6, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/payments?page=2&size=5", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.ListPayments().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.PaginatedResponse
		decodeData(t, rr, &got)
		assert.Equal(t, 6, got.Total)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 5, got.PageSize)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		paymentService := mocks.NewPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/payments", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.ListPayments().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		paymentService.AssertNotCalled(t, "ListPayments")
	})
}

func TestHandleStripeWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		paymentService := mocks.NewPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		paymentService.On("ProcessWebhook", mock.Anything, payload, "t=1,v1=abc").
			Return(stripe.Event{ID: "evt_1", Type: "payment_intent.succeeded"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		req.Header.Set("Stripe-Signature", "t=1,v1=abc")
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})

	t.Run("Failure - Missing Signature", func(t *testing.T) {
		// Arrange
		paymentService := mocks.NewPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Stripe Signature is required")
		paymentService.AssertNotCalled(t, "ProcessWebhook")
	})

	t.Run("Failure - Invalid Signature", func(t *testing.T) {
		// Arrange
		paymentService := mocks.NewPaymentService(t)
		paymentHandler := handlers.NewPaymentHandler(paymentService)

		paymentService.On("ProcessWebhook", mock.Anything, payload, "bad").
			Return(stripe.Event{}, appErrors.BadRequestError("Invalid webhook signature")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(payload), nil)
		req.Header.Set("Stripe-Signature", "bad")
		rr := httptest.NewRecorder()

		// Act
		paymentHandler.HandleStripeWebhook().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeBadRequest)
	})
}
