package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repoMocks "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	stripeClient "github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	stripeMocks "github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func strPtr(s string) *string {
	return &s
}

func TestEnsureCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Existing Customer Is Reused", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		users := repoMocks.NewUserRepository(t)
		user := &models.User{ID: uuid.New(), StripeCustomerID: strPtr("cus_existing")}

		gw := service.NewPaymentGateway(client, users, repoMocks.NewPaymentRepository(t), "usd")

		// Act
		id, err := gw.EnsureCustomer(ctx, user)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cus_existing", id)
		client.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Creates And Stores Customer", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		users := repoMocks.NewUserRepository(t)
		user := &models.User{ID: uuid.New(), Email: "buyer@example.com", Name: "Buyer"}

		client.On("CreateCustomer", mock.Anything, user.Email, user.Name, user.ID.String()).
			Return(&stripe.Customer{ID: "cus_new"}, nil).Once()
		users.On("SetStripeCustomerID", mock.Anything, user.ID, "cus_new").Return(true, nil).Once()

		gw := service.NewPaymentGateway(client, users, repoMocks.NewPaymentRepository(t), "usd")

		// Act
		id, err := gw.EnsureCustomer(ctx, user)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cus_new", id)
		require.NotNil(t, user.StripeCustomerID)
		assert.Equal(t, "cus_new", *user.StripeCustomerID)
	})

	t.Run("Success - Concurrent Mapping Wins", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		users := repoMocks.NewUserRepository(t)
		user := &models.User{ID: uuid.New(), Email: "buyer@example.com", Name: "Buyer"}

		client.On("CreateCustomer", mock.Anything, user.Email, user.Name, user.ID.String()).
			Return(&stripe.Customer{ID: "cus_late"}, nil).Once()
		users.On("SetStripeCustomerID", mock.Anything, user.ID, "cus_late").Return(false, nil).Once()
		users.On("GetUserById", mock.Anything, user.ID).
			Return(&models.User{ID: user.ID, StripeCustomerID: strPtr("cus_first")}, nil).Once()

		gw := service.NewPaymentGateway(client, users, repoMocks.NewPaymentRepository(t), "usd")

		// Act
		id, err := gw.EnsureCustomer(ctx, user)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cus_first", id)
		assert.Equal(t, "cus_first", *user.StripeCustomerID)
	})

	t.Run("Failure - Gateway Error", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		user := &models.User{ID: uuid.New()}
		client.On("CreateCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("api down")).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

		// Act
		_, err := gw.EnsureCustomer(ctx, user)

		// Assert
		requireAppError(t, err, appErrors.ErrCodeThirdPartyError)
		assert.Nil(t, user.StripeCustomerID)
	})
}

func TestAttachPaymentMethod(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		clientErr error
		wantCode  string
	}{
		{name: "Success - Attached", clientErr: nil},
		{name: "Success - Already Attached", clientErr: stripeClient.ErrPaymentMethodAlreadyAttached},
		{name: "Failure - Declined", clientErr: &stripe.Error{Msg: "Your card was declined."}, wantCode: appErrors.ErrCodePaymentFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			client := stripeMocks.NewMockClient(t)
			client.On("AttachPaymentMethod", mock.Anything, "pm_card", "cus_1").Return(tt.clientErr).Once()

			gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

			// Act
			err := gw.AttachPaymentMethod(ctx, "cus_1", "pm_card")

			// Assert
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			appErr := requireAppError(t, err, tt.wantCode)
			assert.Equal(t, "Payment failed: Your card was declined.", appErr.Message)
		})
	}
}

func TestCharge(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), StripeCustomerID: strPtr("cus_1")}

	t.Run("Success - Converts To Minor Units And Records Payment", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		payments := repoMocks.NewPaymentRepository(t)

		client.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(p stripeClient.ChargeParams) bool {
			return p.Amount == 30000 && p.Currency == "usd" && p.CustomerID == "cus_1" &&
				p.PaymentMethodID == "pm_card" && p.Metadata["user_id"] == user.ID.String()
		})).Return(&stripe.PaymentIntent{ID: "pi_1", Amount: 30000, Status: stripe.PaymentIntentStatusSucceeded}, nil).Once()
		payments.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.StripeID == "pi_1" && p.Status == models.PaymentStatusSucceeded && p.Amount.Equal(dec("300"))
		})).Return(nil).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), payments, "usd")

		// Act
		charge, err := gw.Charge(ctx, &models.ChargeRequest{User: user, PaymentMethodID: "pm_card", Amount: dec("300.00"), Description: "deposit"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "pi_1", charge.ID)
		assert.True(t, dec("300").Equal(charge.Amount))
		assert.Equal(t, "succeeded", charge.Status)
	})

	t.Run("Success - Ledger Failure Does Not Fail Charge", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		payments := repoMocks.NewPaymentRepository(t)

		client.On("CreatePaymentIntent", mock.Anything, mock.Anything).
			Return(&stripe.PaymentIntent{ID: "pi_2", Amount: 1050, Status: stripe.PaymentIntentStatusSucceeded}, nil).Once()
		payments.On("CreatePayment", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), payments, "usd")

		// Act
		charge, err := gw.Charge(ctx, &models.ChargeRequest{User: user, PaymentMethodID: "pm_card", Amount: dec("10.50")})

		// Assert
		require.NoError(t, err)
		assert.True(t, dec("10.50").Equal(charge.Amount))
	})

	t.Run("Failure - Intent Not Succeeded", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		payments := repoMocks.NewPaymentRepository(t)

		client.On("CreatePaymentIntent", mock.Anything, mock.Anything).
			Return(&stripe.PaymentIntent{ID: "pi_3", Amount: 500, Status: stripe.PaymentIntentStatusRequiresPaymentMethod}, nil).Once()
		payments.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.PaymentStatusFailed
		})).Return(nil).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), payments, "usd")

		// Act
		charge, err := gw.Charge(ctx, &models.ChargeRequest{User: user, PaymentMethodID: "pm_card", Amount: dec("5")})

		// Assert
		assert.Nil(t, charge)
		appErr := requireAppError(t, err, appErrors.ErrCodePaymentFailed)
		assert.Contains(t, appErr.Message, "requires_payment_method")
	})

	t.Run("Failure - Gateway Error", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		client.On("CreatePaymentIntent", mock.Anything, mock.Anything).
			Return(nil, &stripe.Error{Msg: "Your card has insufficient funds."}).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

		// Act
		charge, err := gw.Charge(ctx, &models.ChargeRequest{User: user, PaymentMethodID: "pm_card", Amount: dec("5")})

		// Assert
		assert.Nil(t, charge)
		appErr := requireAppError(t, err, appErrors.ErrCodePaymentFailed)
		assert.Equal(t, "Payment failed: Your card has insufficient funds.", appErr.Message)
	})

	t.Run("Failure - Zero Amount", func(t *testing.T) {
		// Arrange
		gw := service.NewPaymentGateway(stripeMocks.NewMockClient(t), repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

		// Act
		_, err := gw.Charge(ctx, &models.ChargeRequest{User: user, Amount: dec("0.001")})

		// Assert
		requireAppError(t, err, appErrors.ErrCodePrecondition)
	})

	t.Run("Failure - Customer Not Set Up", func(t *testing.T) {
		// Arrange
		gw := service.NewPaymentGateway(stripeMocks.NewMockClient(t), repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

		// Act
		_, err := gw.Charge(ctx, &models.ChargeRequest{User: &models.User{ID: uuid.New()}, Amount: dec("5")})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeInternal)
	})
}

func TestRefund(t *testing.T) {
	ctx := context.Background()
	charge := &models.Charge{ID: "pi_1", Amount: dec("10"), Status: "succeeded"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		payments := repoMocks.NewPaymentRepository(t)
		client.On("RefundPayment", mock.Anything, "pi_1", int64(0)).Return(&stripe.Refund{ID: "re_1"}, nil).Once()
		payments.On("UpdatePaymentStatus", mock.Anything, "pi_1", models.PaymentStatusRefunded).Return(nil).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), payments, "usd")

		// Act
		err := gw.Refund(ctx, charge)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Gateway Error", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		client.On("RefundPayment", mock.Anything, "pi_1", int64(0)).Return(nil, errors.New("api down")).Once()

		gw := service.NewPaymentGateway(client, repoMocks.NewUserRepository(t), repoMocks.NewPaymentRepository(t), "usd")

		// Act
		err := gw.Refund(ctx, charge)

		// Assert
		requireAppError(t, err, appErrors.ErrCodeThirdPartyError)
	})
}
