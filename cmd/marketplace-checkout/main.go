package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/marketplace-checkout/docs"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/handlers"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/cache"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/health"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/metrics"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/telemetry"
	"github.com/aaravmahajanofficial/marketplace-checkout/pkg/sendgrid"
	"github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title						Marketplace Checkout API
// @version					1.0
// @description				Cart, checkout, layaway and in-store pickup reservations for a multi-store marketplace.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracer(ctx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	cartCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	idempotencyRepo := repository.NewIdempotencyRepo(redisClient, cfg)

	// External clients
	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Services
	notificationService := service.NewNotificationService(repos.Notification, sendGridClient)
	gateway := service.NewPaymentGateway(stripeClient, repos.User, repos.Payment, cfg.Stripe.Currency)
	cartService := service.NewCartService(repos.Cart, repos.Product, cartCache)
	checkoutService := service.NewCheckoutService(repos, repos, gateway, cartService, notificationService, nil)
	layawayService := service.NewLayawayService(repos, repos, gateway, notificationService, nil)
	reservationService := service.NewReservationService(repos, repos, cartService, notificationService, cfg.Checkout.ReservationWindow, nil)
	historyService := service.NewHistoryService(repos.Purchase, repos.Layaway, repos.Reservation, nil)
	paymentService := service.NewPaymentService(repos.Payment, stripeClient)

	// Handlers
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	layawayHandler := handlers.NewLayawayHandler(layawayService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	rateLimit := middleware.PaymentRateLimit(rateLimitRepo)
	idempotent := middleware.Idempotent(idempotencyRepo)

	auth := authMiddleware.Authenticate

	// charging routes: authenticated, rate limited, replayable by Idempotency-Key
	charging := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(rateLimit(idempotent(h)))
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api/v1/cart", auth(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", auth(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", auth(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", auth(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", auth(cartHandler.ClearCart()))

	routerMux.HandleFunc("POST /api/v1/checkout", charging(checkoutHandler.CheckoutCart()))
	routerMux.HandleFunc("POST /api/v1/checkout/stores/{storeId}", charging(checkoutHandler.CheckoutStore()))
	routerMux.HandleFunc("POST /api/v1/purchases", charging(checkoutHandler.PurchaseProduct()))
	routerMux.HandleFunc("PATCH /api/v1/purchases/{id}/pickup", auth(checkoutHandler.MarkPurchasePickedUp()))

	routerMux.HandleFunc("POST /api/v1/layaways", charging(layawayHandler.CreateLayaway()))
	routerMux.HandleFunc("POST /api/v1/layaways/{id}/payments", charging(layawayHandler.Pay()))
	routerMux.HandleFunc("PATCH /api/v1/layaways/{id}/pickup", auth(layawayHandler.MarkPickedUp()))
	routerMux.HandleFunc("GET /api/v1/layaways", auth(layawayHandler.ListLayaways()))
	routerMux.HandleFunc("GET /api/v1/layaways/{id}", auth(layawayHandler.GetLayaway()))

	routerMux.HandleFunc("POST /api/v1/reservations", auth(reservationHandler.ReserveCart()))
	routerMux.HandleFunc("POST /api/v1/reservations/stores/{storeId}", auth(reservationHandler.ReserveStore()))
	routerMux.HandleFunc("POST /api/v1/reservations/products", auth(reservationHandler.ReserveProduct()))
	routerMux.HandleFunc("PATCH /api/v1/reservations/{id}/pickup", auth(reservationHandler.MarkPickedUp()))
	routerMux.HandleFunc("GET /api/v1/reservations", auth(reservationHandler.ListReservations()))
	routerMux.HandleFunc("GET /api/v1/reservations/{id}", auth(reservationHandler.GetReservation()))

	routerMux.HandleFunc("GET /api/v1/history", auth(historyHandler.ListHistory()))
	routerMux.HandleFunc("GET /api/v1/history/{kind}/{id}", auth(historyHandler.GetEntry()))

	routerMux.HandleFunc("GET /api/v1/payments", auth(paymentHandler.ListPayments()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
