package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/cache"
	"storefront-checkout/internal/core/config"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"
	addressadapter "storefront-checkout/internal/features/addresses/adapters"
	addresshandler "storefront-checkout/internal/features/addresses/handler"
	addressservice "storefront-checkout/internal/features/addresses/service"
	cartadapter "storefront-checkout/internal/features/cart/adapters"
	carthandler "storefront-checkout/internal/features/cart/handler"
	cartservice "storefront-checkout/internal/features/cart/service"
	checkoutadapter "storefront-checkout/internal/features/checkout/adapters"
	checkouthandler "storefront-checkout/internal/features/checkout/handler"
	checkoutservice "storefront-checkout/internal/features/checkout/service"
	paymentadapter "storefront-checkout/internal/features/payment/adapters"
	paymentdomain "storefront-checkout/internal/features/payment/domain"
	paymenthandler "storefront-checkout/internal/features/payment/handler"
	"storefront-checkout/internal/features/payment/ports"
	paymentservice "storefront-checkout/internal/features/payment/service"

	"go.uber.org/zap"
)

// @title Storefront Checkout API
// @version 1.0
// @description Cart, saved addresses, multi-step checkout and payment handoff for the storefront UI.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("storefront_api", cfg.Storefront.URL),
	)

	// Redis backs checkout sessions, payment handoffs and the profile cache.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "storefront-checkout:")
	if err != nil {
		l.Fatal("Invalid Redis configuration", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		cancel()
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	cancel()
	l.Info("Redis connection verified")

	// One client for every storefront API call so they share the breaker.
	storefront := httpclient.NewClient(httpclient.Options{
		Timeout: cfg.Storefront.Timeout(),
		Breaker: &httpclient.BreakerSettings{
			Name:             "storefront-api",
			FailureThreshold: uint32(cfg.Storefront.BreakerFailureThreshold),
			OpenTimeout:      time.Duration(cfg.Storefront.BreakerOpenSeconds) * time.Second,
		},
	})

	// Auth
	profiles := auth.NewCachedProfileProvider(
		auth.NewRESTProfileProvider(storefront, cfg.Storefront.URL),
		redisCache,
		time.Duration(cfg.Checkout.ProfileCacheSeconds)*time.Second,
	)

	// Cart
	cartStore := cartservice.NewCartStore(
		cartadapter.NewRESTCartAdapter(storefront, cfg.Storefront.URL),
		cartservice.WithSnapshotTTL(time.Duration(cfg.Checkout.CartSnapshotSeconds)*time.Second),
	)
	cartHdl := carthandler.NewCartHandler(cartStore)

	// Addresses
	addressSvc := addressservice.NewAddressService(addressadapter.NewRESTAddressAdapter(storefront, cfg.Storefront.URL))
	addressHdl := addresshandler.NewAddressHandler(addressSvc)

	// Payments
	handoffSvc := paymentservice.NewHandoffService(
		paymentadapter.NewRedisHandoffRepository(redisCache, time.Duration(cfg.Checkout.HandoffTTLSeconds)*time.Second),
		map[paymentdomain.Provider]ports.Gateway{
			paymentdomain.ProviderEsewa:  paymentadapter.NewEsewaGateway(cfg.Esewa.GatewayURL, cfg.Esewa.MerchantCode, cfg.PublicBaseURL),
			paymentdomain.ProviderKhalti: paymentadapter.NewKhaltiStubGateway(cfg.PublicBaseURL),
			paymentdomain.ProviderCOD:    paymentadapter.NewCashOnDeliveryGateway(cfg.PublicBaseURL),
		},
	)
	paymentHdl := paymenthandler.NewPaymentHandler(handoffSvc)

	// Checkout
	checkoutSvc := checkoutservice.NewCheckoutService(
		checkoutadapter.NewRedisSessionRepository(redisCache, time.Duration(cfg.Checkout.SessionTTLSeconds)*time.Second),
		checkoutadapter.NewRESTOrderAdapter(storefront, cfg.Storefront.URL),
		addressSvc,
		cartStore,
		handoffSvc,
		checkoutservice.WithSubmitLock(redisCache),
	)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutSvc)

	srv := server.New(cfg)

	// Register Routes
	api := srv.App.Group("/", auth.New(profiles))
	cartHdl.Register(api)
	addressHdl.Register(api)
	paymentHdl.Register(api)
	checkoutHdl.Register(api)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down server")
	if err := srv.Shutdown(); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
