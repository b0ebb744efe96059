package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/coupon"
	httpserver "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/payment"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront-service] ", log.LstdFlags|log.Lshortfile)

	for _, p := range []string{cfg.CartSlotPath, cfg.TokenSlotPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				logger.Fatalf("create slot dir %s: %v", dir, err)
			}
		}
	}

	cartStore := store.NewFileStore(cfg.CartSlotPath, logger)
	tokenStore := store.NewTokenStore(cfg.TokenSlotPath, logger)

	validator := coupon.NewValidator(coupon.DemoCodes(), cfg.CouponDelay)
	defaults := cart.Defaults{
		Size:     cfg.DefaultSize,
		Color:    cfg.DefaultColor,
		Category: cfg.DefaultCategory,
	}

	cartSvc := cart.NewService(cartStore, validator, defaults, logger)
	cartSvc.Dispatch(cart.Initialize{})

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	api := clients.NewClient(cfg.CommerceAPIURL, httpClient, tokenStore)

	simulator := payment.NewSimulator(cfg.PaymentDelay)

	mux := httpserver.NewRouter(
		logger,
		cfg.CORSAllowOrigins,
		httpserver.NewCartHandler(cartSvc),
		httpserver.NewCatalogHandler(clients.NewProductsClient(api), clients.NewReviewsClient(api)),
		httpserver.NewAuthHandler(clients.NewAuthClient(api), tokenStore),
		httpserver.NewAdminHandler(clients.NewOrdersClient(api)),
		httpserver.NewCheckoutHandler(cartSvc, simulator),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
