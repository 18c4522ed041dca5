package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/morph-studio/storefront-api/internal/admin"
	"github.com/morph-studio/storefront-api/internal/cart"
	"github.com/morph-studio/storefront-api/internal/catalog"
	"github.com/morph-studio/storefront-api/internal/catalog/snapshot"
	"github.com/morph-studio/storefront-api/internal/checkout"
	"github.com/morph-studio/storefront-api/internal/config"
	"github.com/morph-studio/storefront-api/internal/handlers"
	"github.com/morph-studio/storefront-api/internal/middleware"
	"github.com/morph-studio/storefront-api/internal/payment"
	"github.com/morph-studio/storefront-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"store_backend", cfg.Store.Backend,
	)

	// Initialize snapshot persistence
	snap, err := newSnapshotStore(cfg.Store)
	if err != nil {
		log.Error("failed to initialize snapshot store", "error", err)
		os.Exit(1)
	}

	// Load the catalog once at start; missing or corrupt snapshots fall
	// back to the seed catalog
	catalogStore := catalog.NewStore(snap, log)
	catalogStore.Load(context.Background())

	// Session-scoped carts, never persisted
	sessions := cart.NewSessions()

	// Initialize services
	adminService := admin.NewService(catalogStore, cfg.Admin, log)
	gateway := payment.NewClient(cfg.Payment.GatewayURL, cfg.Payment.KeyID, cfg.Payment.KeySecret, log)
	orchestrator := checkout.NewOrchestrator(sessions, gateway, cfg.Payment, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(catalogStore, log)
	cartHandler := handlers.NewCartHandler(sessions, catalogStore, log)
	deliveryHandler := handlers.NewDeliveryHandler(log)
	adminHandler := handlers.NewAdminHandler(adminService, log)
	checkoutHandler := handlers.NewCheckoutHandler(orchestrator, sessions, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", handlers.SessionHeader, middleware.AdminKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/category", productHandler.ListCategories)

		// Delivery estimate
		r.Get("/delivery/{pincode}", deliveryHandler.Estimate)

		// Cart endpoints
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Delete("/cart/items/{position}", cartHandler.RemoveItem)
		r.Delete("/cart", cartHandler.ClearCart)

		// Checkout endpoints
		r.Put("/checkout/draft", checkoutHandler.UpdateDraft)
		r.Post("/checkout", checkoutHandler.Begin)
		r.Post("/checkout/confirm", checkoutHandler.Confirm)
		r.Post("/checkout/dismiss", checkoutHandler.Dismiss)

		// Admin endpoints
		r.Post("/admin/login", adminHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.Admin))
			r.Post("/admin/product", adminHandler.CreateProduct)
			r.Post("/admin/product/{productId}/stock", adminHandler.ToggleStock)
			r.Delete("/admin/product/{productId}", adminHandler.DeleteProduct)
			r.Post("/admin/category", adminHandler.CreateCategory)
			r.Delete("/admin/category/{name}", adminHandler.DeleteCategory)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newSnapshotStore selects the persistence backend from config
func newSnapshotStore(cfg config.StoreConfig) (snapshot.Store, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		return snapshot.NewRedisStore(client), nil
	default:
		return snapshot.NewFileStore(cfg.FilePath)
	}
}
