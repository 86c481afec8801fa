package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/packwise/api/internal/config"
	"github.com/packwise/api/internal/database"
	"github.com/packwise/api/internal/handler"
	"github.com/packwise/api/internal/middleware"
	"github.com/packwise/api/internal/repository"
	"github.com/packwise/api/internal/service"
	"github.com/packwise/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	conditionRepo := repository.NewConditionRepository(db)
	itemRepo := repository.NewItemRepository(db)
	listRepo := repository.NewPackingListRepository(db)
	listItemRepo := repository.NewPackingListItemRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)

	categoryService := service.NewCategoryService(categoryRepo)
	conditionService := service.NewConditionService(conditionRepo)

	itemService := service.NewItemService(service.ItemServiceConfig{
		ItemRepo:      itemRepo,
		CategoryRepo:  categoryRepo,
		ConditionRepo: conditionRepo,
	})

	packingListService := service.NewPackingListService(service.PackingListServiceConfig{
		ListRepo:  listRepo,
		EntryRepo: listItemRepo,
		Resolver:  itemService,
	})

	suggestionService := service.NewSuggestionService(service.SuggestionServiceConfig{
		ItemRepo:      itemRepo,
		ConditionRepo: conditionRepo,
		Favorites:     listItemRepo,
	})

	currencyService := service.NewCurrencyService(service.CurrencyServiceConfig{
		BaseURL: cfg.Currency.BaseURL,
		APIKey:  cfg.Currency.APIKey,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100, // 100 requests per minute
		Window: time.Minute,
		Burst:  20, // Allow bursts up to 20
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	conditionHandler := handler.NewConditionHandler(conditionService)
	itemHandler := handler.NewItemHandler(itemService, suggestionService)
	packingListHandler := handler.NewPackingListHandler(packingListService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(jwtService)
	optionalAuthMiddleware := middleware.OptionalAuth(jwtService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Category endpoints
	mux.HandleFunc("GET /v1/categories", categoryHandler.List)
	mux.Handle("POST /v1/categories", authMiddleware(http.HandlerFunc(categoryHandler.Create)))
	mux.HandleFunc("GET /v1/categories/{id}", categoryHandler.Get)
	mux.Handle("PUT /v1/categories/{id}", authMiddleware(http.HandlerFunc(categoryHandler.Update)))
	mux.Handle("DELETE /v1/categories/{id}", authMiddleware(http.HandlerFunc(categoryHandler.Delete)))

	// Condition endpoints
	mux.HandleFunc("GET /v1/conditions", conditionHandler.List)
	mux.Handle("POST /v1/conditions", authMiddleware(http.HandlerFunc(conditionHandler.Create)))
	mux.HandleFunc("GET /v1/conditions/{id}", conditionHandler.Get)
	mux.Handle("PUT /v1/conditions/{id}", authMiddleware(http.HandlerFunc(conditionHandler.Update)))
	mux.Handle("DELETE /v1/conditions/{id}", authMiddleware(http.HandlerFunc(conditionHandler.Delete)))

	// Item catalog endpoints
	mux.HandleFunc("GET /v1/items", itemHandler.List)
	mux.Handle("POST /v1/items", authMiddleware(http.HandlerFunc(itemHandler.Create)))
	mux.HandleFunc("GET /v1/items/{id}", itemHandler.Get)
	mux.Handle("PUT /v1/items/{id}", authMiddleware(http.HandlerFunc(itemHandler.Update)))
	mux.Handle("DELETE /v1/items/{id}", authMiddleware(http.HandlerFunc(itemHandler.Delete)))

	// Suggestion endpoint - anonymous callers get suggestions without favorites
	mux.Handle("GET /v1/items/conditions/{condition}", optionalAuthMiddleware(http.HandlerFunc(itemHandler.Suggestions)))

	// Packing list endpoints
	mux.Handle("GET /v1/packing-lists", authMiddleware(http.HandlerFunc(packingListHandler.List)))
	mux.Handle("POST /v1/packing-lists", authMiddleware(http.HandlerFunc(packingListHandler.Create)))
	mux.Handle("GET /v1/packing-lists/{id}", authMiddleware(http.HandlerFunc(packingListHandler.Get)))
	mux.Handle("PATCH /v1/packing-lists/{id}", authMiddleware(http.HandlerFunc(packingListHandler.Update)))
	mux.Handle("DELETE /v1/packing-lists/{id}", authMiddleware(http.HandlerFunc(packingListHandler.Delete)))

	// Packing list item endpoints
	mux.Handle("GET /v1/packing-lists/{id}/items", authMiddleware(http.HandlerFunc(packingListHandler.GetItems)))
	mux.Handle("POST /v1/packing-lists/{id}/items", authMiddleware(http.HandlerFunc(packingListHandler.AddItems)))
	mux.Handle("PUT /v1/packing-lists/{id}/items", authMiddleware(http.HandlerFunc(packingListHandler.ReplaceItems)))
	mux.Handle("PATCH /v1/packing-lists/{id}/items/{entryId}", authMiddleware(http.HandlerFunc(packingListHandler.UpdateItem)))
	mux.Handle("DELETE /v1/packing-lists/{id}/items/{entryId}", authMiddleware(http.HandlerFunc(packingListHandler.DeleteItem)))

	// Currency conversion endpoint
	mux.HandleFunc("GET /v1/currency/convert", currencyHandler.Convert)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
