package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomatino/tomatino-api/internal/config"
	"github.com/tomatino/tomatino-api/internal/handler"
	"github.com/tomatino/tomatino-api/internal/middleware"
	"github.com/tomatino/tomatino-api/internal/repository"
	"github.com/tomatino/tomatino-api/internal/service"
	"github.com/tomatino/tomatino-api/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.Default()

	ctx := context.Background()
	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to document store", "db", cfg.MongoDB)
	db := client.Database(cfg.MongoDB)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(issuer)

	foodRepo := repository.NewFoodRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	foodHandler := handler.NewFoodHandler(
		service.NewCatalogService(foodRepo),
		service.NewLeaderboardService(purchaseRepo),
	)
	purchaseHandler := handler.NewPurchaseHandler(service.NewPurchaseService(purchaseRepo))

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("tomatino restaurant is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.LoginRPS > 0 {
			r.Use(middleware.RateLimit(cfg.LoginRPS, cfg.LoginBurst))
		}
		r.Post("/jwt", authHandler.HandleIssueToken)
	})
	r.Post("/logout", authHandler.HandleLogout)

	r.Get("/allfoods", foodHandler.HandleList)
	r.Post("/allfoods", foodHandler.HandleCreate)
	r.Get("/food/{id}", foodHandler.HandleGet)
	r.Put("/food/{id}", foodHandler.HandleReplace)
	r.Delete("/food/{id}", foodHandler.HandleDelete)
	r.Patch("/allfoods/{id}", foodHandler.HandleMerge)
	r.Get("/topfoods", foodHandler.HandleTopFoods)

	r.With(middleware.RequireSession(issuer)).Get("/purchasedFood", purchaseHandler.HandleList)
	r.Post("/purchasedFood", purchaseHandler.HandleCreate)
	r.Delete("/purchasedFood/{id}", purchaseHandler.HandleDelete)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		slog.Error("database disconnect failed", "error", err)
	}

	slog.Info("server stopped")
}
