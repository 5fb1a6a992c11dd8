package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bernardoaires/ping-pong/internal/handlers"
	"github.com/bernardoaires/ping-pong/internal/metrics"
	"github.com/bernardoaires/ping-pong/internal/repositories"
	mongostore "github.com/bernardoaires/ping-pong/internal/repositories/mongo"
	"github.com/bernardoaires/ping-pong/internal/routers"
	"github.com/bernardoaires/ping-pong/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logger.Fatal("MONGO_URI is not set")
	}
	dbName := envOr("PINGPONG_DB_NAME", "PingPong")
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")

	ctx := context.Background()

	client, err := mongostore.NewClient(ctx, mongoURI)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(dbName)

	playerRepo := repositories.NewPlayerRepository(db)
	if err := playerRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create player indexes", zap.Error(err))
	}
	matchRepo := repositories.NewMatchRepository(db)

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()
	sessions := repositories.NewSessionRegistry(rdb)

	authService := services.NewAuthService(playerRepo, sessions, jwtSecret)
	matchService := services.NewMatchService(playerRepo, matchRepo)
	rankingService := services.NewRankingService(playerRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	matchHandler := handlers.NewMatchHandler(matchService, matchRepo, logger)
	playerHandler := handlers.NewPlayerHandler(playerRepo, logger)
	rankingHandler := handlers.NewRankingHandler(rankingService, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(envOr("CORS_ORIGIN", "*"), ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(metrics.Middleware("ladder"))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := client.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("store unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	routers.AuthRoutes(router, authHandler)
	routers.MatchRoutes(router, authHandler, matchHandler)
	routers.PlayerRoutes(router, playerHandler)
	routers.RankingRoutes(router, rankingHandler)

	serverAddr := ":" + envOr("PORT", "8000")
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Ladder service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Ladder service shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Ladder service exited")
}
