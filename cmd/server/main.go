package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/handler"
	"blogapi/internal/middleware"
	"blogapi/internal/repository/postgres"
	"blogapi/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token manager issues login/refresh tokens and verifies locally
	// issued access tokens
	tokenManager, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	// When a JWKS URL is configured, access tokens are verified against the
	// external identity provider instead
	var verifier auth.TokenVerifier = tokenManager
	if cfg.JWKSURL != "" {
		verifier, err = auth.NewJWKSVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
	}
	defer verifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", cfg.DBMaxConns,
		"min_conns", cfg.DBMinConns,
	)

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	articleRepo := postgres.NewArticleRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	userService := service.NewUserService(userRepo, tokenManager, auth.DefaultPasswordPolicy{}, logger)
	articleService := service.NewArticleService(articleRepo, commentRepo, txManager, logger)
	commentService := service.NewCommentService(commentRepo, articleRepo, logger)

	// Create handlers
	userHandler := handler.NewUserHandler(userService, logger)
	articleHandler := handler.NewArticleHandler(articleService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Authentication routes
	mux.HandleFunc("POST /api/token", userHandler.Token)
	mux.HandleFunc("POST /api/token/refresh", userHandler.RefreshToken)

	// User routes
	mux.HandleFunc("POST /api/register", userHandler.Register)
	mux.HandleFunc("GET /api/me", userHandler.Me)
	mux.HandleFunc("PATCH /api/me", userHandler.UpdateMe)

	// Article routes
	mux.HandleFunc("GET /api/articles", articleHandler.ListArticles)
	mux.HandleFunc("POST /api/articles", articleHandler.CreateArticle)
	mux.HandleFunc("GET /api/articles/{id}", articleHandler.GetArticle)
	mux.HandleFunc("PUT /api/articles/{id}", articleHandler.ReplaceArticle)
	mux.HandleFunc("PATCH /api/articles/{id}", articleHandler.UpdateArticle)
	mux.HandleFunc("DELETE /api/articles/{id}", articleHandler.DeleteArticle)

	// Comment routes (nested under their parent article)
	mux.HandleFunc("GET /api/articles/{id}/comments", commentHandler.ListComments)
	mux.HandleFunc("POST /api/articles/{id}/comments", commentHandler.CreateComment)
	mux.HandleFunc("PATCH /api/comments/{id}", commentHandler.UpdateComment)
	mux.HandleFunc("DELETE /api/comments/{id}", commentHandler.DeleteComment)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS -> Recovery -> Auth -> Routes
	root = middleware.Auth(verifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
