package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/vedran77/devtree/internal/config"
	"github.com/vedran77/devtree/internal/database"
	"github.com/vedran77/devtree/internal/logger"
	postgresrepo "github.com/vedran77/devtree/internal/repository/postgres"
	"github.com/vedran77/devtree/internal/service"
	storage "github.com/vedran77/devtree/internal/storage/minio"
	"github.com/vedran77/devtree/internal/token"
	"github.com/vedran77/devtree/internal/transport/http/handlers"
	"github.com/vedran77/devtree/internal/transport/http/middleware"
	"github.com/vedran77/devtree/internal/transport/http/router"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	// Database
	pool, err := database.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	// Image storage
	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatal("failed to create minio client", "error", err)
	}

	scheme := "http"
	if cfg.Storage.UseSSL {
		scheme = "https"
	}
	images, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, fmt.Sprintf("%s://%s", scheme, cfg.Storage.Endpoint))
	if err != nil {
		log.Fatal("failed to initialize image storage", "error", err)
	}

	// Repositories and services
	userRepo := postgresrepo.NewUserRepo(pool)
	tokens := token.NewJWT(cfg.JWT.Secret)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, images)

	// Handlers and middleware
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	authGate := middleware.Auth(tokens, userService)

	mux := router.New(authHandler, userHandler, authGate)

	addr := ":" + cfg.ServerPort
	log.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, middleware.CORS(cfg.FrontendURL)(mux)); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
