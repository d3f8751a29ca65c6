// @title        Municipal Complaint System API
// @version      1.0
// @description  Citizen complaint intake, tracking and admin triage for a municipal ward system.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nagarpalika/complaint-system/internal/api"
	"github.com/nagarpalika/complaint-system/internal/core/service"
	"github.com/nagarpalika/complaint-system/internal/infrastructure/config"
	mongodb "github.com/nagarpalika/complaint-system/internal/infrastructure/db/mongo"
	redisdb "github.com/nagarpalika/complaint-system/internal/infrastructure/db/redis"
	"github.com/nagarpalika/complaint-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments inject variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "complaint-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting mongodb")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis")
		}
	}()

	complaintRepo := mongodb.NewComplaintRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	qrRepo := mongodb.NewQRRepository(db)

	for _, ensure := range []func(context.Context) error{
		complaintRepo.EnsureIndexes,
		authRepo.EnsureIndexes,
		qrRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("creating mongodb indexes")
		}
	}

	idempotencyStore := redisdb.NewIdempotencyStore(redisClient)

	complaintService := service.NewComplaintService(complaintRepo, idempotencyStore, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.AdminRegistrationSecret, cfg.TokenTTL, log)
	qrService := service.NewQRService(qrRepo, complaintRepo, cfg.FrontendURL, log)

	e := api.NewRouter(api.Dependencies{
		ComplaintService: complaintService,
		AuthService:      authService,
		QRService:        qrService,
		MongoClient:      mongoClient,
		RedisClient:      redisClient,
		JWTSecret:        cfg.JWTSecret,
		Logger:           log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
