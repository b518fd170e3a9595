// Command hrserver runs the HR system API.
//
// @title        HR System API
// @version      1.0
// @description  Admin console and employee self-service API for the HR system.
// @BasePath     /api
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

	"github.com/peopleops/hr-system/internal/api"
	"github.com/peopleops/hr-system/internal/core/service"
	"github.com/peopleops/hr-system/internal/infrastructure/config"
	mongodb "github.com/peopleops/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peopleops/hr-system/internal/infrastructure/db/redis"
	"github.com/peopleops/hr-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	for name, ensure := range map[string]func(context.Context) error{
		"users":          users.EnsureIndexes,
		"employees":      mongodb.NewEmployeeRepository(db).EnsureIndexes,
		"attendance":     mongodb.NewAttendanceRepository(db).EnsureIndexes,
		"leave_requests": mongodb.NewLeaveRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// First run against an empty user collection provisions the admin login.
	revocations := redisdb.NewRevocationStore(rdb, cfg.TokenTTL)
	authService := service.NewAuthService(users, revocations, cfg.JWTSecret, cfg.TokenTTL, log)
	if err := authService.BootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HR API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
