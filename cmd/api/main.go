// @title                       Web Store API
// @version                     1.0
// @description                 Users, roles, products, orders and order items behind JWT authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/webstore/store-api/docs"
	"github.com/webstore/store-api/internal/api"
	"github.com/webstore/store-api/internal/api/handler"
	"github.com/webstore/store-api/internal/core/ports"
	"github.com/webstore/store-api/internal/core/service"
	"github.com/webstore/store-api/internal/infrastructure/db/postgres"
	"github.com/webstore/store-api/internal/infrastructure/db/redis"
	"github.com/webstore/store-api/internal/pkg/config"
	"github.com/webstore/store-api/pkg/logger"
)

const serviceName = "store-api"

func main() {
	// A missing .env is fine; the process environment is used as is.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: serviceName})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- PostgreSQL ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("closing postgres pool")
		}
	}()

	if cfg.Database.RunMigrations {
		if err := postgres.Migrate(ctx, db.DB); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	// --- Redis (optional) ---
	var (
		revoker ports.TokenRevoker
		redisUp handler.Pinger
	)
	redisCfg := redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("closing redis client")
			}
		}()
		store := redis.NewRevocationStore(client)
		revoker, redisUp = store, store
	} else {
		log.Warn().Msg("REDIS_ADDR not set, logout will not revoke tokens")
	}

	// --- Repositories and services ---
	userRepo := postgres.NewUserRepository(db)
	users := service.NewUserService(userRepo, postgres.NewUnitOfWork(db), log)
	auth := service.NewAuthService(userRepo, revoker, cfg.JWT.Secret, cfg.JWT.TTL, log)
	products := service.NewProductService(postgres.NewProductRepository(db), log)
	orders := service.NewOrderService(postgres.NewOrderRepository(db), log)
	items := service.NewOrderItemService(postgres.NewOrderItemRepository(db), log)

	if cfg.Admin.Enabled() {
		if err := users.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Deps{
		Auth:           auth,
		Users:          users,
		Products:       products,
		Orders:         orders,
		OrderItems:     items,
		DB:             db,
		Redis:          redisUp,
		Logger:         log,
		LoginRateLimit: cfg.LoginRateLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
