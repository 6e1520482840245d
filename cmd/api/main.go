// @title           Storefront API
// @version         1.0
// @description     Device-scoped session, navigation and cart service for the Resourcespen storefront.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/resourcespen/storefront/internal/api"
	"github.com/resourcespen/storefront/internal/api/metrics"
	"github.com/resourcespen/storefront/internal/api/middleware"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/core/service"
	mongodb "github.com/resourcespen/storefront/internal/infrastructure/db/mongo"
	redisdb "github.com/resourcespen/storefront/internal/infrastructure/db/redis"
	"github.com/resourcespen/storefront/internal/infrastructure/queue"
	"github.com/resourcespen/storefront/internal/infrastructure/storage/memory"
	"github.com/resourcespen/storefront/internal/pkg/config"
	"github.com/resourcespen/storefront/pkg/logger"
)

var version = "dev"

const (
	shutdownTimeout = 15 * time.Second
	sweepInterval   = 10 * time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront",
		Version: version,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "storefront",
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	if cfg.SeedOnStart {
		if err := mongodb.Seed(ctx, db, logger.Component("seed")); err != nil {
			return err
		}
	}

	var (
		rdb     *redis.Client
		devices ports.DeviceStorage
		idem    ports.IdempotencyStore
	)
	switch cfg.StorageDriver {
	case config.StorageRedis:
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		devices = redisdb.NewDeviceStorage(rdb, cfg.DeviceTTL)
		idem = redisdb.NewIdempotencyStore(rdb)
	default:
		memDevices := memory.NewDeviceStorage(cfg.DeviceTTL)
		memIdem := memory.NewIdempotencyStore(ports.IdempotencyTTL)
		go sweep(ctx, memDevices, memIdem, log)
		devices = memDevices
		idem = memIdem
	}
	log.Info().Str("driver", cfg.StorageDriver).Msg("device storage ready")

	users := mongodb.NewUserRepository(db)
	products := mongodb.NewProductRepository(db)
	orders := mongodb.NewOrderRepository(db)
	content := mongodb.NewContentRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	dispatcher := queue.NewDispatcher(
		cfg.ActivityWorkers,
		service.NewActivityService(activityRepo, logger.Component("activity")),
		logger.Component("dispatcher"),
	)
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)
	metrics.RegisterActivityQueue(dispatcher)

	ws := service.NewWorkspace(
		devices,
		service.NewAuthenticator(users),
		service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
	)

	e := api.NewRouter(api.Deps{
		Log:       logger.Component("http"),
		Version:   version,
		JWTSecret: cfg.JWTSecret,
		Device:    middleware.DeviceConfig{TTL: cfg.DeviceTTL, Secure: !cfg.IsDevelopment()},

		Sessions:   service.NewSessionService(ws, dispatcher, logger.Component("session")),
		Navigation: service.NewNavigationService(ws, content, dispatcher, logger.Component("navigation")),
		Cart:       service.NewCartService(ws, products, orders, idem, dispatcher, logger.Component("cart")),

		Users:    users,
		Products: products,
		Orders:   orders,
		Content:  content,
		Activity: activityRepo,

		DB:    db,
		Redis: rdb,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		cancelWorkers()
		dispatcher.Wait()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Handlers are drained, so nothing records anymore; workers persist what
	// is still queued before Wait returns.
	cancelWorkers()
	dispatcher.Wait()
	log.Info().Uint64("activity_dropped", dispatcher.Dropped()).Msg("shutdown complete")
	return nil
}

// sweep evicts expired device slots and idempotency keys from the in-memory stores.
func sweep(ctx context.Context, devices *memory.DeviceStorage, idem *memory.IdempotencyStore, log zerolog.Logger) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := devices.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Msg("device slots swept")
			}
			if n := idem.Sweep(); n > 0 {
				log.Debug().Int("evicted", n).Msg("idempotency keys swept")
			}
		}
	}
}
