// @title       Wishlist
// @version     1.0
// @description Server-rendered wishlist board: register, log in, keep a wishlist and copy items from colleagues.
// @BasePath    /
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
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pruebatecnica/wishlist/internal/api"
	"github.com/pruebatecnica/wishlist/internal/api/handler"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
	"github.com/pruebatecnica/wishlist/internal/core/service"
	"github.com/pruebatecnica/wishlist/internal/infrastructure/config"
	"github.com/pruebatecnica/wishlist/internal/infrastructure/db/mongo"
	"github.com/pruebatecnica/wishlist/internal/infrastructure/db/postgres"
	"github.com/pruebatecnica/wishlist/internal/infrastructure/db/redis"
	"github.com/pruebatecnica/wishlist/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config: failed to load")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.Production(),
		Service: "wishlist",
	})
	if envErr != nil {
		log.Debug().Err(envErr).Msg("config: no .env file loaded")
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		Timeout:      cfg.Postgres.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres: failed to connect")
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("postgres: migrations failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis: failed to connect")
	}
	defer rdb.Close()

	checks := []handler.DependencyCheck{
		{Name: "postgres", Ping: db.PingContext},
		{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	}

	var activity ports.ActivityRepository
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo: failed to connect")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongo: disconnect error")
			}
		}()
		activity = mongo.NewActivityRepository(mdb)
		checks = append(checks, handler.DependencyCheck{
			Name: "mongo",
			Ping: func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		})
	} else {
		log.Info().Msg("mongo: MONGO_URI not set, activity trail disabled")
	}

	users := postgres.NewUserRepository(db)
	items := postgres.NewWishlistRepository(db)

	router := api.NewRouter(api.Services{
		Auth:     service.NewAuthService(users, activity, log),
		Wishlist: service.NewWishlistService(users, items, activity, log),
		Sessions: redis.NewSessionStore(rdb),
	}, api.Options{
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		SecureCookies: cfg.Session.SecureCookie,
		Logger:        log,
		Checks:        checks,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server crashed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped cleanly")
}
