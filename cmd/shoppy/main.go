package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/shoppy/internal/app"
	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/SergeyBogomolovv/shoppy/internal/events"
	"github.com/SergeyBogomolovv/shoppy/internal/handler"
	"github.com/SergeyBogomolovv/shoppy/internal/postgres"
	"github.com/SergeyBogomolovv/shoppy/internal/repo"
	"github.com/SergeyBogomolovv/shoppy/internal/service"
	"github.com/SergeyBogomolovv/shoppy/pkg/cache"
	"github.com/SergeyBogomolovv/shoppy/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, postgres.TxOptions(conf.Postgres))

	readCache, err := newCache(logger, conf.Cache)
	panicIfErr("failed to init cache", err)
	if c, ok := readCache.(io.Closer); ok {
		defer c.Close()
	}

	publisher := events.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	cartService := service.NewCartService(logger, store, store)
	productService := service.NewProductService(store)
	orderService := service.NewOrderService(logger, txManager, store, store, readCache, publisher)

	service.RegisterMetrics()
	handler.RegisterMetrics()

	statusConsumer := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(
		handler.NewCartHandler(logger, cartService),
		handler.NewOrderHandler(logger, orderService, conf.Auth.JWTSecret),
		handler.NewProductHandler(logger, productService),
	)
	app.SetConsumers(statusConsumer)
	app.SetStarters(readCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type orderCache interface {
	service.Cache
	app.Starter
}

func newCache(logger *slog.Logger, cfg config.Cache) (orderCache, error) {
	if cfg.Backend == "redis" {
		c, err := cache.NewRedisCache(logger, cfg.RedisAddr, "shoppy:", cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return cache.NewLRUCache(cfg.Capacity, cfg.TTL), nil
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
