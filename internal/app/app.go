package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shoppy/internal/config"
	"github.com/SergeyBogomolovv/shoppy/internal/middleware"
	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

type HttpHandler interface {
	Init(r chi.Router)
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

// Starter is initialised once before traffic is accepted.
type Starter interface {
	Start(ctx context.Context) error
}

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	running   errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger.With(slog.String("component", "app")),
		httpSrv: httpSrv,
		router:  router,
	}
}

// Handler exposes the configured router.
func (a *application) Handler() http.Handler {
	return a.router
}

func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// Start runs every starter, then launches consumers and the HTTP server.
// It returns once the listener is bound.
func (a *application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		s := s
		g.Go(func() error { return s.Start(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}

	for _, c := range a.consumers {
		c := c
		a.running.Go(func() error {
			c.Consume(ctx)
			return nil
		})
	}

	a.running.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", ln.Addr().String()))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server stopped", slog.Any("error", err))
			return err
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

// Stop shuts the HTTP server down and closes consumers. Consumers are expected
// to return once the context passed to Start is canceled.
func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	if err := a.running.Wait(); err != nil {
		errs = append(errs, err)
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
