package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/partsdesk-backend/internal/adapter/bolt"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/kafka"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/partsapi"
	"github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/note"
	orderrepo "github.com/heartmarshall/partsdesk-backend/internal/adapter/postgres/order"
	"github.com/heartmarshall/partsdesk-backend/internal/auth"
	"github.com/heartmarshall/partsdesk-backend/internal/config"
	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/internal/service/catalog"
	"github.com/heartmarshall/partsdesk-backend/internal/service/notes"
	"github.com/heartmarshall/partsdesk-backend/internal/service/order"
	"github.com/heartmarshall/partsdesk-backend/internal/service/problempart"
	"github.com/heartmarshall/partsdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/partsdesk-backend/internal/transport/rest"
)

// eventSink publishes domain events and releases its connection on Close.
type eventSink interface {
	Publish(ctx context.Context, ev domain.Event) error
	Close() error
}

// Run is the server entry point. It wires adapters and services, then
// serves HTTP and refreshes the order snapshot until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting partsdesk",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// --- Storage ---

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := ensureSchema(ctx, pool); err != nil {
		return err
	}

	drafts, err := bolt.Open(cfg.Drafts)
	if err != nil {
		return err
	}
	defer func() {
		if err := drafts.Close(); err != nil {
			logger.Warn("close draft store", slog.String("error", err.Error()))
		}
	}()

	events, err := newEventSink(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Warn("close event publisher", slog.String("error", err.Error()))
		}
	}()

	// --- Services ---

	upstream := partsapi.NewClient(cfg.Upstream, logger)
	txm := postgres.NewTxManager(pool)

	orderSvc := order.NewService(logger, orderrepo.New(pool), txm, upstream, events, cfg.Snapshot.MaxOrders)
	noteSvc := notes.NewService(logger, noterepo.New(pool), drafts, events)
	partSvc := problempart.NewService(logger, upstream, events)
	catalogSvc := catalog.NewService(logger, upstream, cfg.Upstream.BestEffortLookups)

	// --- HTTP ---

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registerSnapshotMetrics(reg, orderSvc.Snapshot())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	api := middleware.Auth(auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
	if cfg.RateLimit.Enabled {
		api = middleware.Chain(api, limiter.Limit(cfg.RateLimit.PerMinute))
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, orderSvc.Snapshot(), BuildVersion()),
		Orders:       rest.NewOrderHandler(orderSvc, logger),
		Notes:        rest.NewNoteHandler(noteSvc, logger),
		ProblemParts: rest.NewProblemPartHandler(partSvc, logger),
		Catalog:      rest.NewCatalogHandler(catalogSvc, logger),
		Cards:        rest.NewCardHandler(logger),
		Metrics:      promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}, middleware.NewHTTPMetrics(reg), api)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	// --- Run ---

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return orderSvc.Run(gctx, cfg.Snapshot.RefreshInterval)
	})

	g.Go(func() error {
		return noteSvc.Run(gctx, cfg.Notes.EvictInterval, cfg.Notes.IdleTTL)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// ensureSchema refuses to start against a database that is behind the
// embedded migrations. Run cmd/migrate first.
func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	pending, err := m.HasPending(ctx)
	if err != nil {
		return err
	}
	if pending {
		return errors.New("database schema has pending migrations; run cmd/migrate")
	}
	return nil
}

func newEventSink(cfg config.KafkaConfig, logger *slog.Logger) (eventSink, error) {
	if !cfg.Enabled {
		logger.Info("kafka disabled; domain events are dropped")
		return kafka.Discard{}, nil
	}
	p, err := kafka.NewPublisher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: %w", err)
	}
	return p, nil
}

// snapshotStats is the read side of the order snapshot used by metrics.
type snapshotStats interface {
	Len() int
	LoadedAt() time.Time
}

func registerSnapshotMetrics(reg prometheus.Registerer, s snapshotStats) {
	const namespace, subsystem = "partsdesk", "order_snapshot"

	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "orders",
			Help:      "Number of orders held in the in-memory snapshot",
		}, func() float64 { return float64(s.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loaded_timestamp_seconds",
			Help:      "Unix time of the last successful snapshot refresh, 0 before the first",
		}, func() float64 {
			at := s.LoadedAt()
			if at.IsZero() {
				return 0
			}
			return float64(at.Unix())
		}),
	)
}
