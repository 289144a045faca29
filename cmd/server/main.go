package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"rfpforge/internal/audit"
	authhandler "rfpforge/internal/auth/handler"
	authservice "rfpforge/internal/auth/service"
	authstore "rfpforge/internal/auth/store"
	"rfpforge/internal/chat"
	"rfpforge/internal/compliance"
	"rfpforge/internal/dashboard"
	"rfpforge/internal/generation"
	"rfpforge/internal/jwttoken"
	"rfpforge/internal/platform/config"
	"rfpforge/internal/platform/httpserver"
	"rfpforge/internal/platform/logger"
	"rfpforge/internal/platform/metrics"
	"rfpforge/internal/platform/middleware"
	"rfpforge/internal/platform/postgres"
	platformredis "rfpforge/internal/platform/redis"
	"rfpforge/internal/rfp"
	rfphandler "rfpforge/internal/rfp/handler"
	rfpservice "rfpforge/internal/rfp/service"
	"rfpforge/internal/template"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m := metrics.New()

	// Session storage: Redis when configured, in-process otherwise.
	var sessions authstore.SessionStore = authstore.NewInMemorySessionStore()
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = authstore.NewRedisSessionStore(redisClient.Client)
		log.InfoContext(ctx, "session store: redis")
	}

	// Document and audit storage: Postgres when configured, in-process
	// otherwise.
	var (
		documents  rfp.Store   = rfp.NewInMemoryStore()
		auditStore audit.Store = audit.NewInMemoryStore()
	)
	if cfg.PostgresURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		documents = rfp.NewPostgresStore(pool)

		db, err := postgres.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer db.Close()
		auditStore = audit.NewPostgresStore(db)
		log.InfoContext(ctx, "document store: postgres")
	}

	recorderOpts := []audit.Option{audit.WithMetrics(m)}
	if len(cfg.KafkaBrokers) > 0 {
		recorderOpts = append(recorderOpts, audit.WithOutbox(cfg.AuditBuffer))
	}
	recorder := audit.NewRecorder(auditStore, log, recorderOpts...)

	tokens := jwttoken.NewService(cfg.JWTSigningKey, "rfpforge")

	authSvc := authservice.New(
		authstore.NewInMemoryUserStore(),
		sessions,
		tokens,
		recorder,
		log,
		authservice.WithMetrics(m),
		authservice.WithSessionTTL(cfg.SessionTTL),
	)

	adapter := generation.NewAdapter(cfg.OpenAIAPIKey, cfg.OpenAIModel, log,
		generation.WithTimeout(cfg.GenerationTimeout),
		generation.WithMaxInFlight(cfg.GenerationMaxInFlight),
		generation.WithMetrics(m),
	)
	builder := rfp.NewContentBuilder(adapter, log, m)
	rfpSvc := rfpservice.New(documents, builder, recorder, log, rfpservice.WithMetrics(m))

	templates := template.NewInMemoryStore()
	if err := template.Seed(ctx, templates); err != nil {
		return err
	}
	templateSvc := template.NewService(templates, recorder, log)

	chatSvc := chat.NewService(recorder)
	complianceSvc := compliance.NewService(documents, recorder)
	dashboardSvc := dashboard.NewService(documents, recorder, log)

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(m))
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	authHandler := authhandler.New(authSvc, log)
	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		authHandler.RegisterPublic(r)
	})
	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(tokens, authSvc, log))
		authHandler.RegisterProtected(r)
		rfphandler.New(rfpSvc, log).Register(r)
		template.NewHandler(templateSvc, log).Register(r)
		chat.NewHandler(chatSvc, log).Register(r)
		compliance.NewHandler(complianceSvc, log).Register(r)
		dashboard.NewHandler(dashboardSvc, log).Register(r)
		audit.NewHandler(recorder, log).Register(r)
	})

	g, gctx := errgroup.WithContext(ctx)

	if len(cfg.KafkaBrokers) > 0 {
		sink, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		if err != nil {
			return err
		}
		defer sink.Close()
		worker := audit.NewWorker(sink, recorder.Outbox(), log)
		g.Go(func() error { return worker.Run(gctx) })
		log.InfoContext(ctx, "audit sink: kafka", "topic", cfg.KafkaAuditTopic)
	}

	srv := httpserver.New(cfg.Addr, router)
	g.Go(func() error {
		log.InfoContext(ctx, "server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
