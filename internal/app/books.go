package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/config"
	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
	"github.com/MrSnakeDoc/bookhive/internal/postgres"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/booksv1"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/server"
	"github.com/MrSnakeDoc/bookhive/internal/scheduler"
	pgstore "github.com/MrSnakeDoc/bookhive/internal/store/postgres"
	"github.com/MrSnakeDoc/bookhive/internal/version"
)

// BooksApp wires the books service: the catalog in postgres, an optional
// seed file reloader, the HTTP read surface and the gRPC details endpoint.
type BooksApp struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	rpc      *server.Server
	reloader *scheduler.CatalogReloader
	db       *gorm.DB
}

func NewBooks() *BooksApp {
	cfg := config.LoadBooks()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	db, err := postgres.New(postgres.ConnectOptions{
		DSN:            cfg.DatabaseURL,
		ConnectTimeout: cfg.DBConnectTimeout,
		RetryInterval:  cfg.DBRetryInterval,
		MaxWait:        cfg.DBMaxWait,
		PingTimeout:    cfg.DBPingTimeout,
		WarnThreshold:  cfg.DBWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Postgres: %v", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(db,
		&domain.Author{}, &domain.Category{}, &domain.Publisher{}, &domain.Book{}); err != nil {
		loggerClient.Errorf("Failed to migrate schema: %v", err)
		os.Exit(1)
	}

	store := pgstore.NewBookStore(db)

	var reloader *scheduler.CatalogReloader
	if cfg.CatalogFile != "" {
		loggerClient.Info("catalog file configured, initializing reloader",
			logger.String("file", cfg.CatalogFile))
		reloader = scheduler.NewCatalogReloader(cfg.CatalogFile, store, loggerClient, cfg.CatalogReloadInterval)
	} else {
		loggerClient.Info("catalog file not configured, seed import disabled")
	}

	rpcServer := server.New(cfg.GRPCListenAddr, loggerClient)
	booksv1.RegisterBooksServiceServer(rpcServer.Registrar(), server.NewBooksService(store, loggerClient))

	booksHandler := handlers.NewBooks(store, loggerClient)
	startTime := time.Now()
	httpServer := httpserver.New(cfg.ListenAddr, loggerClient, func(r chi.Router) {
		r.Get("/healthz", handlers.Healthz(startTime))
		r.Get("/readyz", handlers.Readyz(map[string]handlers.Check{
			"postgres": pingPostgres(db),
		}))
		r.Handle("/metrics", metrics.Handler())
		r.Route("/api/v1/books", booksHandler.Routes)
	})

	return &BooksApp{
		cfg:      cfg,
		logger:   loggerClient,
		server:   httpServer,
		rpc:      rpcServer,
		reloader: reloader,
		db:       db,
	}
}

func (a *BooksApp) Run() error {
	a.logger.Infof("🚀 Starting bookhive-books v%s on %s (gRPC %s)",
		version.Version, a.cfg.ListenAddr, a.cfg.GRPCListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start catalog reloader: %w", err)
		}
		a.logger.Info("catalog reloader started",
			logger.Duration("interval", a.cfg.CatalogReloadInterval))
	}

	errCh := make(chan error, 2)
	go func() {
		if err := a.rpc.Start(); err != nil {
			errCh <- fmt.Errorf("grpc server error: %w", err)
		}
	}()
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop http server: %w", err)
	}
	if err := a.rpc.Stop(shutdownCtx); err != nil {
		a.logger.Warnf("grpc server did not drain in time: %v", err)
	}

	closeQuiet(a.logger, "postgres", func() error { return postgres.Close(a.db) })

	a.logger.Info("✅ bookhive-books stopped cleanly")
	return nil
}
