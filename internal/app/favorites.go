package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/config"
	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/favorites"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/mw"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
	"github.com/MrSnakeDoc/bookhive/internal/postgres"
	"github.com/MrSnakeDoc/bookhive/internal/redis"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/client"
	pgstore "github.com/MrSnakeDoc/bookhive/internal/store/postgres"
	redisstore "github.com/MrSnakeDoc/bookhive/internal/store/redis"
	"github.com/MrSnakeDoc/bookhive/internal/token"
	"github.com/MrSnakeDoc/bookhive/internal/version"
)

// FavoritesApp wires the favorites service: postgres for favorite rows,
// redis for the summary cache, and gRPC client connections to the auth and
// books services for enrichment.
type FavoritesApp struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	db          *gorm.DB
	redisClient *goredis.Client
	authConn    *grpc.ClientConn
	booksConn   *grpc.ClientConn
}

func NewFavorites() *FavoritesApp {
	cfg := config.LoadFavorites()
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
	if err := postgres.Migrate(db, &domain.Favorite{}, &domain.FavoriteActionLog{}); err != nil {
		loggerClient.Errorf("Failed to migrate schema: %v", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(redisOptions(cfg), loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	authConn, err := client.Dial(cfg.AuthRPCAddr)
	if err != nil {
		loggerClient.Errorf("Failed to dial auth service: %v", err)
		os.Exit(1)
	}
	booksConn, err := client.Dial(cfg.BooksRPCAddr)
	if err != nil {
		loggerClient.Errorf("Failed to dial books service: %v", err)
		os.Exit(1)
	}

	cache := redisstore.NewSummaryCache(redisClient, cfg.SummaryCacheTTL)
	users := client.NewCachedUserDirectory(
		client.NewUserDirectory(authConn, cfg.RPCTimeout, loggerClient), cache, loggerClient)
	books := client.NewCachedBookDirectory(
		client.NewBookDirectory(booksConn, cfg.RPCTimeout, loggerClient), cache, loggerClient)

	svc := favorites.New(pgstore.NewFavoriteStore(db), users, books, loggerClient)
	favHandler := handlers.NewFavorites(svc, loggerClient)
	tokens := token.NewManager(cfg.JWTSecret, 0)

	startTime := time.Now()
	server := httpserver.New(cfg.ListenAddr, loggerClient, func(r chi.Router) {
		r.Get("/healthz", handlers.Healthz(startTime))
		r.Get("/readyz", handlers.Readyz(map[string]handlers.Check{
			"postgres": pingPostgres(db),
			"redis":    pingRedis(redisClient),
		}))
		r.Handle("/metrics", metrics.Handler())
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(tokens))
			r.Route("/api/v1/favorites", favHandler.Routes)
		})
	})

	return &FavoritesApp{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		db:          db,
		redisClient: redisClient,
		authConn:    authConn,
		booksConn:   booksConn,
	}
}

func (a *FavoritesApp) Run() error {
	a.logger.Infof("🚀 Starting bookhive-favorites v%s on %s", version.Version, a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	closeQuiet(a.logger, "auth connection", a.authConn.Close)
	closeQuiet(a.logger, "books connection", a.booksConn.Close)
	closeQuiet(a.logger, "redis", a.redisClient.Close)
	closeQuiet(a.logger, "postgres", func() error { return postgres.Close(a.db) })

	a.logger.Info("✅ bookhive-favorites stopped cleanly")
	return nil
}
