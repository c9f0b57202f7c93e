package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MrSnakeDoc/bookhive/internal/auth"
	"github.com/MrSnakeDoc/bookhive/internal/config"
	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/mw"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
	"github.com/MrSnakeDoc/bookhive/internal/postgres"
	"github.com/MrSnakeDoc/bookhive/internal/rabbit"
	"github.com/MrSnakeDoc/bookhive/internal/redis"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/authv1"
	"github.com/MrSnakeDoc/bookhive/internal/rpc/server"
	pgstore "github.com/MrSnakeDoc/bookhive/internal/store/postgres"
	redisstore "github.com/MrSnakeDoc/bookhive/internal/store/redis"
	"github.com/MrSnakeDoc/bookhive/internal/token"
	"github.com/MrSnakeDoc/bookhive/internal/version"
)

// AuthApp wires the auth service: accounts in postgres, refresh tokens in
// redis, UserRegistered events to rabbitmq, plus the gRPC user details
// endpoint consumed by the favorites service.
type AuthApp struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	rpc         *server.Server
	db          *gorm.DB
	redisClient *goredis.Client
	amqpConn    *amqp.Connection
	publisher   *rabbit.Publisher
}

func NewAuth() *AuthApp {
	cfg := config.LoadAuth()
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
	if err := postgres.Migrate(db, &domain.User{}); err != nil {
		loggerClient.Errorf("Failed to migrate schema: %v", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(redisOptions(cfg), loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	amqpConn, err := rabbit.Connect(rabbit.ConnectOptions{
		URL:            cfg.RabbitURL,
		ConnectTimeout: cfg.RabbitConnectTimeout,
		RetryInterval:  cfg.RabbitRetryInterval,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to RabbitMQ: %v", err)
		os.Exit(1)
	}
	publisher, err := rabbit.NewPublisher(amqpConn, rabbit.Topology{
		Exchange:   cfg.EventsExchange,
		Queue:      cfg.EmailQueue,
		RoutingKey: cfg.UserRegisteredKey,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to set up publisher: %v", err)
		os.Exit(1)
	}

	users := pgstore.NewUserStore(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	refresh := redisstore.NewTokenStore(redisClient, cfg.RefreshTokenTTL)
	svc := auth.New(users, refresh, tokens, publisher, cfg.UserRegisteredKey, loggerClient)

	rpcServer := server.New(cfg.GRPCListenAddr, loggerClient)
	authv1.RegisterAuthServiceServer(rpcServer.Registrar(), server.NewAuthService(users, loggerClient))

	authHandler := handlers.NewAuth(svc, loggerClient)
	startTime := time.Now()
	httpServer := httpserver.New(cfg.ListenAddr, loggerClient, func(r chi.Router) {
		r.Get("/healthz", handlers.Healthz(startTime))
		r.Get("/readyz", handlers.Readyz(map[string]handlers.Check{
			"postgres": pingPostgres(db),
			"redis":    pingRedis(redisClient),
		}))
		r.Handle("/metrics", metrics.Handler())
		r.Route("/api/v1/auth", func(r chi.Router) {
			// Credential endpoints are the abuse magnet; keep them throttled.
			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit(mw.RateLimitConfig{
					Burst:             10,
					RefillPerIPPerMin: 30,
					MaxEntries:        10000,
				}))
				authHandler.Routes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(mw.Auth(tokens))
				r.Post("/logout", authHandler.Logout)
			})
		})
	})

	return &AuthApp{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpServer,
		rpc:         rpcServer,
		db:          db,
		redisClient: redisClient,
		amqpConn:    amqpConn,
		publisher:   publisher,
	}
}

func (a *AuthApp) Run() error {
	a.logger.Infof("🚀 Starting bookhive-auth v%s on %s (gRPC %s)",
		version.Version, a.cfg.ListenAddr, a.cfg.GRPCListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop http server: %w", err)
	}
	if err := a.rpc.Stop(shutdownCtx); err != nil {
		a.logger.Warnf("grpc server did not drain in time: %v", err)
	}

	closeQuiet(a.logger, "publisher", a.publisher.Close)
	closeQuiet(a.logger, "rabbitmq", a.amqpConn.Close)
	closeQuiet(a.logger, "redis", a.redisClient.Close)
	closeQuiet(a.logger, "postgres", func() error { return postgres.Close(a.db) })

	a.logger.Info("✅ bookhive-auth stopped cleanly")
	return nil
}
