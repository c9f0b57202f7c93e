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

	"github.com/MrSnakeDoc/bookhive/internal/config"
	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/email"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver"
	"github.com/MrSnakeDoc/bookhive/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
	"github.com/MrSnakeDoc/bookhive/internal/rabbit"
	"github.com/MrSnakeDoc/bookhive/internal/version"
)

// EmailApp wires the email service: the event consumer and a small HTTP
// surface for health and metrics.
type EmailApp struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	consumer *rabbit.Consumer
	amqpConn *amqp.Connection
}

func NewEmail() *EmailApp {
	cfg := config.LoadEmail()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	amqpConn, err := rabbit.Connect(rabbit.ConnectOptions{
		URL:            cfg.RabbitURL,
		ConnectTimeout: cfg.RabbitConnectTimeout,
		RetryInterval:  cfg.RabbitRetryInterval,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to RabbitMQ: %v", err)
		os.Exit(1)
	}

	var mailer email.Mailer
	if cfg.SMTPAddr != "" {
		loggerClient.Infof("SMTP relay configured at %s", cfg.SMTPAddr)
		mailer = email.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		loggerClient.Info("no SMTP relay configured, emails will be logged")
		mailer = email.NewLogMailer(loggerClient)
	}

	consumer := rabbit.NewConsumer(amqpConn, rabbit.Topology{
		Exchange:   cfg.EventsExchange,
		Queue:      cfg.EmailQueue,
		RoutingKey: cfg.UserRegisteredKey,
	}, loggerClient)
	consumer.Handle(domain.EventUserRegistered,
		email.NewUserRegisteredHandler(mailer, loggerClient).Handle)

	startTime := time.Now()
	server := httpserver.New(cfg.ListenAddr, loggerClient, func(r chi.Router) {
		r.Get("/healthz", handlers.Healthz(startTime))
		r.Get("/readyz", handlers.Readyz(map[string]handlers.Check{
			"rabbitmq": func(context.Context) error {
				if amqpConn.IsClosed() {
					return fmt.Errorf("connection closed")
				}
				return nil
			},
		}))
		r.Handle("/metrics", metrics.Handler())
	})

	return &EmailApp{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		consumer: consumer,
		amqpConn: amqpConn,
	}
}

func (a *EmailApp) Run() error {
	a.logger.Infof("🚀 Starting bookhive-email v%s on %s", version.Version, a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := a.consumer.Run(ctx); err != nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
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
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// The consumer acks its in-flight delivery before exiting; the
	// connection must outlive that ack.
	awaitStop(shutdownCtx, a.logger, "consumer", consumerDone)

	closeQuiet(a.logger, "rabbitmq", a.amqpConn.Close)

	a.logger.Info("✅ bookhive-email stopped cleanly")
	return nil
}
