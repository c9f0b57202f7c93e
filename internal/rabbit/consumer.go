package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/metrics"
	"github.com/MrSnakeDoc/bookhive/internal/utils"
)

// HandlerFunc processes one decoded event payload. A nil return
// acknowledges the delivery; an error triggers the retry path.
type HandlerFunc func(ctx context.Context, raw json.RawMessage) error

// Consumer reads events off the queue and dispatches them by event type.
// Delivery is at-least-once: a message is acknowledged only after its
// handler succeeds, so handlers must tolerate duplicates. A failed message
// is requeued once; if the redelivery fails too it is rejected to the
// dead-letter queue instead of spinning forever.
type Consumer struct {
	conn     *amqp.Connection
	topology Topology
	handlers map[string]HandlerFunc
	logger   logger.Logger
}

func NewConsumer(conn *amqp.Connection, topology Topology, log logger.Logger) *Consumer {
	return &Consumer{
		conn:     conn,
		topology: topology,
		handlers: make(map[string]HandlerFunc),
		logger:   log,
	}
}

// Handle registers the handler for one event type. Registering the same
// type twice is a wiring bug and panics at startup.
func (c *Consumer) Handle(eventType string, h HandlerFunc) {
	if _, dup := c.handlers[eventType]; dup {
		panic(fmt.Sprintf("duplicate handler for event type %q", eventType))
	}
	c.handlers[eventType] = h
}

// Run consumes the queue until the context is canceled. It returns nil on
// cancellation and an error if the broker drops the delivery stream.
func (c *Consumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open consumer channel: %w", err)
	}
	defer utils.Close(ch)

	if err := c.topology.Declare(ch); err != nil {
		return err
	}
	// One unacked message at a time keeps retry ordering predictable.
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.topology.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.topology.Queue, err)
	}

	c.logger.Info("consumer started",
		logger.String("queue", c.topology.Queue),
		logger.String("exchange", c.topology.Exchange),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopping...")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("delivery stream closed by broker")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	env, err := domain.DecodeEnvelope(d.Body)
	if err != nil {
		// A payload that cannot be decoded will never succeed; drop it.
		c.logger.Error("dropping undecodable event", logger.Error(err))
		metrics.EventsDropped.WithLabelValues("bad_payload").Inc()
		c.ack(d)
		return
	}

	handler, ok := c.handlers[env.EventType]
	if !ok {
		c.logger.Warn("dropping event with no handler",
			logger.String("event_type", env.EventType))
		metrics.EventsDropped.WithLabelValues("unknown_type").Inc()
		c.ack(d)
		return
	}

	if err := handler(ctx, env.Raw); err != nil {
		if !d.Redelivered {
			c.logger.Warn("event handling failed, requeueing",
				logger.String("event_type", env.EventType),
				logger.Error(err))
			metrics.EventsRequeued.Inc()
			c.nack(d, true)
			return
		}
		c.logger.Error("event handling failed twice, dead-lettering",
			logger.String("event_type", env.EventType),
			logger.Error(err))
		metrics.EventsDeadLettered.Inc()
		c.nack(d, false)
		return
	}

	metrics.EventsProcessed.WithLabelValues(env.EventType).Inc()
	c.ack(d)
}

func (c *Consumer) ack(d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		c.logger.Error("ack failed", logger.Error(err))
	}
}

func (c *Consumer) nack(d amqp.Delivery, requeue bool) {
	if err := d.Nack(false, requeue); err != nil {
		c.logger.Error("nack failed", logger.Error(err))
	}
}
