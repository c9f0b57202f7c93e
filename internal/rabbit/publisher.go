package rabbit

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/MrSnakeDoc/bookhive/internal/utils"
)

// Publisher sends domain events to the events exchange. It owns one
// channel; Publish is safe for concurrent use because the amqp channel
// serializes its writes internally.
type Publisher struct {
	ch       *amqp.Channel
	topology Topology
	logger   logger.Logger
}

// NewPublisher opens a channel on the connection and declares the topology.
func NewPublisher(conn *amqp.Connection, topology Topology, log logger.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}
	if err := topology.Declare(ch); err != nil {
		utils.Close(ch)
		return nil, err
	}
	return &Publisher{ch: ch, topology: topology, logger: log}, nil
}

// Publish marshals the event and sends it as a persistent message under
// the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	err = p.ch.PublishWithContext(ctx, p.topology.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	p.logger.Debug("event published",
		logger.String("exchange", p.topology.Exchange),
		logger.String("routing_key", routingKey),
	)
	return nil
}

// Close releases the publisher channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}
