package rabbit

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Topology describes the broker layout shared by publisher and consumer.
// Both sides declare it so whoever starts first creates it; declarations
// are idempotent as long as the arguments match.
type Topology struct {
	Exchange   string // durable direct exchange events are published to
	Queue      string // durable queue bound to the exchange
	RoutingKey string // binding key for UserRegistered events
}

func (t Topology) deadLetterExchange() string { return t.Exchange + ".dlx" }
func (t Topology) deadLetterQueue() string    { return t.Queue + ".dead" }

// Declare sets up the exchange, the queue, its dead-letter pair and the
// binding on the given channel. Messages rejected without requeue land on
// the dead-letter queue for manual inspection.
func (t Topology) Declare(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(t.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", t.Exchange, err)
	}
	if err := ch.ExchangeDeclare(t.deadLetterExchange(), amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(t.deadLetterQueue(), true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dead-letter queue: %w", err)
	}
	if err := ch.QueueBind(t.deadLetterQueue(), t.RoutingKey, t.deadLetterExchange(), false, nil); err != nil {
		return fmt.Errorf("bind dead-letter queue: %w", err)
	}
	if _, err := ch.QueueDeclare(t.Queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": t.deadLetterExchange(),
	}); err != nil {
		return fmt.Errorf("declare queue %s: %w", t.Queue, err)
	}
	if err := ch.QueueBind(t.Queue, t.RoutingKey, t.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", t.Queue, err)
	}
	return nil
}
