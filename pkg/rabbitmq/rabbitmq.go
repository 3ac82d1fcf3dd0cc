package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// Routing keys and queue names used by the portfolio API.
const (
	RoutingContactReceived = "contact.received"
	ContactQueue           = "contact_notifications"
	DefaultExchange        = "portfolio"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string

	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string
}

// NewClient connects to RabbitMQ, declares the topic exchange and binds the
// contact notification queue to it.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch, cfg.Exchange); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	slog.Info("rabbitmq client connected", "exchange", cfg.Exchange, "queue", ContactQueue)

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
	}, nil
}

func declareTopology(ch *amqp.Channel, exchange string) error {
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	_, err = ch.QueueDeclare(
		ContactQueue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", ContactQueue, err)
	}

	if err := ch.QueueBind(ContactQueue, "contact.*", exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s: %w", ContactQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// NewMessage builds a persistent JSON message for payload.
func NewMessage(payload interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal message body: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    uuid.New().String(),
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

// Publish sends msg to the client's exchange with routingKey.
func (c *Client) Publish(routingKey string, msg amqp.Publishing) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.channel.Publish(c.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishContactReceived announces a newly stored contact message.
func (c *Client) PublishContactReceived(payload map[string]interface{}) error {
	msg, err := NewMessage(payload, time.Now())
	if err != nil {
		return err
	}
	if err := c.Publish(RoutingContactReceived, msg); err != nil {
		return err
	}
	slog.Debug("published contact event", "message_id", msg.MessageId)
	return nil
}

// ConsumeContactEvents delivers messages from the contact queue to handler
// on a background goroutine. Messages are acked when handler returns nil and
// rejected without requeue otherwise.
func (c *Client) ConsumeContactEvents(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		ContactQueue, // queue
		"",           // consumer tag
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				slog.Error("failed to process contact event", "message_id", msg.MessageId, "error", err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					slog.Error("failed to nack message", "message_id", msg.MessageId, "error", nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				slog.Error("failed to ack message", "message_id", msg.MessageId, "error", ackErr)
			}
		}
	}()
	return nil
}

// ContactEvent is the payload of a contact.received message.
type ContactEvent struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

// DecodeContactEvent parses a contact.received message body.
func DecodeContactEvent(body []byte) (ContactEvent, error) {
	var event ContactEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return ContactEvent{}, fmt.Errorf("invalid contact event: %w", err)
	}
	if event.ID == 0 {
		return ContactEvent{}, fmt.Errorf("invalid contact event: missing id")
	}
	return event, nil
}
