package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ContentExchange   = "content"
	ContentEventQueue = "content_events"
	contentBindingKey = "post.*"

	// ContentRetryQueue holds failed deliveries for retryDelay, then
	// dead-letters them back onto ContentEventQueue.
	ContentRetryQueue = "content_events.retry"
	// ContentDeadQueue parks events that failed maxDeliveryAttempts times.
	ContentDeadQueue = "content_events.dead"

	retryCountHeader    = "x-retry-count"
	retryDelay          = 10 * time.Second
	maxDeliveryAttempts = 5
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		ContentExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		ContentEventQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(ContentEventQueue, contentBindingKey, ContentExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	_, err = channel.QueueDeclare(
		ContentRetryQueue,
		true,
		false,
		false,
		false,
		amqp.Table{
			"x-message-ttl":             int32(retryDelay / time.Millisecond),
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": ContentEventQueue,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to declare retry queue: %w", err)
	}

	if _, err := channel.QueueDeclare(ContentDeadQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare dead letter queue: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishContentEvent publishes event with its type as the routing key.
func (c *Client) PublishContentEvent(ctx context.Context, event ContentEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := event.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.PublishWithContext(ctx,
		ContentExchange, // exchange
		event.Type,      // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s for post %s: %v", event.Type, event.PostID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published %s for post %s", event.Type, event.PostID)
	return nil
}

// ConsumeContentEvents delivers decoded events to handler until the channel
// closes. Undecodable messages are dropped; handler errors go through the
// delayed retry queue.
func (c *Client) ConsumeContentEvents(handler func(event ContentEvent) error) error {
	msgs, err := c.channel.Consume(
		ContentEventQueue, // queue
		"",                // consumer
		false,             // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from %s", ContentEventQueue)

	go func() {
		for msg := range msgs {
			event, err := DecodeEvent(msg.Body)
			if err != nil {
				c.logger.Error("[RABBITMQ] Dropping message: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed for %s (post %s): %v", event.Type, event.PostID, err)
				c.retryLater(msg)
				continue
			}

			msg.Ack(false)
		}
		c.logger.Warn("[RABBITMQ] Delivery channel for %s closed", ContentEventQueue)
	}()

	return nil
}

// retryLater moves a failed delivery to the delayed retry queue, or to the
// dead letter queue once it has used up its attempts.
func (c *Client) retryLater(msg amqp.Delivery) {
	attempt, target := nextAttempt(msg.Headers)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := c.channel.PublishWithContext(ctx,
		"",     // default exchange
		target, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  msg.ContentType,
			Body:         msg.Body,
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{retryCountHeader: int32(attempt)},
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to move message to %s: %v", target, err)
		msg.Nack(false, true)
		return
	}

	if target == ContentDeadQueue {
		c.logger.Warn("[RABBITMQ] Parked message in %s after %d attempts", target, attempt)
	}
	msg.Ack(false)
}

// nextAttempt returns the attempt number of the redelivery and the queue it
// goes to.
func nextAttempt(headers amqp.Table) (int, string) {
	attempt := 1
	switch v := headers[retryCountHeader].(type) {
	case int32:
		attempt = int(v) + 1
	case int64:
		attempt = int(v) + 1
	case int:
		attempt = v + 1
	}
	if attempt >= maxDeliveryAttempts {
		return attempt, ContentDeadQueue
	}
	return attempt, ContentRetryQueue
}

// QueueLength returns the number of ready messages waiting in the events queue.
func (c *Client) QueueLength() (int, error) {
	q, err := c.channel.QueueDeclarePassive(ContentEventQueue, true, false, false, false, nil)
	if err != nil {
		return 0, err
	}
	return q.Messages, nil
}
