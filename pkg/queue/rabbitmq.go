package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"pilates-club/pkg/config"
	"pilates-club/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	WatchLogQueueName  = "watch_log_queue"
	WatchLogExchange   = "watch_logs"
	WatchLogRoutingKey = "content_watched"
)

// WatchEvent is published each time a member opens a watch page.
type WatchEvent struct {
	MemberID  string    `json:"member_id"`
	ContentID string    `json:"content_id"`
	WatchedAt time.Time `json:"watched_at"`
}

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

	err = channel.ExchangeDeclare(
		WatchLogExchange, // name
		"direct",         // type
		true,             // durable
		false,            // auto-deleted
		false,            // internal
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		WatchLogQueueName, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		WatchLogQueueName,  // queue name
		WatchLogRoutingKey, // routing key
		WatchLogExchange,   // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
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

// EncodeWatchEvent and DecodeWatchEvent define the message body format.
func EncodeWatchEvent(event WatchEvent) ([]byte, error) {
	if event.MemberID == "" || event.ContentID == "" {
		return nil, fmt.Errorf("watch event requires member_id and content_id")
	}
	return json.Marshal(event)
}

func DecodeWatchEvent(body []byte) (WatchEvent, error) {
	var event WatchEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return WatchEvent{}, fmt.Errorf("failed to unmarshal watch event: %w", err)
	}
	if event.MemberID == "" || event.ContentID == "" {
		return WatchEvent{}, fmt.Errorf("watch event requires member_id and content_id")
	}
	return event, nil
}

func (c *Client) PublishWatchEvent(event WatchEvent) error {
	body, err := EncodeWatchEvent(event)
	if err != nil {
		return err
	}

	err = c.channel.Publish(
		WatchLogExchange,   // exchange
		WatchLogRoutingKey, // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish watch event for content=%s: %v", event.ContentID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published watch event member=%s content=%s", event.MemberID, event.ContentID)
	return nil
}

// ConsumeWatchEvents delivers queued watch events to handler. Watch logs are
// best effort: a message that cannot be decoded or stored is rejected without
// requeue, so the broker drops it or routes it to a dead-letter exchange when
// one is configured by policy.
func (c *Client) ConsumeWatchEvents(handler func(event WatchEvent) error) error {
	msgs, err := c.channel.Consume(
		WatchLogQueueName, // queue
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

	c.logger.Info("[RABBITMQ] Started consuming from queue: %s", WatchLogQueueName)

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
		c.logger.Info("[RABBITMQ] Consumer for %s stopped", WatchLogQueueName)
	}()

	return nil
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(event WatchEvent) error) {
	event, err := DecodeWatchEvent(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping watch event: %v, body=%s", err, string(msg.Body))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Warn("[RABBITMQ] Failed to nack delivery %d: %v", msg.DeliveryTag, nackErr)
		}
		return
	}

	if err := handler(event); err != nil {
		c.logger.Error("[RABBITMQ] Dropping watch event member=%s content=%s: %v", event.MemberID, event.ContentID, err)
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Warn("[RABBITMQ] Failed to nack delivery %d: %v", msg.DeliveryTag, nackErr)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		c.logger.Warn("[RABBITMQ] Failed to ack delivery %d: %v", msg.DeliveryTag, err)
	}
}

// GetQueueLength returns the number of messages in the queue
func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(WatchLogQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
