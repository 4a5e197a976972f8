package events

import (
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const notificationExchange = "lab-access-events"

// RabbitMQClient wraps one connection and channel. The reconnect goroutine
// and publishers touch the same fields, so all access goes through mu.
type RabbitMQClient struct {
	mu            sync.Mutex
	conn          *amqp.Connection
	channel       *amqp.Channel
	connectionURI string
	isConnected   bool
}

func NewRabbitMQClient(connectionURI string) (*RabbitMQClient, error) {
	client := &RabbitMQClient{
		connectionURI: connectionURI,
		isConnected:   false,
	}
	if err := client.connect(); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *RabbitMQClient) connect() error {
	conn, err := amqp.Dial(c.connectionURI)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open a channel: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.channel = channel
	c.isConnected = true
	c.mu.Unlock()

	go c.monitorConnection(conn, channel)

	return nil
}

func (c *RabbitMQClient) monitorConnection(conn *amqp.Connection, channel *amqp.Channel) {
	connCloseChan := make(chan *amqp.Error)
	conn.NotifyClose(connCloseChan)

	chanCloseChan := make(chan *amqp.Error)
	channel.NotifyClose(chanCloseChan)

	for {
		select {
		case err := <-connCloseChan:
			c.mu.Lock()
			c.isConnected = false
			c.mu.Unlock()
			log.Printf("RabbitMQ connection closed: %v, attempting to reconnect...", err)
			c.reconnect()
			return
		case err := <-chanCloseChan:
			c.mu.Lock()
			connected := c.isConnected
			c.mu.Unlock()
			if connected {
				log.Printf("RabbitMQ channel closed: %v, reopening...", err)
				c.reopenChannel()
			}
		}
	}
}

func (c *RabbitMQClient) reconnect() {
	backoff := 1 * time.Second
	maxBackoff := 30 * time.Second

	for {
		time.Sleep(backoff)

		err := c.connect()
		if err == nil {
			log.Println("Successfully reconnected to RabbitMQ")

			if err := c.setupExchange(); err != nil {
				log.Printf("Failed to setup exchange after reconnection: %v", err)
				continue
			}

			return
		}

		log.Printf("Failed to reconnect to RabbitMQ: %v", err)

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

func (c *RabbitMQClient) reopenChannel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil {
		c.channel.Close()
	}

	channel, err := c.conn.Channel()
	if err != nil {
		log.Printf("Failed to reopen channel: %v", err)
		return
	}
	c.channel = channel

	chanCloseChan := make(chan *amqp.Error)
	c.channel.NotifyClose(chanCloseChan)
}

func (c *RabbitMQClient) setupExchange() error {
	c.mu.Lock()
	channel := c.channel
	c.mu.Unlock()

	return channel.ExchangeDeclare(
		notificationExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
}

func (c *RabbitMQClient) PublishEvent(routingKey string, body []byte) error {
	c.mu.Lock()
	connected, channel := c.isConnected, c.channel
	c.mu.Unlock()

	if !connected {
		return fmt.Errorf("not connected to RabbitMQ")
	}
	return channel.Publish(
		notificationExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (c *RabbitMQClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isConnected = false
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
