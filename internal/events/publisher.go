package events

import (
	"context"
	"log"
)

// EventPublisher pushes domain events to RabbitMQ. When no URI is configured
// it stays disabled and drops events after logging them.
type EventPublisher struct {
	rabbitMQ *RabbitMQClient
	enabled  bool
}

func NewEventPublisher(rabbitURI string) (*EventPublisher, error) {
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event publishing is disabled")
		return &EventPublisher{rabbitMQ: nil, enabled: false}, nil
	}

	client, err := NewRabbitMQClient(rabbitURI)
	if err != nil {
		return nil, err
	}

	if err := client.setupExchange(); err != nil {
		client.Close()
		return nil, err
	}

	return &EventPublisher{rabbitMQ: client, enabled: true}, nil
}

// Notify implements Notifier over the topic exchange. Fire-and-forget:
// publish failures are logged and dropped.
func (p *EventPublisher) Notify(ctx context.Context, userID, subject, body string) {
	if !p.enabled {
		log.Printf("[NOTIFY] user=%s subject=%q body=%q", userID, subject, body)
		return
	}
	event := NewUserNotificationEvent(userID, subject, body)
	data, err := event.ToJSON()
	if err != nil {
		log.Printf("Failed to encode notification for user %s: %v", userID, err)
		return
	}
	if err := p.rabbitMQ.PublishEvent(string(UserNotified), data); err != nil {
		log.Printf("Failed to publish notification for user %s: %v", userID, err)
	}
}

// PublishAccessDecided emits access.decided after a request is finalized.
func (p *EventPublisher) PublishAccessDecided(ctx context.Context, requestID, userID, labID, decision string) {
	if !p.enabled {
		return
	}
	event := NewAccessDecidedEvent(requestID, userID, labID, decision)
	data, err := event.ToJSON()
	if err != nil {
		log.Printf("Failed to encode access decision for request %s: %v", requestID, err)
		return
	}
	if err := p.rabbitMQ.PublishEvent(string(AccessDecided), data); err != nil {
		log.Printf("Failed to publish access decision for request %s: %v", requestID, err)
	}
}

// PublishBookingConfirmed emits booking.confirmed after a booking wins its
// slot.
func (p *EventPublisher) PublishBookingConfirmed(ctx context.Context, bookingID, userID, labID, equipmentID string) {
	if !p.enabled {
		return
	}
	event := NewBookingConfirmedEvent(bookingID, userID, labID, equipmentID)
	data, err := event.ToJSON()
	if err != nil {
		log.Printf("Failed to encode confirmation for booking %s: %v", bookingID, err)
		return
	}
	if err := p.rabbitMQ.PublishEvent(string(BookingConfirmed), data); err != nil {
		log.Printf("Failed to publish confirmation for booking %s: %v", bookingID, err)
	}
}

func (p *EventPublisher) Close() {
	if p.rabbitMQ != nil {
		p.rabbitMQ.Close()
	}
}

var _ Publisher = (*EventPublisher)(nil)
var _ Publisher = ConsoleNotifier{}
