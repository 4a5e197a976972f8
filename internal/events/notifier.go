package events

import (
	"context"
	"log"
)

// Notifier delivers a fire-and-forget message to a user. The engine never
// retries and never fails an operation because a notification failed.
type Notifier interface {
	Notify(ctx context.Context, userID, subject, body string)
}

// Publisher emits domain events alongside user notifications. Same
// fire-and-forget contract as Notify: a publish failure never fails the
// operation that produced the event.
type Publisher interface {
	Notifier
	PublishAccessDecided(ctx context.Context, requestID, userID, labID, decision string)
	PublishBookingConfirmed(ctx context.Context, bookingID, userID, labID, equipmentID string)
}

// ConsoleNotifier logs notifications and events locally. Used when RabbitMQ
// is not configured and in tests.
type ConsoleNotifier struct{}

func (ConsoleNotifier) Notify(ctx context.Context, userID, subject, body string) {
	log.Printf("[NOTIFY] user=%s subject=%q body=%q", userID, subject, body)
}

func (ConsoleNotifier) PublishAccessDecided(ctx context.Context, requestID, userID, labID, decision string) {
	log.Printf("[EVENT] %s request=%s user=%s lab=%s decision=%s", AccessDecided, requestID, userID, labID, decision)
}

func (ConsoleNotifier) PublishBookingConfirmed(ctx context.Context, bookingID, userID, labID, equipmentID string) {
	log.Printf("[EVENT] %s booking=%s user=%s lab=%s equipment=%s", BookingConfirmed, bookingID, userID, labID, equipmentID)
}
