package events

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	// UserNotified carries a user-facing message out of the service.
	UserNotified EventType = "notification.user"
	// AccessDecided is published when an access request is approved or rejected.
	AccessDecided EventType = "access.decided"
	// BookingConfirmed is published when a booking wins its slot.
	BookingConfirmed EventType = "booking.confirmed"
)

type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Version   string    `json:"version"`
}

func newBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		ID:        primitive.NewObjectID().Hex(),
		Type:      t,
		Timestamp: time.Now().Unix(),
		Version:   "1.0",
	}
}

type UserNotificationEvent struct {
	BaseEvent
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func NewUserNotificationEvent(userID, subject, body string) *UserNotificationEvent {
	return &UserNotificationEvent{
		BaseEvent: newBaseEvent(UserNotified),
		UserID:    userID,
		Subject:   subject,
		Body:      body,
	}
}

func (e *UserNotificationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type AccessDecidedEvent struct {
	BaseEvent
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	LabID     string `json:"lab_id"`
	Decision  string `json:"decision"`
}

func NewAccessDecidedEvent(requestID, userID, labID, decision string) *AccessDecidedEvent {
	return &AccessDecidedEvent{
		BaseEvent: newBaseEvent(AccessDecided),
		RequestID: requestID,
		UserID:    userID,
		LabID:     labID,
		Decision:  decision,
	}
}

func (e *AccessDecidedEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type BookingConfirmedEvent struct {
	BaseEvent
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	LabID       string `json:"lab_id,omitempty"`
	EquipmentID string `json:"equipment_id,omitempty"`
}

func NewBookingConfirmedEvent(bookingID, userID, labID, equipmentID string) *BookingConfirmedEvent {
	return &BookingConfirmedEvent{
		BaseEvent:   newBaseEvent(BookingConfirmed),
		BookingID:   bookingID,
		UserID:      userID,
		LabID:       labID,
		EquipmentID: equipmentID,
	}
}

func (e *BookingConfirmedEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
