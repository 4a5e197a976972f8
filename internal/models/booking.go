package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
)

// Booking reserves exactly one resource: a lab or a piece of equipment.
// Status transitions are one-way.
type Booking struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	LabID       string        `bson:"labId,omitempty" json:"labId,omitempty"`
	EquipmentID string        `bson:"equipmentId,omitempty" json:"equipmentId,omitempty"`
	UserID      string        `bson:"userId" json:"userId" validate:"required"`
	TeamID      string        `bson:"teamId,omitempty" json:"teamId,omitempty"`
	Start       time.Time     `bson:"start" json:"start" validate:"required"`
	End         time.Time     `bson:"end" json:"end" validate:"required"`
	Purpose     string        `bson:"purpose" json:"purpose"`
	Status      BookingStatus `bson:"status" json:"status"`
}

func (b *Booking) GetID() string   { return b.ID }
func (b *Booking) SetID(id string) { b.ID = id }

// Overlaps reports half-open interval overlap: [Start, End) against [from, to).
// Touching endpoints do not overlap.
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.End.After(from) && b.Start.Before(to)
}
