package service

import (
	"context"
	"fmt"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/events"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// SchedulingService detects interval overlaps and admits bookings. The
// conflict check and insert run under a per-resource lock so at most one
// booking wins a contested slot.
type SchedulingService struct {
	bookings  repository.Repository[models.Booking]
	publisher events.Publisher
	slots     *keyedMutex
}

func NewSchedulingService(bookings repository.Repository[models.Booking], publisher events.Publisher) *SchedulingService {
	return &SchedulingService{
		bookings:  bookings,
		publisher: publisher,
		slots:     newKeyedMutex(),
	}
}

func resourceKey(labID, equipmentID string) string {
	if equipmentID != "" {
		return "equipment:" + equipmentID
	}
	return "lab:" + labID
}

// GetBookingsForResource lists bookings on the selected resource whose
// [Start, End) overlaps [from, to).
func (s *SchedulingService) GetBookingsForResource(ctx context.Context, labID, equipmentID string, from, to time.Time) ([]*models.Booking, error) {
	return s.bookings.Query(ctx, func(b *models.Booking) bool {
		if labID != "" && b.LabID != labID {
			return false
		}
		if equipmentID != "" && b.EquipmentID != equipmentID {
			return false
		}
		return b.Overlaps(from, to)
	})
}

// HasConflict reports whether any other non-Rejected booking on the exact
// same resource overlaps the candidate's interval. Touching endpoints do not
// conflict; a Rejected booking never counts as a conflict source.
func (s *SchedulingService) HasConflict(ctx context.Context, candidate *models.Booking) (bool, error) {
	overlaps, err := s.bookings.Query(ctx, func(b *models.Booking) bool {
		return b.ID != candidate.ID &&
			b.Status != models.BookingRejected &&
			b.LabID == candidate.LabID &&
			b.EquipmentID == candidate.EquipmentID &&
			b.Overlaps(candidate.Start, candidate.End)
	})
	if err != nil {
		return false, err
	}
	return len(overlaps) > 0, nil
}

// TryCreateBooking validates the candidate, checks for conflicts, and
// persists it as Confirmed. Exactly one of LabID/EquipmentID must be set.
func (s *SchedulingService) TryCreateBooking(ctx context.Context, candidate *models.Booking) error {
	if !candidate.Start.Before(candidate.End) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	if (candidate.LabID == "") == (candidate.EquipmentID == "") {
		return fmt.Errorf("%w: select a lab or equipment", ErrInvalidInput)
	}

	key := resourceKey(candidate.LabID, candidate.EquipmentID)
	s.slots.Lock(key)
	defer s.slots.Unlock(key)

	conflict, err := s.HasConflict(ctx, candidate)
	if err != nil {
		return err
	}
	if conflict {
		return fmt.Errorf("%w: time slot conflicts with an existing booking", ErrConflict)
	}

	candidate.Status = models.BookingConfirmed
	if _, err := s.bookings.Add(ctx, candidate); err != nil {
		return fmt.Errorf("error saving booking: %w", err)
	}
	s.publisher.PublishBookingConfirmed(ctx, candidate.ID, candidate.UserID, candidate.LabID, candidate.EquipmentID)
	return nil
}

// GetConflicts is the advisory "what's in the way" query: non-Rejected
// bookings on the lab OR the equipment overlapping [start, end). It has no
// create-time authority; that belongs to HasConflict.
func (s *SchedulingService) GetConflicts(ctx context.Context, labID, equipmentID string, start, end time.Time) ([]*models.Booking, error) {
	return s.bookings.Query(ctx, func(b *models.Booking) bool {
		if b.Status == models.BookingRejected {
			return false
		}
		onResource := (labID != "" && b.LabID == labID) || (equipmentID != "" && b.EquipmentID == equipmentID)
		return onResource && b.Overlaps(start, end)
	})
}

// RejectBooking marks a booking Rejected so it no longer blocks the slot.
// One-way transition.
func (s *SchedulingService) RejectBooking(ctx context.Context, bookingID string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("%w: booking %s", ErrNotFound, bookingID)
	}
	if booking.Status == models.BookingRejected {
		return fmt.Errorf("%w: booking already rejected", ErrInvalidState)
	}
	booking.Status = models.BookingRejected
	return s.bookings.Update(ctx, booking)
}
