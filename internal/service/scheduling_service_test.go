package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2026, time.March, 2, hour, 0, 0, 0, time.UTC)
}

func labBooking(labID string, start, end time.Time) *models.Booking {
	return &models.Booking{
		LabID:  labID,
		UserID: "user-1",
		Start:  start,
		End:    end,
		Status: models.BookingPending,
	}
}

func TestTryCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	testCases := []struct {
		name    string
		booking *models.Booking
	}{
		{"end before start", labBooking("lab-1", at(11), at(9))},
		{"end equals start", labBooking("lab-1", at(9), at(9))},
		{"no resource", &models.Booking{UserID: "user-1", Start: at(9), End: at(10)}},
		{"both resources", &models.Booking{
			LabID: "lab-1", EquipmentID: "eq-1", UserID: "user-1", Start: at(9), End: at(10),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := scheduling.TryCreateBooking(ctx, tc.booking)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	all, _ := stores.bookings.GetAll(ctx)
	if len(all) != 0 {
		t.Errorf("store must be unmodified after invalid attempts, got %d bookings", len(all))
	}
}

func TestTryCreateBookingConfirms(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	booking := labBooking("lab-1", at(9), at(10))
	if err := scheduling.TryCreateBooking(ctx, booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", booking.Status)
	}
	if booking.ID == "" {
		t.Error("expected a minted booking id")
	}
}

func TestHasConflictHalfOpenIntervals(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	if err := scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(9), at(10))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Touching endpoints do not conflict.
	touching := labBooking("lab-1", at(10), at(11))
	conflict, err := scheduling.HasConflict(ctx, touching)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict {
		t.Error("09:00-10:00 and 10:00-11:00 must not conflict")
	}

	overlapping := labBooking("lab-1", at(9), at(11))
	if err := scheduling.TryCreateBooking(ctx, overlapping); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// 09:00-11:00 vs 10:00-12:00 overlaps once the first extends.
	stores.bookings.Add(ctx, &models.Booking{
		LabID: "lab-2", UserID: "user-1", Start: at(9), End: at(11), Status: models.BookingConfirmed,
	})
	late := labBooking("lab-2", at(10), at(12))
	conflict, _ = scheduling.HasConflict(ctx, late)
	if !conflict {
		t.Error("09:00-11:00 and 10:00-12:00 must conflict")
	}
}

func TestConflictScopedToExactResource(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	if err := scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(9), at(10))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Different lab, same time: fine.
	if err := scheduling.TryCreateBooking(ctx, labBooking("lab-2", at(9), at(10))); err != nil {
		t.Errorf("different lab must not conflict: %v", err)
	}

	// Equipment booking in the same window: a different resource.
	eqBooking := &models.Booking{EquipmentID: "eq-1", UserID: "user-1", Start: at(9), End: at(10)}
	if err := scheduling.TryCreateBooking(ctx, eqBooking); err != nil {
		t.Errorf("equipment booking must not conflict with lab booking: %v", err)
	}
}

func TestRejectedBookingNeverConflicts(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	first := labBooking("lab-1", at(9), at(11))
	if err := scheduling.TryCreateBooking(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := scheduling.RejectBooking(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := labBooking("lab-1", at(10), at(12))
	if err := scheduling.TryCreateBooking(ctx, second); err != nil {
		t.Errorf("overlapping a rejected booking must succeed, got %v", err)
	}

	if err := scheduling.RejectBooking(ctx, first.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState on double reject, got %v", err)
	}
}

func TestConcurrentBookingExactlyOneWins(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	const attempts = 16
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := labBooking("lab-1", at(9), at(10))
			b.Purpose = fmt.Sprintf("attempt-%d", i)
			errs[i] = scheduling.TryCreateBooking(ctx, b)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		if err == nil {
			winners++
		} else if !errors.Is(err, ErrConflict) {
			t.Errorf("attempt %d: unexpected error: %v", i, err)
		}
	}
	if winners != 1 {
		t.Errorf("exactly one booking must win the slot, got %d", winners)
	}

	all, _ := stores.bookings.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected one persisted booking, got %d", len(all))
	}
}

func TestBookingConfirmationPublished(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	notifier := &stubNotifier{}
	scheduling := newTestSchedulingService(stores, notifier)

	booking := labBooking("lab-1", at(9), at(10))
	if err := scheduling.TryCreateBooking(ctx, booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	published := notifier.published()
	if len(published) != 1 {
		t.Fatalf("expected one published event, got %d", len(published))
	}
	event := published[0]
	if event.Kind != "booking.confirmed" || event.BookingID != booking.ID || event.LabID != "lab-1" {
		t.Errorf("unexpected event: %+v", event)
	}

	// Losing attempts publish nothing.
	if err := scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(9), at(10))); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(11), at(11))); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(notifier.published()) != 1 {
		t.Errorf("rejected attempts must not publish, got %d events", len(notifier.published()))
	}
}

func TestGetBookingsForResource(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(9), at(10)))
	scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(14), at(15)))
	scheduling.TryCreateBooking(ctx, labBooking("lab-2", at(9), at(10)))

	morning, err := scheduling.GetBookingsForResource(ctx, "lab-1", "", at(8), at(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(morning) != 1 {
		t.Errorf("expected 1 morning booking on lab-1, got %d", len(morning))
	}

	// Window ending exactly at a booking's start excludes it.
	early, _ := scheduling.GetBookingsForResource(ctx, "lab-1", "", at(8), at(9))
	if len(early) != 0 {
		t.Errorf("half-open window must exclude touching booking, got %d", len(early))
	}
}

func TestGetConflictsAdvisoryQuery(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	scheduling := newTestSchedulingService(stores, &stubNotifier{})

	scheduling.TryCreateBooking(ctx, labBooking("lab-1", at(9), at(10)))
	eqBooking := &models.Booking{EquipmentID: "eq-1", UserID: "user-2", Start: at(9), End: at(10)}
	scheduling.TryCreateBooking(ctx, eqBooking)

	rejected := labBooking("lab-1", at(9), at(12))
	stores.bookings.Add(ctx, rejected)
	rejected.Status = models.BookingRejected
	stores.bookings.Update(ctx, rejected)

	// Lab OR equipment: both rows are in the way of a combined query.
	conflicts, err := scheduling.GetConflicts(ctx, "lab-1", "eq-1", at(9), at(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conflicts) != 2 {
		t.Errorf("expected 2 advisory conflicts, got %d", len(conflicts))
	}
}
