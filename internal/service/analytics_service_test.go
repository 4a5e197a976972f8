package service

import (
	"context"
	"testing"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

func newTestAnalyticsService(stores *testStores) *AnalyticsService {
	return NewAnalyticsService(stores.users, stores.labs, stores.equipment, stores.bookings, stores.requests)
}

func scoreOf(n int) *int { return &n }

func TestBookingVolumeByRoleAndHour(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	analytics := newTestAnalyticsService(stores)

	student, _ := stores.users.Add(ctx, &models.User{Name: "S", Role: models.RoleStudent})
	staff, _ := stores.users.Add(ctx, &models.User{Name: "T", Role: models.RoleStaff})

	stores.bookings.Add(ctx, &models.Booking{LabID: "lab-1", UserID: student.ID, Start: at(9), End: at(10), Status: models.BookingConfirmed})
	stores.bookings.Add(ctx, &models.Booking{LabID: "lab-1", UserID: student.ID, Start: at(9), End: at(11), Status: models.BookingConfirmed})
	stores.bookings.Add(ctx, &models.Booking{LabID: "lab-1", UserID: staff.ID, Start: at(14), End: at(15), Status: models.BookingConfirmed})
	// Outside the window.
	stores.bookings.Add(ctx, &models.Booking{LabID: "lab-1", UserID: staff.ID, Start: at(20), End: at(21), Status: models.BookingConfirmed})

	rows, err := analytics.GetBookingVolumeByRoleAndHour(ctx, at(8), at(16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(rows))
	}
	// Sorted by role then hour.
	if rows[0].Role != "staff" || rows[0].Hour != 14 || rows[0].Count != 1 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Role != "student" || rows[1].Hour != 9 || rows[1].Count != 2 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestAccessApprovalRateByRole(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	analytics := newTestAnalyticsService(stores)

	student, _ := stores.users.Add(ctx, &models.User{Name: "S", Role: models.RoleStudent})
	researcher, _ := stores.users.Add(ctx, &models.User{Name: "R", Role: models.RoleResearcher})

	now := time.Now().UTC()
	add := func(userID string, status models.AccessRequestStatus) {
		stores.requests.Add(ctx, &models.AccessRequest{
			UserID: userID, LabID: "lab-1", SubmittedAt: now, Status: status,
		})
	}
	add(student.ID, models.AccessRequestApproved)
	add(student.ID, models.AccessRequestApproved)
	add(student.ID, models.AccessRequestRejected)
	add(researcher.ID, models.AccessRequestApproved)

	rows, err := analytics.GetAccessApprovalRateByRole(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(rows))
	}
	// Busiest role first.
	if rows[0].Role != "student" || rows[0].Approved != 2 || rows[0].Total != 3 {
		t.Errorf("unexpected student row: %+v", rows[0])
	}
	if rows[1].Role != "researcher" || rows[1].Approved != 1 || rows[1].Total != 1 {
		t.Errorf("unexpected researcher row: %+v", rows[1])
	}
}

func TestAverageInductionScoreByLab(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	analytics := newTestAnalyticsService(stores)

	lab, _ := stores.labs.Add(ctx, &models.Lab{Name: "Maker Space", Kind: models.LabKindGeneral})

	stores.requests.Add(ctx, &models.AccessRequest{UserID: "u1", LabID: lab.ID, Score: scoreOf(100)})
	stores.requests.Add(ctx, &models.AccessRequest{UserID: "u2", LabID: lab.ID, Score: scoreOf(50)})
	// Unscored requests are excluded.
	stores.requests.Add(ctx, &models.AccessRequest{UserID: "u3", LabID: lab.ID})

	rows, err := analytics.GetAverageInductionScoreByLab(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 lab, got %d", len(rows))
	}
	if rows[0].LabName != "Maker Space" || rows[0].AverageScore != 75 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestEquipmentBookedHoursByWeek(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	analytics := newTestAnalyticsService(stores)

	printer, _ := stores.equipment.Add(ctx, &models.Equipment{LabID: "lab-1", Name: "3D printer", Kind: models.EquipmentKindGeneral})

	stores.bookings.Add(ctx, &models.Booking{EquipmentID: printer.ID, UserID: "u1", Start: at(9), End: at(11), Status: models.BookingConfirmed})
	stores.bookings.Add(ctx, &models.Booking{EquipmentID: printer.ID, UserID: "u2", Start: at(14), End: at(15), Status: models.BookingConfirmed})
	// Lab bookings never count as equipment hours.
	stores.bookings.Add(ctx, &models.Booking{LabID: "lab-1", UserID: "u1", Start: at(9), End: at(17), Status: models.BookingConfirmed})

	rows, err := analytics.GetEquipmentBookedHoursByWeek(ctx, at(0), at(23))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].EquipmentName != "3D printer" || rows[0].Hours != 3 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
	_, week := at(9).ISOWeek()
	if rows[0].ISOWeek != week {
		t.Errorf("expected ISO week %d, got %d", week, rows[0].ISOWeek)
	}
}
