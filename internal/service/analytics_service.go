package service

import (
	"context"
	"sort"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// AnalyticsService aggregates usage data from the repositories. Rows only;
// rendering and export stay with the caller.
type AnalyticsService struct {
	users     repository.Repository[models.User]
	labs      repository.Repository[models.Lab]
	equipment repository.Repository[models.Equipment]
	bookings  repository.Repository[models.Booking]
	requests  repository.Repository[models.AccessRequest]
}

func NewAnalyticsService(
	users repository.Repository[models.User],
	labs repository.Repository[models.Lab],
	equipment repository.Repository[models.Equipment],
	bookings repository.Repository[models.Booking],
	requests repository.Repository[models.AccessRequest],
) *AnalyticsService {
	return &AnalyticsService{
		users:     users,
		labs:      labs,
		equipment: equipment,
		bookings:  bookings,
		requests:  requests,
	}
}

func (s *AnalyticsService) roleByUser(ctx context.Context) (map[string]string, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	roles := make(map[string]string, len(users))
	for _, u := range users {
		roles[u.ID] = string(u.Role)
	}
	return roles, nil
}

// GetBookingVolumeByRoleAndHour counts bookings overlapping [from, to),
// bucketed by the booker's role and the booking's starting hour.
func (s *AnalyticsService) GetBookingVolumeByRoleAndHour(ctx context.Context, from, to time.Time) ([]models.BookingVolumeByRoleHour, error) {
	roles, err := s.roleByUser(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.Query(ctx, func(b *models.Booking) bool { return b.Overlaps(from, to) })
	if err != nil {
		return nil, err
	}

	type key struct {
		role string
		hour int
	}
	counts := make(map[key]int)
	for _, b := range bookings {
		role, ok := roles[b.UserID]
		if !ok {
			role = "unknown"
		}
		counts[key{role, b.Start.Hour()}]++
	}

	rows := make([]models.BookingVolumeByRoleHour, 0, len(counts))
	for k, c := range counts {
		rows = append(rows, models.BookingVolumeByRoleHour{Role: k.role, Hour: k.hour, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Role != rows[j].Role {
			return rows[i].Role < rows[j].Role
		}
		return rows[i].Hour < rows[j].Hour
	})
	return rows, nil
}

// GetAccessApprovalRateByRole reports approved vs. total requests submitted
// within [from, to], grouped by requester role, busiest roles first.
func (s *AnalyticsService) GetAccessApprovalRateByRole(ctx context.Context, from, to time.Time) ([]models.ApprovalRateByRole, error) {
	roles, err := s.roleByUser(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requests.Query(ctx, func(r *models.AccessRequest) bool {
		return !r.SubmittedAt.Before(from) && !r.SubmittedAt.After(to)
	})
	if err != nil {
		return nil, err
	}

	approved := make(map[string]int)
	total := make(map[string]int)
	for _, r := range requests {
		role, ok := roles[r.UserID]
		if !ok {
			role = "unknown"
		}
		total[role]++
		if r.Status == models.AccessRequestApproved {
			approved[role]++
		}
	}

	rows := make([]models.ApprovalRateByRole, 0, len(total))
	for role, t := range total {
		rows = append(rows, models.ApprovalRateByRole{Role: role, Approved: approved[role], Total: t})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows, nil
}

// GetAverageInductionScoreByLab averages scored requests per lab, highest
// average first.
func (s *AnalyticsService) GetAverageInductionScoreByLab(ctx context.Context) ([]models.AverageInductionScoreByLab, error) {
	labs, err := s.labs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	labNames := make(map[string]string, len(labs))
	for _, l := range labs {
		labNames[l.ID] = l.Name
	}

	requests, err := s.requests.Query(ctx, func(r *models.AccessRequest) bool { return r.Score != nil })
	if err != nil {
		return nil, err
	}

	sum := make(map[string]int)
	count := make(map[string]int)
	for _, r := range requests {
		sum[r.LabID] += *r.Score
		count[r.LabID]++
	}

	rows := make([]models.AverageInductionScoreByLab, 0, len(sum))
	for labID, total := range sum {
		name, ok := labNames[labID]
		if !ok {
			name = "unknown"
		}
		rows = append(rows, models.AverageInductionScoreByLab{
			LabID:        labID,
			LabName:      name,
			AverageScore: float64(total) / float64(count[labID]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AverageScore > rows[j].AverageScore })
	return rows, nil
}

// GetEquipmentBookedHoursByWeek sums booked hours per equipment per ISO week
// for bookings overlapping [from, to).
func (s *AnalyticsService) GetEquipmentBookedHoursByWeek(ctx context.Context, from, to time.Time) ([]models.EquipmentBookedHoursByWeek, error) {
	equipment, err := s.equipment.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(equipment))
	for _, e := range equipment {
		names[e.ID] = e.Name
	}

	bookings, err := s.bookings.Query(ctx, func(b *models.Booking) bool {
		return b.EquipmentID != "" && b.Overlaps(from, to)
	})
	if err != nil {
		return nil, err
	}

	type key struct {
		equipmentID string
		week        int
	}
	hours := make(map[key]float64)
	for _, b := range bookings {
		_, week := b.Start.ISOWeek()
		hours[key{b.EquipmentID, week}] += b.End.Sub(b.Start).Hours()
	}

	rows := make([]models.EquipmentBookedHoursByWeek, 0, len(hours))
	for k, h := range hours {
		name, ok := names[k.equipmentID]
		if !ok {
			name = "unknown"
		}
		rows = append(rows, models.EquipmentBookedHoursByWeek{
			EquipmentID:   k.equipmentID,
			EquipmentName: name,
			ISOWeek:       k.week,
			Hours:         h,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EquipmentID != rows[j].EquipmentID {
			return rows[i].EquipmentID < rows[j].EquipmentID
		}
		return rows[i].ISOWeek < rows[j].ISOWeek
	})
	return rows, nil
}
