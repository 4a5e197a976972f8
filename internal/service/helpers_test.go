package service

import (
	"context"
	"sync"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

type sentNote struct {
	UserID  string
	Subject string
	Body    string
}

type sentEvent struct {
	Kind        string
	RequestID   string
	BookingID   string
	UserID      string
	LabID       string
	EquipmentID string
	Decision    string
}

// stubNotifier records notifications and domain events for assertions.
type stubNotifier struct {
	mu     sync.Mutex
	notes  []sentNote
	events []sentEvent
}

func (n *stubNotifier) Notify(ctx context.Context, userID, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, sentNote{UserID: userID, Subject: subject, Body: body})
}

func (n *stubNotifier) PublishAccessDecided(ctx context.Context, requestID, userID, labID, decision string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{
		Kind: "access.decided", RequestID: requestID, UserID: userID, LabID: labID, Decision: decision,
	})
}

func (n *stubNotifier) PublishBookingConfirmed(ctx context.Context, bookingID, userID, labID, equipmentID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{
		Kind: "booking.confirmed", BookingID: bookingID, UserID: userID, LabID: labID, EquipmentID: equipmentID,
	})
}

func (n *stubNotifier) sent() []sentNote {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentNote(nil), n.notes...)
}

func (n *stubNotifier) published() []sentEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentEvent(nil), n.events...)
}

type testStores struct {
	users     *repository.MemoryRepository[models.User, *models.User]
	labs      *repository.MemoryRepository[models.Lab, *models.Lab]
	equipment *repository.MemoryRepository[models.Equipment, *models.Equipment]
	tests     *repository.MemoryRepository[models.InductionTest, *models.InductionTest]
	requests  *repository.MemoryRepository[models.AccessRequest, *models.AccessRequest]
	grants    *repository.MemoryRepository[models.AccessGrant, *models.AccessGrant]
	bookings  *repository.MemoryRepository[models.Booking, *models.Booking]
}

func newTestStores() *testStores {
	return &testStores{
		users:     repository.NewMemoryRepository[models.User, *models.User](),
		labs:      repository.NewMemoryRepository[models.Lab, *models.Lab](),
		equipment: repository.NewMemoryRepository[models.Equipment, *models.Equipment](),
		tests:     repository.NewMemoryRepository[models.InductionTest, *models.InductionTest](),
		requests:  repository.NewMemoryRepository[models.AccessRequest, *models.AccessRequest](),
		grants:    repository.NewMemoryRepository[models.AccessGrant, *models.AccessGrant](),
		bookings:  repository.NewMemoryRepository[models.Booking, *models.Booking](),
	}
}

func newTestAccessService(stores *testStores, notifier *stubNotifier) *AccessService {
	return NewAccessService(stores.requests, stores.grants, stores.tests, NewInductionService(), notifier)
}

func newTestSchedulingService(stores *testStores, notifier *stubNotifier) *SchedulingService {
	return NewSchedulingService(stores.bookings, notifier)
}

// twoQuestionTest needs both answers right to reach the default threshold.
func twoQuestionTest(labID string) *models.InductionTest {
	return &models.InductionTest{
		LabID: labID,
		Questions: []models.Question{
			{Text: "Where is the fire exit?", Options: []string{"North door", "South door"}, CorrectOptionIndex: 0},
			{Text: "PPE required?", Options: []string{"No", "Yes"}, CorrectOptionIndex: 1},
		},
		PassThresholdPercentage: models.DefaultPassThreshold,
	}
}
