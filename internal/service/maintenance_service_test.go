package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

func newTestMaintenanceService(stores *testStores) *MaintenanceService {
	return NewMaintenanceService(
		repository.NewMemoryRepository[models.MaintenanceTask, *models.MaintenanceTask](),
		stores.equipment,
	)
}

func TestCreateTaskNeedsExistingEquipment(t *testing.T) {
	ctx := context.Background()
	maintenance := newTestMaintenanceService(newTestStores())

	_, err := maintenance.CreateTask(ctx, "missing-eq", "calibration", "", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteTaskOneWay(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	maintenance := newTestMaintenanceService(stores)

	printer, _ := stores.equipment.Add(ctx, &models.Equipment{LabID: "lab-1", Name: "3D printer"})
	task, err := maintenance.CreateTask(ctx, printer.ID, "calibration", "nozzle drift", time.Now().Add(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != models.MaintenanceOpen {
		t.Errorf("expected open, got %s", task.Status)
	}

	if err := maintenance.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := maintenance.CompleteTask(ctx, task.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState on second completion, got %v", err)
	}

	if err := maintenance.CompleteTask(ctx, "missing-task"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListTasksDueOrderAndOpenFilter(t *testing.T) {
	ctx := context.Background()
	stores := newTestStores()
	maintenance := newTestMaintenanceService(stores)

	printer, _ := stores.equipment.Add(ctx, &models.Equipment{LabID: "lab-1", Name: "3D printer"})

	base := time.Now().UTC()
	late, _ := maintenance.CreateTask(ctx, printer.ID, "inspection", "", base.Add(48*time.Hour))
	soon, _ := maintenance.CreateTask(ctx, printer.ID, "calibration", "", base.Add(2*time.Hour))
	maintenance.CompleteTask(ctx, late.ID)

	all, err := maintenance.ListTasks(ctx, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].ID != soon.ID {
		t.Errorf("expected soonest due first, got %+v", all)
	}

	open, _ := maintenance.ListTasks(ctx, true)
	if len(open) != 1 || open[0].ID != soon.ID {
		t.Errorf("expected only the open task, got %d", len(open))
	}
}
