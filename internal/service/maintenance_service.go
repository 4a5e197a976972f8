package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// MaintenanceService tracks maintenance tasks against equipment.
type MaintenanceService struct {
	tasks     repository.Repository[models.MaintenanceTask]
	equipment repository.Repository[models.Equipment]
}

func NewMaintenanceService(tasks repository.Repository[models.MaintenanceTask], equipment repository.Repository[models.Equipment]) *MaintenanceService {
	return &MaintenanceService{tasks: tasks, equipment: equipment}
}

func (s *MaintenanceService) CreateTask(ctx context.Context, equipmentID, taskType, notes string, dueDate time.Time) (*models.MaintenanceTask, error) {
	if _, err := s.equipment.GetByID(ctx, equipmentID); err != nil {
		return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, equipmentID)
	}
	return s.tasks.Add(ctx, &models.MaintenanceTask{
		EquipmentID: equipmentID,
		DueDate:     dueDate,
		Type:        taskType,
		Notes:       notes,
		Status:      models.MaintenanceOpen,
	})
}

// CompleteTask is a one-way Open -> Completed transition.
func (s *MaintenanceService) CompleteTask(ctx context.Context, taskID string) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: maintenance task %s", ErrNotFound, taskID)
	}
	if err != nil {
		return err
	}
	if task.Status != models.MaintenanceOpen {
		return fmt.Errorf("%w: task already completed", ErrInvalidState)
	}
	task.Status = models.MaintenanceCompleted
	return s.tasks.Update(ctx, task)
}

// ListTasks returns tasks, optionally only open ones, soonest due first.
func (s *MaintenanceService) ListTasks(ctx context.Context, openOnly bool) ([]*models.MaintenanceTask, error) {
	tasks, err := s.tasks.Query(ctx, func(t *models.MaintenanceTask) bool {
		return !openOnly || t.Status == models.MaintenanceOpen
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].DueDate.Before(tasks[j].DueDate) })
	return tasks, nil
}
