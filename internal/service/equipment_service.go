package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// EquipmentService manages equipment records. Equipment always belongs to
// exactly one lab.
type EquipmentService struct {
	equipment repository.Repository[models.Equipment]
	labs      repository.Repository[models.Lab]
}

func NewEquipmentService(equipment repository.Repository[models.Equipment], labs repository.Repository[models.Lab]) *EquipmentService {
	return &EquipmentService{equipment: equipment, labs: labs}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, eq *models.Equipment) (*models.Equipment, error) {
	if eq.Name == "" {
		return nil, fmt.Errorf("%w: equipment name is required", ErrInvalidInput)
	}
	if _, err := s.labs.GetByID(ctx, eq.LabID); err != nil {
		return nil, fmt.Errorf("%w: lab %s", ErrNotFound, eq.LabID)
	}
	if eq.Kind == "" {
		eq.Kind = models.EquipmentKindGeneral
	}
	eq.CreatedAt = int(time.Now().Unix())
	return s.equipment.Add(ctx, eq)
}

func (s *EquipmentService) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	eq, err := s.equipment.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: equipment %s", ErrNotFound, id)
	}
	return eq, err
}

func (s *EquipmentService) ListEquipment(ctx context.Context, labID string) ([]*models.Equipment, error) {
	if labID == "" {
		return s.equipment.GetAll(ctx)
	}
	return s.equipment.Query(ctx, func(e *models.Equipment) bool { return e.LabID == labID })
}

// OwningLab resolves the equipment's lab record on demand. No cached
// back-reference.
func (s *EquipmentService) OwningLab(ctx context.Context, equipmentID string) (*models.Lab, error) {
	eq, err := s.GetEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	lab, err := s.labs.GetByID(ctx, eq.LabID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: lab %s for equipment %s", ErrNotFound, eq.LabID, equipmentID)
	}
	return lab, err
}
