package models

import "time"

type MaintenanceStatus string

const (
	MaintenanceOpen      MaintenanceStatus = "open"
	MaintenanceCompleted MaintenanceStatus = "completed"
)

type MaintenanceTask struct {
	ID          string            `bson:"_id,omitempty" json:"id"`
	EquipmentID string            `bson:"equipmentId" json:"equipmentId" validate:"required"`
	DueDate     time.Time         `bson:"dueDate" json:"dueDate"`
	Type        string            `bson:"type" json:"type"`
	Notes       string            `bson:"notes" json:"notes"`
	Status      MaintenanceStatus `bson:"status" json:"status"`
}

func (m *MaintenanceTask) GetID() string   { return m.ID }
func (m *MaintenanceTask) SetID(id string) { m.ID = id }
