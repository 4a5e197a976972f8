package models

type EquipmentKind string

const (
	EquipmentKindGeneral          EquipmentKind = "general"
	EquipmentKindSolderingStation EquipmentKind = "soldering_station"
	EquipmentKindMotionPlatform   EquipmentKind = "motion_platform"
	EquipmentKindRobotArm         EquipmentKind = "robot_arm"
)

// supervisionByKind replaces per-subtype RequiresSupervisor overrides with a
// static lookup.
var supervisionByKind = map[EquipmentKind]bool{
	EquipmentKindGeneral:          false,
	EquipmentKindSolderingStation: true,
	EquipmentKindMotionPlatform:   true,
	EquipmentKindRobotArm:         true,
}

type Equipment struct {
	ID         string        `bson:"_id,omitempty" json:"id"`
	LabID      string        `bson:"labId" json:"labId" validate:"required"`
	Name       string        `bson:"name" json:"name" validate:"required"`
	Kind       EquipmentKind `bson:"kind" json:"kind"`
	IsBookable bool          `bson:"isBookable" json:"isBookable"`
	SafetyTags []string      `bson:"safetyTags" json:"safetyTags"`
	CreatedAt  int           `bson:"createdAt" json:"createdAt"`
}

func (e *Equipment) GetID() string   { return e.ID }
func (e *Equipment) SetID(id string) { e.ID = id }

func (e *Equipment) RequiresSupervisor() bool {
	return supervisionByKind[e.Kind]
}

func (e *Equipment) HasSafetyTag(tag string) bool {
	for _, t := range e.SafetyTags {
		if t == tag {
			return true
		}
	}
	return false
}
