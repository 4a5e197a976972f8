package models

type LabKind string

const (
	LabKindGeneral      LabKind = "general"
	LabKindElectrical   LabKind = "electrical"
	LabKindRobotics     LabKind = "robotics"
	LabKindMixedReality LabKind = "mixed_reality"
)

// requiredSafetyTagsByKind is static per kind; labs carry a kind discriminator
// instead of a subtype hierarchy.
var requiredSafetyTagsByKind = map[LabKind][]string{
	LabKindGeneral:      {},
	LabKindElectrical:   {"Electrical", "PPE"},
	LabKindRobotics:     {"Robotics", "EmergencyStop"},
	LabKindMixedReality: {"MR", "Motion"},
}

type Lab struct {
	ID                 string  `bson:"_id,omitempty" json:"id"`
	Name               string  `bson:"name" json:"name" validate:"required"`
	Location           string  `bson:"location" json:"location"`
	Kind               LabKind `bson:"kind" json:"kind"`
	ParentLabID        string  `bson:"parentLabId,omitempty" json:"parentLabId,omitempty"`
	OwnerID            string  `bson:"ownerId" json:"ownerId"`
	TechnicalManagerID string  `bson:"technicalManagerId" json:"technicalManagerId"`
	AcademicManagerID  string  `bson:"academicManagerId" json:"academicManagerId"`
	CreatedAt          int     `bson:"createdAt" json:"createdAt"`
}

func (l *Lab) GetID() string   { return l.ID }
func (l *Lab) SetID(id string) { l.ID = id }

func (l *Lab) RequiredSafetyTags() []string {
	if tags, ok := requiredSafetyTagsByKind[l.Kind]; ok {
		return tags
	}
	return nil
}
