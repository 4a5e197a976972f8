package models

// Team is referenced by requests and bookings for attribution only.
type Team struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name" validate:"required"`
	ProjectName string   `bson:"projectName" json:"projectName"`
	MemberIDs   []string `bson:"memberIds" json:"memberIds"`
}

func (t *Team) GetID() string   { return t.ID }
func (t *Team) SetID(id string) { t.ID = id }
