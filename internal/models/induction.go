package models

// DefaultPassThreshold is the pass percentage applied when a test does not set
// its own.
const DefaultPassThreshold = 80

type Question struct {
	Text               string   `bson:"text" json:"text" validate:"required"`
	Options            []string `bson:"options" json:"options" validate:"required"`
	CorrectOptionIndex int      `bson:"correctOptionIndex" json:"correctOptionIndex"`
}

// InductionTest is the safety quiz gating first access to a lab. At most one
// test exists per lab.
type InductionTest struct {
	ID                      string     `bson:"_id,omitempty" json:"id"`
	LabID                   string     `bson:"labId" json:"labId" validate:"required"`
	Questions               []Question `bson:"questions" json:"questions"`
	PassThresholdPercentage int        `bson:"passThresholdPercentage" json:"passThresholdPercentage"`
}

func (t *InductionTest) GetID() string   { return t.ID }
func (t *InductionTest) SetID(id string) { t.ID = id }
