package models

import "time"

type AccessRequestStatus string

const (
	AccessRequestDraft    AccessRequestStatus = "draft"
	AccessRequestPending  AccessRequestStatus = "pending"
	AccessRequestApproved AccessRequestStatus = "approved"
	AccessRequestRejected AccessRequestStatus = "rejected"
)

// AccessRequest is never deleted; rejected and approved requests stay as the
// audit trail.
type AccessRequest struct {
	ID          string              `bson:"_id,omitempty" json:"id"`
	UserID      string              `bson:"userId" json:"userId" validate:"required"`
	LabID       string              `bson:"labId" json:"labId" validate:"required"`
	TeamID      string              `bson:"teamId,omitempty" json:"teamId,omitempty"`
	Reason      string              `bson:"reason" json:"reason"`
	SubmittedAt time.Time           `bson:"submittedAt" json:"submittedAt"`
	Status      AccessRequestStatus `bson:"status" json:"status"`
	Score       *int                `bson:"score,omitempty" json:"score,omitempty"`
}

func (r *AccessRequest) GetID() string   { return r.ID }
func (r *AccessRequest) SetID(id string) { r.ID = id }

// AccessGrant is immutable once created. Its presence for (user, lab) is the
// authoritative signal of standing access for non-privileged roles.
type AccessGrant struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	LabID     string    `bson:"labId" json:"labId"`
	GrantedAt time.Time `bson:"grantedAt" json:"grantedAt"`
}

func (g *AccessGrant) GetID() string   { return g.ID }
func (g *AccessGrant) SetID(id string) { g.ID = id }
