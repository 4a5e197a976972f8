package policy

import (
	"context"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

// GrantChecker reports whether a standing grant exists for (user, lab).
type GrantChecker func(ctx context.Context, userID, labID string) bool

// AccessPolicy decides lab entry and equipment use for one lab kind. Every
// variant keeps the grant as the sole authority for non-privileged entry;
// variants only tighten equipment rules.
type AccessPolicy interface {
	CanEnter(ctx context.Context, user *models.User, lab *models.Lab, at time.Time) bool
	CanUse(ctx context.Context, user *models.User, equipment *models.Equipment) bool
}

// Registry resolves the policy attached to a lab. A lab's policy is fixed by
// its kind at creation.
type Registry struct {
	byKind   map[models.LabKind]AccessPolicy
	fallback AccessPolicy
}

func NewRegistry(grants GrantChecker) *Registry {
	def := &DefaultAccessPolicy{Grants: grants}
	return &Registry{
		byKind: map[models.LabKind]AccessPolicy{
			models.LabKindGeneral:      def,
			models.LabKindElectrical:   &ElectricalAccessPolicy{DefaultAccessPolicy{Grants: grants}},
			models.LabKindRobotics:     &RoboticsAccessPolicy{DefaultAccessPolicy{Grants: grants}},
			models.LabKindMixedReality: &MixedRealityAccessPolicy{DefaultAccessPolicy{Grants: grants}},
		},
		fallback: def,
	}
}

func (r *Registry) ForLab(lab *models.Lab) AccessPolicy {
	if p, ok := r.byKind[lab.Kind]; ok {
		return p
	}
	return r.fallback
}

func isEntryPrivileged(role models.UserRole) bool {
	switch role {
	case models.RoleTechnicalLabManager, models.RoleAcademicLabManager, models.RoleProfessor, models.RoleAdmin:
		return true
	}
	return false
}

func isEquipmentPrivileged(role models.UserRole) bool {
	switch role {
	case models.RoleTechnicalLabManager, models.RoleProfessor, models.RoleAdmin:
		return true
	}
	return false
}

func isSupervisorOrHigher(role models.UserRole) bool {
	switch role {
	case models.RoleSupervisor, models.RoleTechnicalLabManager, models.RoleProfessor, models.RoleAdmin:
		return true
	}
	return false
}

// DefaultAccessPolicy: privileged roles bypass grants; everyone else needs a
// grant on the lab. Supervision-required equipment additionally needs a
// supervisor-or-higher role.
type DefaultAccessPolicy struct {
	Grants GrantChecker
}

func (p *DefaultAccessPolicy) CanEnter(ctx context.Context, user *models.User, lab *models.Lab, at time.Time) bool {
	if user == nil {
		return false
	}
	if isEntryPrivileged(user.Role) {
		return true
	}
	return p.Grants(ctx, user.ID, lab.ID)
}

func (p *DefaultAccessPolicy) CanUse(ctx context.Context, user *models.User, equipment *models.Equipment) bool {
	if user == nil {
		return false
	}
	if isEquipmentPrivileged(user.Role) {
		return true
	}
	if !p.Grants(ctx, user.ID, equipment.LabID) {
		return false
	}
	if equipment.RequiresSupervisor() {
		return isSupervisorOrHigher(user.Role)
	}
	return true
}

// ElectricalAccessPolicy: anything tagged Electrical is treated like
// supervision-required equipment even if its kind alone would not require it.
type ElectricalAccessPolicy struct {
	DefaultAccessPolicy
}

func (p *ElectricalAccessPolicy) CanUse(ctx context.Context, user *models.User, equipment *models.Equipment) bool {
	if !p.DefaultAccessPolicy.CanUse(ctx, user, equipment) {
		return false
	}
	if user != nil && !isEquipmentPrivileged(user.Role) && equipment.HasSafetyTag("Electrical") {
		return isSupervisorOrHigher(user.Role)
	}
	return true
}

// RoboticsAccessPolicy: powered robotics equipment (EmergencyStop tag) needs a
// supervisor present.
type RoboticsAccessPolicy struct {
	DefaultAccessPolicy
}

func (p *RoboticsAccessPolicy) CanUse(ctx context.Context, user *models.User, equipment *models.Equipment) bool {
	if !p.DefaultAccessPolicy.CanUse(ctx, user, equipment) {
		return false
	}
	if user != nil && !isEquipmentPrivileged(user.Role) && equipment.HasSafetyTag("EmergencyStop") {
		return isSupervisorOrHigher(user.Role)
	}
	return true
}

// MixedRealityAccessPolicy: the motion platform is restricted to technical
// managers and professors; a plain supervisor role is not enough.
type MixedRealityAccessPolicy struct {
	DefaultAccessPolicy
}

func (p *MixedRealityAccessPolicy) CanUse(ctx context.Context, user *models.User, equipment *models.Equipment) bool {
	if !p.DefaultAccessPolicy.CanUse(ctx, user, equipment) {
		return false
	}
	if user != nil && equipment.Kind == models.EquipmentKindMotionPlatform {
		return isEquipmentPrivileged(user.Role)
	}
	return true
}
