package service

import (
	"context"
	"time"

	"github.com/minhct267/Tech-Lab-Management/internal/identity"
	"github.com/minhct267/Tech-Lab-Management/internal/models"
	"github.com/minhct267/Tech-Lab-Management/internal/policy"
	"github.com/minhct267/Tech-Lab-Management/internal/repository"
)

// permissionRoles is the static permission table. Permissions absent from the
// map are denied for everyone.
var permissionRoles = map[models.Permission][]models.UserRole{
	models.PermissionLogin:               models.AllRoles,
	models.PermissionLogout:              models.AllRoles,
	models.PermissionViewLabs:            models.AllRoles,
	models.PermissionSubmitAccessRequest: models.AllRoles,
	models.PermissionCreateBooking:       models.AllRoles,
	models.PermissionViewAllBookings: {
		models.RoleTechnicalLabManager, models.RoleAcademicLabManager, models.RoleProfessor, models.RoleAdmin,
	},
	models.PermissionApproveBooking: {
		models.RoleTechnicalLabManager, models.RoleProfessor, models.RoleAdmin,
	},
	models.PermissionApproveAccessReq: {
		models.RoleTechnicalLabManager, models.RoleProfessor, models.RoleAdmin,
	},
	models.PermissionRejectAccessReq: {
		models.RoleTechnicalLabManager, models.RoleProfessor, models.RoleAdmin,
	},
	models.PermissionManageEquipment: {
		models.RoleTechnicalLabManager, models.RoleAdmin,
	},
	models.PermissionManageLabs: {
		models.RoleProfessor, models.RoleAdmin,
	},
	models.PermissionManageUsers: {
		models.RoleAdmin,
	},
}

// AuthorizationService answers point-in-time yes/no questions. It never
// returns errors for denied access; a denial is false and the caller decides
// the messaging.
type AuthorizationService struct {
	identity  identity.Provider
	grants    repository.Repository[models.AccessGrant]
	labs      repository.Repository[models.Lab]
	equipment repository.Repository[models.Equipment]
	policies  *policy.Registry
}

func NewAuthorizationService(
	provider identity.Provider,
	grants repository.Repository[models.AccessGrant],
	labs repository.Repository[models.Lab],
	equipment repository.Repository[models.Equipment],
) *AuthorizationService {
	checker := policy.GrantChecker(func(ctx context.Context, userID, labID string) bool {
		found, err := grants.Query(ctx, func(g *models.AccessGrant) bool {
			return g.UserID == userID && g.LabID == labID
		})
		return err == nil && len(found) > 0
	})
	return &AuthorizationService{
		identity:  provider,
		grants:    grants,
		labs:      labs,
		equipment: equipment,
		policies:  policy.NewRegistry(checker),
	}
}

// HasPermission checks the static role table. No acting user means false.
func (s *AuthorizationService) HasPermission(ctx context.Context, permission models.Permission) bool {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return false
	}
	for _, role := range permissionRoles[permission] {
		if user.Role == role {
			return true
		}
	}
	return false
}

// CanEnterLab delegates to the lab's policy: privileged roles bypass grants,
// everyone else needs a grant for this exact lab.
func (s *AuthorizationService) CanEnterLab(ctx context.Context, lab *models.Lab) bool {
	user := s.identity.CurrentUser(ctx)
	if user == nil || lab == nil {
		return false
	}
	return s.policies.ForLab(lab).CanEnter(ctx, user, lab, time.Now().UTC())
}

// CanUseEquipment resolves the owning lab on demand and delegates to its
// policy.
func (s *AuthorizationService) CanUseEquipment(ctx context.Context, equipment *models.Equipment) bool {
	user := s.identity.CurrentUser(ctx)
	if user == nil || equipment == nil {
		return false
	}
	lab, err := s.labs.GetByID(ctx, equipment.LabID)
	if err != nil {
		return false
	}
	return s.policies.ForLab(lab).CanUse(ctx, user, equipment)
}

// CanCreateBooking resolves the selected resource and delegates. Unknown
// resources and an empty selector are denials, not errors.
func (s *AuthorizationService) CanCreateBooking(ctx context.Context, labID, equipmentID string) bool {
	user := s.identity.CurrentUser(ctx)
	if user == nil {
		return false
	}
	if equipmentID != "" {
		eq, err := s.equipment.GetByID(ctx, equipmentID)
		if err != nil {
			return false
		}
		return s.CanUseEquipment(ctx, eq)
	}
	if labID != "" {
		lab, err := s.labs.GetByID(ctx, labID)
		if err != nil {
			return false
		}
		return s.CanEnterLab(ctx, lab)
	}
	return false
}
