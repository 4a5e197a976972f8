package models

type UserRole string

const (
	RoleStudent             UserRole = "student"
	RoleResearcher          UserRole = "researcher"
	RoleStaff               UserRole = "staff"
	RoleSupervisor          UserRole = "supervisor"
	RoleTechnicalLabManager UserRole = "technical_lab_manager"
	RoleAcademicLabManager  UserRole = "academic_lab_manager"
	RoleProfessor           UserRole = "professor"
	RoleAdmin               UserRole = "admin"
)

// AllRoles lists every role the system provisions. Role is fixed at
// provisioning time; there is no role-change workflow.
var AllRoles = []UserRole{
	RoleStudent,
	RoleResearcher,
	RoleStaff,
	RoleSupervisor,
	RoleTechnicalLabManager,
	RoleAcademicLabManager,
	RoleProfessor,
	RoleAdmin,
}

type User struct {
	ID           string   `bson:"_id,omitempty" json:"id"`
	Name         string   `bson:"name" json:"name" validate:"required"`
	Email        string   `bson:"email" json:"email" validate:"required,email"`
	Username     string   `bson:"username" json:"username" validate:"required"`
	PasswordSalt []byte   `bson:"passwordSalt" json:"-"`
	PasswordHash []byte   `bson:"passwordHash" json:"-"`
	Role         UserRole `bson:"role" json:"role"`
	SupervisorID string   `bson:"supervisorId,omitempty" json:"supervisorId,omitempty"`
	CreatedAt    int      `bson:"createdAt" json:"createdAt"`
}

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }
