package models

import (
	"github.com/google/uuid"
)

// ManagerAssignment is a directed edge meaning "EmployeeID reports to
// ManagerID". An employee may carry edges from several managers; the pair
// itself is unique. Self-edges are rejected at creation.
type ManagerAssignment struct {
	BaseModel
	ManagerID  uuid.UUID `json:"manager_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_employee,where:deleted_at IS NULL" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_employee,where:deleted_at IS NULL" validate:"required"`

	Manager  User `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE"`
	Employee User `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ManagerAssignment
func (ManagerAssignment) TableName() string {
	return "manager_assignments"
}

// Department is a named grouping of users, unique by name.
type Department struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_departments_name_active,where:deleted_at IS NULL;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}

// Team is an ad hoc cross-cutting grouping of users, independent of the
// manager graph and of departments.
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex:idx_teams_name_active,where:deleted_at IS NULL;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember joins a user to a team.
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_member,where:deleted_at IS NULL" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_member,where:deleted_at IS NULL" validate:"required"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// UserTag is a free-form (key, value) attribute on a user, at most one value
// per key. Tags are replaced wholesale on update, never patched.
type UserTag struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_user_tag_key,where:deleted_at IS NULL" validate:"required"`
	Key    string    `json:"key" gorm:"not null;size:50;uniqueIndex:idx_user_tag_key,where:deleted_at IS NULL" validate:"required,max=50"`
	Value  string    `json:"value" gorm:"not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for UserTag
func (UserTag) TableName() string {
	return "user_tags"
}
