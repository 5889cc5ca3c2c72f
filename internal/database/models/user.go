package models

import (
	"strings"

	"github.com/google/uuid"
)

// UserRole represents the role of a portal user
type UserRole string

const (
	RoleEmployee   UserRole = "employee"
	RoleManager    UserRole = "manager"
	RoleOwner      UserRole = "owner"
	RoleSuperAdmin UserRole = "super_admin"
)

// NormalizeRole maps role spellings seen in older data ("Super Admin",
// "SuperAdmin") onto the canonical constants. Unknown values come back
// unchanged so callers can reject them explicitly.
func NormalizeRole(raw string) UserRole {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")) {
	case "employee":
		return RoleEmployee
	case "manager":
		return RoleManager
	case "owner":
		return RoleOwner
	case "super_admin", "superadmin":
		return RoleSuperAdmin
	}
	return UserRole(raw)
}

// IsValid reports whether the role is one of the canonical constants.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleOwner, RoleSuperAdmin:
		return true
	}
	return false
}

// Rank orders roles by authority for hierarchy display (lower sorts first).
// Authorization never compares ranks; it matches role names.
func (r UserRole) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 0
	case RoleOwner:
		return 1
	case RoleManager:
		return 2
	default:
		return 3
	}
}

// User represents a portal account
type User struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string     `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:deleted_at IS NULL;not null;size:255" validate:"required,email,max=255"` // Partial unique index excludes soft-deleted records so an address can be re-registered
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	PhoneNumber  string     `json:"phone_number" gorm:"size:20"`
	Role         UserRole   `json:"role" gorm:"type:varchar(50);not null;default:'employee'" validate:"required"`
	IsApproved   bool       `json:"is_approved" gorm:"default:false"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Tags       []UserTag   `json:"tags,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName returns the name used for sorting and rendering, falling back
// to the email address when the full name is empty.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// RequiresApproval reports whether the role needs admin approval before the
// account can authenticate. Employee and super admin accounts are
// auto-approved on creation.
func RequiresApproval(role UserRole) bool {
	return role == RoleOwner || role == RoleManager
}
