package repository

import (
	"errors"

	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgDirectory serves the scope engine's read ports from Postgres.
// Every call hits the live tables so resolved scopes always reflect the
// current assignment graph.
type OrgDirectory struct {
	db *gorm.DB
}

// NewOrgDirectory creates a new organization directory
func NewOrgDirectory(db *gorm.DB) *OrgDirectory {
	return &OrgDirectory{db: db}
}

// ListAssignments returns every manager assignment edge
func (d *OrgDirectory) ListAssignments() ([]models.ManagerAssignment, error) {
	var assignments []models.ManagerAssignment
	if err := d.db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// AllUserIDs returns the ids of all non-deleted users
func (d *OrgDirectory) AllUserIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.db.Model(&models.User{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UserIDsByDepartment returns the ids of users in the given department
func (d *OrgDirectory) UserIDsByDepartment(departmentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.db.Model(&models.User{}).
		Where("department_id = ?", departmentID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UserIDsByTeam returns the ids of users belonging to the given team
func (d *OrgDirectory) UserIDsByTeam(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.db.Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UserIDsByTag returns the ids of users carrying the exact key/value tag
func (d *OrgDirectory) UserIDsByTag(key, value string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.db.Model(&models.UserTag{}).
		Where("key = ? AND value = ?", key, value).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// HasAssignment reports whether a direct manager->employee edge exists
func (d *OrgDirectory) HasAssignment(managerID, employeeID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.ManagerAssignment{}).
		Where("manager_id = ? AND employee_id = ?", managerID, employeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasAccessGrant reports whether the user holds a submission access grant
func (d *OrgDirectory) HasAccessGrant(userID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.SubmissionAccessGrant{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DepartmentNameOf returns the user's department name, or "" when the user
// has no department
func (d *OrgDirectory) DepartmentNameOf(userID uuid.UUID) (string, error) {
	var user models.User
	err := d.db.Preload("Department").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if user.Department == nil {
		return "", nil
	}
	return user.Department.Name, nil
}
