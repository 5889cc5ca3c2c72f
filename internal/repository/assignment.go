package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for manager assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new manager assignment edge
func (r *AssignmentRepository) Create(assignment *models.ManagerAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByPair retrieves the edge for an ordered (manager, employee) pair
func (r *AssignmentRepository) GetByPair(managerID, employeeID uuid.UUID) (*models.ManagerAssignment, error) {
	var assignment models.ManagerAssignment
	err := r.db.First(&assignment, "manager_id = ? AND employee_id = ?", managerID, employeeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAll retrieves the full edge relation. Organizations are small enough
// that the scope engine loads the whole relation and walks it in memory.
func (r *AssignmentRepository) GetAll() ([]models.ManagerAssignment, error) {
	var assignments []models.ManagerAssignment
	err := r.db.Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetByManagerID retrieves the direct-report edges of one manager
func (r *AssignmentRepository) GetByManagerID(managerID uuid.UUID) ([]models.ManagerAssignment, error) {
	var assignments []models.ManagerAssignment
	err := r.db.Preload("Employee").Where("manager_id = ?", managerID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes the edge for an ordered (manager, employee) pair
func (r *AssignmentRepository) Delete(managerID, employeeID uuid.UUID) error {
	return r.db.Delete(&models.ManagerAssignment{}, "manager_id = ? AND employee_id = ?", managerID, employeeID).Error
}
