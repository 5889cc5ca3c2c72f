package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingRepository handles database operations for trainings and
// their per-user assignments
type TrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// Create creates a new training
func (r *TrainingRepository) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

// GetByID retrieves a training by its ID
func (r *TrainingRepository) GetByID(id uuid.UUID) (*models.Training, error) {
	var training models.Training
	err := r.db.First(&training, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &training, nil
}

// GetAll retrieves all trainings with pagination
func (r *TrainingRepository) GetAll(limit, offset int) ([]models.Training, int64, error) {
	var trainings []models.Training
	var total int64

	if err := r.db.Model(&models.Training{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title").Limit(limit).Offset(offset).Find(&trainings).Error
	if err != nil {
		return nil, 0, err
	}

	return trainings, total, nil
}

// Update updates an existing training
func (r *TrainingRepository) Update(training *models.Training) error {
	return r.db.Save(training).Error
}

// Delete soft-deletes a training
func (r *TrainingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Training{}, "id = ?", id).Error
}

// CreateAssignment assigns a training to a user
func (r *TrainingRepository) CreateAssignment(assignment *models.TrainingAssignment) error {
	return r.db.Create(assignment).Error
}

// GetAssignmentByID retrieves a training assignment by its ID
func (r *TrainingRepository) GetAssignmentByID(id uuid.UUID) (*models.TrainingAssignment, error) {
	var assignment models.TrainingAssignment
	err := r.db.Preload("Training").Preload("User").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAssignmentsByUserIDs retrieves training assignments for users in the
// given id set. An empty set yields an empty page.
func (r *TrainingRepository) GetAssignmentsByUserIDs(userIDs []uuid.UUID, limit, offset int) ([]models.TrainingAssignment, int64, error) {
	var assignments []models.TrainingAssignment
	var total int64

	if len(userIDs) == 0 {
		return assignments, 0, nil
	}

	query := r.db.Model(&models.TrainingAssignment{}).Where("user_id IN ?", userIDs)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Training").Preload("User").
		Order("due_date ASC NULLS LAST, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// UpdateAssignment updates an existing training assignment
func (r *TrainingRepository) UpdateAssignment(assignment *models.TrainingAssignment) error {
	return r.db.Save(assignment).Error
}
