package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckinRepository handles database operations for check-in submissions
// and submission access grants
type CheckinRepository struct {
	db *gorm.DB
}

// NewCheckinRepository creates a new checkin repository
func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create creates a new check-in submission
func (r *CheckinRepository) Create(checkin *models.CheckinSubmission) error {
	return r.db.Create(checkin).Error
}

// GetByID retrieves a check-in submission by its ID
func (r *CheckinRepository) GetByID(id uuid.UUID) (*models.CheckinSubmission, error) {
	var checkin models.CheckinSubmission
	err := r.db.Preload("User").Preload("AssignedTo").First(&checkin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

// GetAll retrieves all check-in submissions with pagination, newest first
func (r *CheckinRepository) GetAll(limit, offset int) ([]models.CheckinSubmission, int64, error) {
	var checkins []models.CheckinSubmission
	var total int64

	if err := r.db.Model(&models.CheckinSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Preload("AssignedTo").
		Order("date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&checkins).Error
	if err != nil {
		return nil, 0, err
	}

	return checkins, total, nil
}

// GetByUserIDs retrieves submissions whose submitter is in the given id set.
// An empty set yields an empty page, not all rows.
func (r *CheckinRepository) GetByUserIDs(userIDs []uuid.UUID, limit, offset int) ([]models.CheckinSubmission, int64, error) {
	var checkins []models.CheckinSubmission
	var total int64

	if len(userIDs) == 0 {
		return checkins, 0, nil
	}

	query := r.db.Model(&models.CheckinSubmission{}).Where("user_id IN ?", userIDs)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").Preload("AssignedTo").
		Order("date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&checkins).Error
	if err != nil {
		return nil, 0, err
	}

	return checkins, total, nil
}

// Update updates an existing check-in submission
func (r *CheckinRepository) Update(checkin *models.CheckinSubmission) error {
	return r.db.Save(checkin).Error
}

// Delete soft-deletes a check-in submission
func (r *CheckinRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CheckinSubmission{}, "id = ?", id).Error
}

// CreateAccessGrant records a submission access grant for a user
func (r *CheckinRepository) CreateAccessGrant(grant *models.SubmissionAccessGrant) error {
	return r.db.Create(grant).Error
}

// DeleteAccessGrant revokes a user's submission access grant
func (r *CheckinRepository) DeleteAccessGrant(userID uuid.UUID) error {
	return r.db.Unscoped().Delete(&models.SubmissionAccessGrant{}, "user_id = ?", userID).Error
}

// HasAccessGrant reports whether the user holds a submission access grant
func (r *CheckinRepository) HasAccessGrant(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.SubmissionAccessGrant{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
