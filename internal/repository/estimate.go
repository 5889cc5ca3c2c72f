package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EstimateRepository handles database operations for estimates and their line items
type EstimateRepository struct {
	db *gorm.DB
}

// NewEstimateRepository creates a new estimate repository
func NewEstimateRepository(db *gorm.DB) *EstimateRepository {
	return &EstimateRepository{db: db}
}

// Create creates an estimate together with its line items
func (r *EstimateRepository) Create(estimate *models.Estimate) error {
	return r.db.Create(estimate).Error
}

// GetByID retrieves an estimate by its ID without line items
func (r *EstimateRepository) GetByID(id uuid.UUID) (*models.Estimate, error) {
	var estimate models.Estimate
	err := r.db.First(&estimate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// GetWithItems retrieves an estimate together with its line items
func (r *EstimateRepository) GetWithItems(id uuid.UUID) (*models.Estimate, error) {
	var estimate models.Estimate
	err := r.db.Preload("Items").First(&estimate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// GetByCreatorIDs retrieves estimates created by users in the given id set
func (r *EstimateRepository) GetByCreatorIDs(creatorIDs []uuid.UUID, limit, offset int) ([]models.Estimate, int64, error) {
	var estimates []models.Estimate
	var total int64

	if len(creatorIDs) == 0 {
		return estimates, 0, nil
	}

	query := r.db.Model(&models.Estimate{}).Where("created_by_id IN ?", creatorIDs)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&estimates).Error
	if err != nil {
		return nil, 0, err
	}

	return estimates, total, nil
}

// Delete soft-deletes an estimate and its line items
func (r *EstimateRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.EstimateItem{}, "estimate_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Estimate{}, "id = ?", id).Error
	})
}
