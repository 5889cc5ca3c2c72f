package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractorRepository handles database operations for contractors
type ContractorRepository struct {
	db *gorm.DB
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

// Create creates a new contractor
func (r *ContractorRepository) Create(contractor *models.Contractor) error {
	return r.db.Create(contractor).Error
}

// GetByID retrieves a contractor by its ID
func (r *ContractorRepository) GetByID(id uuid.UUID) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.First(&contractor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

// GetAll retrieves all contractors with pagination
func (r *ContractorRepository) GetAll(limit, offset int) ([]models.Contractor, int64, error) {
	var contractors []models.Contractor
	var total int64

	if err := r.db.Model(&models.Contractor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("company_name").Limit(limit).Offset(offset).Find(&contractors).Error
	if err != nil {
		return nil, 0, err
	}

	return contractors, total, nil
}

// GetByCreatorIDs retrieves contractors created by users in the given id set
func (r *ContractorRepository) GetByCreatorIDs(creatorIDs []uuid.UUID, limit, offset int) ([]models.Contractor, int64, error) {
	var contractors []models.Contractor
	var total int64

	if len(creatorIDs) == 0 {
		return contractors, 0, nil
	}

	query := r.db.Model(&models.Contractor{}).Where("created_by_id IN ?", creatorIDs)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("company_name").Limit(limit).Offset(offset).Find(&contractors).Error
	if err != nil {
		return nil, 0, err
	}

	return contractors, total, nil
}

// Update updates an existing contractor
func (r *ContractorRepository) Update(contractor *models.Contractor) error {
	return r.db.Save(contractor).Error
}

// Delete soft-deletes a contractor
func (r *ContractorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contractor{}, "id = ?", id).Error
}
