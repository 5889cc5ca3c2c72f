package repository

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRepository handles database operations for user tags
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetByUserID retrieves all tags of a user
func (r *TagRepository) GetByUserID(userID uuid.UUID) ([]models.UserTag, error) {
	var tags []models.UserTag
	err := r.db.Where("user_id = ?", userID).Order("key").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ReplaceForUser replaces a user's tag set wholesale. Delete-all-then-insert
// runs inside one transaction so a crash cannot leave the user half-tagged.
func (r *TagRepository) ReplaceForUser(userID uuid.UUID, tags []models.UserTag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&models.UserTag{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		for i := range tags {
			tags[i].UserID = userID
		}
		if len(tags) == 0 {
			return nil
		}
		return tx.Create(&tags).Error
	})
}
