package repository

import (
	"time"

	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetByID retrieves an announcement by its ID
func (r *AnnouncementRepository) GetByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.Preload("Author").First(&announcement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetActive retrieves announcements that are published and not yet expired,
// pinned ones first, newest within each group.
func (r *AnnouncementRepository) GetActive(limit, offset int) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	now := time.Now()
	query := r.db.Model(&models.Announcement{}).
		Where("published_at <= ?", now).
		Where("expires_at IS NULL OR expires_at > ?", now)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").
		Order("is_pinned DESC, published_at DESC").
		Limit(limit).Offset(offset).
		Find(&announcements).Error
	if err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// GetAll retrieves all announcements with pagination, including expired ones
func (r *AnnouncementRepository) GetAll(limit, offset int) ([]models.Announcement, int64, error) {
	var announcements []models.Announcement
	var total int64

	if err := r.db.Model(&models.Announcement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Author").
		Order("is_pinned DESC, published_at DESC").
		Limit(limit).Offset(offset).
		Find(&announcements).Error
	if err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// Update updates an existing announcement
func (r *AnnouncementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete soft-deletes an announcement
func (r *AnnouncementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Announcement{}, "id = ?", id).Error
}
