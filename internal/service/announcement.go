package service

import (
	"fmt"
	"time"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/repository"
	"ops-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnnouncementService handles business logic for portal announcements
type AnnouncementService struct {
	repo      repository.AnnouncementRepositoryInterface
	validator *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAnnouncementRequest represents the data needed to create an announcement
type CreateAnnouncementRequest struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Body      string     `json:"body" validate:"required,max=5000"`
	IsPinned  bool       `json:"is_pinned"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// UpdateAnnouncementRequest represents the data needed to update an announcement
type UpdateAnnouncementRequest struct {
	Title     *string    `json:"title" validate:"omitempty,max=200"`
	Body      *string    `json:"body" validate:"omitempty,max=5000"`
	IsPinned  *bool      `json:"is_pinned"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// AnnouncementResponse represents the response data for an announcement
type AnnouncementResponse struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	AuthorName  string     `json:"author_name,omitempty"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	IsPinned    bool       `json:"is_pinned"`
	PublishedAt string     `json:"published_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// CreateAnnouncement posts a new announcement. Managers and above may post;
// everyone may read.
func (s *AnnouncementService) CreateAnnouncement(requesterID uuid.UUID, role models.UserRole, req *CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	if !scope.CanCreateAnnouncement(role) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement := &models.Announcement{
		AuthorID:    requesterID,
		Title:       req.Title,
		Body:        req.Body,
		IsPinned:    req.IsPinned,
		PublishedAt: time.Now(),
		ExpiresAt:   req.ExpiresAt,
	}
	if err := s.repo.Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	return convertAnnouncement(announcement), nil
}

// GetAnnouncements retrieves announcements with pagination
func (s *AnnouncementService) GetAnnouncements(limit, offset int) ([]AnnouncementResponse, int64, error) {
	announcements, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get announcements: %w", err)
	}

	responses := make([]AnnouncementResponse, len(announcements))
	for i := range announcements {
		responses[i] = *convertAnnouncement(&announcements[i])
	}
	return responses, total, nil
}

// UpdateAnnouncement edits an announcement. Owners and super admins may edit
// any; a manager only their own.
func (s *AnnouncementService) UpdateAnnouncement(id, requesterID uuid.UUID, role models.UserRole, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrAnnouncementNotFound
	}

	if !scope.CanManageAnnouncement(role, announcement.AuthorID, requesterID) {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Body != nil {
		announcement.Body = *req.Body
	}
	if req.IsPinned != nil {
		announcement.IsPinned = *req.IsPinned
	}
	if req.ExpiresAt != nil {
		announcement.ExpiresAt = req.ExpiresAt
	}

	if err := s.repo.Update(announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	return convertAnnouncement(announcement), nil
}

// DeleteAnnouncement removes an announcement under the same ownership rule
// as updates.
func (s *AnnouncementService) DeleteAnnouncement(id, requesterID uuid.UUID, role models.UserRole) error {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrAnnouncementNotFound
	}

	if !scope.CanManageAnnouncement(role, announcement.AuthorID, requesterID) {
		return apperrors.ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func convertAnnouncement(a *models.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:          a.ID,
		AuthorID:    a.AuthorID,
		AuthorName:  a.Author.FullName,
		Title:       a.Title,
		Body:        a.Body,
		IsPinned:    a.IsPinned,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		ExpiresAt:   a.ExpiresAt,
	}
}
