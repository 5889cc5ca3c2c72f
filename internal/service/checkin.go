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

// CheckinService handles business logic for daily check-in submissions
type CheckinService struct {
	repo      repository.CheckinRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	resolver  *scope.Resolver
	checker   *scope.Checker
	validator *validator.Validate
}

// NewCheckinService creates a new checkin service
func NewCheckinService(
	repo repository.CheckinRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	resolver *scope.Resolver,
	checker *scope.Checker,
	validator *validator.Validate,
) *CheckinService {
	return &CheckinService{
		repo:      repo,
		userRepo:  userRepo,
		resolver:  resolver,
		checker:   checker,
		validator: validator,
	}
}

// CreateCheckinRequest represents the data needed to submit a daily check-in
type CreateCheckinRequest struct {
	Date    time.Time `json:"date" validate:"required"`
	JobSite string    `json:"job_site" validate:"max=200"`
	Notes   string    `json:"notes" validate:"max=2000"`
}

// AssignCheckinRequest names the direct report a submission is assigned to
type AssignCheckinRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" validate:"required"`
}

// CheckinResponse represents the response data for a check-in submission
type CheckinResponse struct {
	ID           uuid.UUID            `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	UserName     string               `json:"user_name,omitempty"`
	Date         string               `json:"date"`
	JobSite      string               `json:"job_site"`
	Notes        string               `json:"notes"`
	Status       models.CheckinStatus `json:"status"`
	AssignedToID *uuid.UUID           `json:"assigned_to_id,omitempty"`
	CompletedAt  *time.Time           `json:"completed_at,omitempty"`
	CreatedAt    string               `json:"created_at"`
}

// CreateCheckin records a daily check-in for the submitting user
func (s *CheckinService) CreateCheckin(userID uuid.UUID, req *CreateCheckinRequest) (*CheckinResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	checkin := &models.CheckinSubmission{
		UserID:  userID,
		Date:    req.Date,
		JobSite: req.JobSite,
		Notes:   req.Notes,
		Status:  models.CheckinStatusOpen,
	}
	if err := s.repo.Create(checkin); err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	return convertCheckin(checkin), nil
}

// ListCheckins returns the submissions visible to the requester. Requesters
// with organization-wide visibility (owners, super admins, elevated managers,
// grant holders) resolve filters without role narrowing; everyone else goes
// through the role-default scope.
func (s *CheckinService) ListCheckins(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]CheckinResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	viewAll, err := s.checker.CanViewAllSubmissions(requesterID, role)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check visibility: %w", err)
	}

	var ids []uuid.UUID
	if viewAll {
		ids, err = s.resolver.EmployeeIDs(f)
	} else {
		ids, err = s.resolver.ForRequester(requesterID, role, f)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	checkins, total, err := s.repo.GetByUserIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list check-ins: %w", err)
	}

	responses := make([]CheckinResponse, len(checkins))
	for i := range checkins {
		responses[i] = *convertCheckin(&checkins[i])
	}
	return responses, total, nil
}

// AssignCheckin hands a submission to a direct report of the requester.
// Visibility over a submission is not enough; assignment needs a direct
// manager edge to the assignee.
func (s *CheckinService) AssignCheckin(id, requesterID uuid.UUID, role models.UserRole, req *AssignCheckinRequest) (*CheckinResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	checkin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCheckinNotFound
	}
	if checkin.Status == models.CheckinStatusCompleted {
		return nil, apperrors.ErrCheckinAlreadyCompleted
	}

	if _, err := s.userRepo.GetByID(req.AssigneeID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	allowed, err := s.checker.CanAssign(requesterID, role, req.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	checkin.AssignedToID = &req.AssigneeID
	checkin.Status = models.CheckinStatusAssigned
	if err := s.repo.Update(checkin); err != nil {
		return nil, fmt.Errorf("failed to assign check-in: %w", err)
	}

	return convertCheckin(checkin), nil
}

// CompleteCheckin marks a submission completed. Permitted for the current
// assignee, an elevated manager with a direct edge to the assignee, or
// owner and super admin.
func (s *CheckinService) CompleteCheckin(id, requesterID uuid.UUID, role models.UserRole) (*CheckinResponse, error) {
	checkin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCheckinNotFound
	}
	if checkin.Status == models.CheckinStatusCompleted {
		return nil, apperrors.ErrCheckinAlreadyCompleted
	}

	allowed, err := s.checker.CanComplete(requesterID, role, checkin)
	if err != nil {
		return nil, fmt.Errorf("failed to check completion: %w", err)
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	checkin.Status = models.CheckinStatusCompleted
	checkin.CompletedAt = &now
	if err := s.repo.Update(checkin); err != nil {
		return nil, fmt.Errorf("failed to complete check-in: %w", err)
	}

	return convertCheckin(checkin), nil
}

// GrantSubmissionAccess gives a user cross-employee submission visibility
// without an elevated role or department.
func (s *CheckinService) GrantSubmissionAccess(userID, grantedBy uuid.UUID) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return apperrors.ErrUserNotFound
	}

	existing, err := s.repo.HasAccessGrant(userID)
	if err != nil {
		return fmt.Errorf("failed to check grant: %w", err)
	}
	if existing {
		return apperrors.ErrAccessGrantExists
	}

	grant := &models.SubmissionAccessGrant{
		UserID:    userID,
		GrantedBy: grantedBy,
	}
	if err := s.repo.CreateAccessGrant(grant); err != nil {
		return fmt.Errorf("failed to create grant: %w", err)
	}
	return nil
}

// RevokeSubmissionAccess removes a user's submission access grant
func (s *CheckinService) RevokeSubmissionAccess(userID uuid.UUID) error {
	existing, err := s.repo.HasAccessGrant(userID)
	if err != nil {
		return fmt.Errorf("failed to check grant: %w", err)
	}
	if !existing {
		return apperrors.ErrAccessGrantNotFound
	}

	if err := s.repo.DeleteAccessGrant(userID); err != nil {
		return fmt.Errorf("failed to revoke grant: %w", err)
	}
	return nil
}

func convertCheckin(c *models.CheckinSubmission) *CheckinResponse {
	return &CheckinResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		UserName:     c.User.FullName,
		Date:         c.Date.Format("2006-01-02"),
		JobSite:      c.JobSite,
		Notes:        c.Notes,
		Status:       c.Status,
		AssignedToID: c.AssignedToID,
		CompletedAt:  c.CompletedAt,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
