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

// TrainingService handles business logic for trainings and their assignments
type TrainingService struct {
	repo      repository.TrainingRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	resolver  *scope.Resolver
	validator *validator.Validate
}

// NewTrainingService creates a new training service
func NewTrainingService(
	repo repository.TrainingRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	resolver *scope.Resolver,
	validator *validator.Validate,
) *TrainingService {
	return &TrainingService{
		repo:      repo,
		userRepo:  userRepo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateTrainingRequest represents the data needed to create a training
type CreateTrainingRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	ContentURL  string `json:"content_url" validate:"omitempty,url,max=500"`
}

// AssignTrainingRequest represents the data needed to assign a training
type AssignTrainingRequest struct {
	TrainingID uuid.UUID  `json:"training_id" validate:"required"`
	UserID     uuid.UUID  `json:"user_id" validate:"required"`
	DueDate    *time.Time `json:"due_date"`
}

// UpdateTrainingStatusRequest moves an assignment through its lifecycle
type UpdateTrainingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned in_progress completed"`
}

// TrainingResponse represents the response data for a training
type TrainingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContentURL  string    `json:"content_url"`
	CreatedAt   string    `json:"created_at"`
}

// TrainingAssignmentResponse represents the response data for an assignment
type TrainingAssignmentResponse struct {
	ID            uuid.UUID             `json:"id"`
	TrainingID    uuid.UUID             `json:"training_id"`
	TrainingTitle string                `json:"training_title,omitempty"`
	UserID        uuid.UUID             `json:"user_id"`
	UserName      string                `json:"user_name,omitempty"`
	AssignedByID  uuid.UUID             `json:"assigned_by_id"`
	Status        models.TrainingStatus `json:"status"`
	DueDate       *time.Time            `json:"due_date,omitempty"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	CreatedAt     string                `json:"created_at"`
}

// CreateTraining creates a new training course
func (s *TrainingService) CreateTraining(req *CreateTrainingRequest) (*TrainingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	training := &models.Training{
		Title:       req.Title,
		Description: req.Description,
		ContentURL:  req.ContentURL,
	}
	if err := s.repo.Create(training); err != nil {
		return nil, fmt.Errorf("failed to create training: %w", err)
	}

	return convertTraining(training), nil
}

// GetTrainings retrieves all trainings with pagination
func (s *TrainingService) GetTrainings(limit, offset int) ([]TrainingResponse, int64, error) {
	trainings, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get trainings: %w", err)
	}

	responses := make([]TrainingResponse, len(trainings))
	for i := range trainings {
		responses[i] = *convertTraining(&trainings[i])
	}
	return responses, total, nil
}

// AssignTraining assigns a training to a user
func (s *TrainingService) AssignTraining(assignedByID uuid.UUID, req *AssignTrainingRequest) (*TrainingAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(req.TrainingID); err != nil {
		return nil, apperrors.ErrTrainingNotFound
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	assignment := &models.TrainingAssignment{
		TrainingID:   req.TrainingID,
		UserID:       req.UserID,
		AssignedByID: assignedByID,
		Status:       models.TrainingStatusAssigned,
		DueDate:      req.DueDate,
	}
	if err := s.repo.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to assign training: %w", err)
	}

	return convertTrainingAssignment(assignment), nil
}

// ListAssignments returns the training assignments for users inside the
// requester's scope, narrowed by the explicit filter.
func (s *TrainingService) ListAssignments(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]TrainingAssignmentResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	ids, err := s.resolver.ForRequester(requesterID, role, f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	assignments, total, err := s.repo.GetAssignmentsByUserIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]TrainingAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *convertTrainingAssignment(&assignments[i])
	}
	return responses, total, nil
}

// UpdateAssignmentStatus moves an assignment to a new lifecycle state and
// stamps completion time when the state is completed.
func (s *TrainingService) UpdateAssignmentStatus(id uuid.UUID, req *UpdateTrainingStatusRequest) (*TrainingAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.repo.GetAssignmentByID(id)
	if err != nil {
		return nil, apperrors.ErrTrainingAssignmentNotFound
	}

	assignment.Status = models.TrainingStatus(req.Status)
	if assignment.Status == models.TrainingStatusCompleted {
		now := time.Now()
		assignment.CompletedAt = &now
	} else {
		assignment.CompletedAt = nil
	}

	if err := s.repo.UpdateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return convertTrainingAssignment(assignment), nil
}

// DeleteTraining soft-deletes a training course
func (s *TrainingService) DeleteTraining(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrTrainingNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete training: %w", err)
	}
	return nil
}

func convertTraining(t *models.Training) *TrainingResponse {
	return &TrainingResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ContentURL:  t.ContentURL,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func convertTrainingAssignment(a *models.TrainingAssignment) *TrainingAssignmentResponse {
	return &TrainingAssignmentResponse{
		ID:            a.ID,
		TrainingID:    a.TrainingID,
		TrainingTitle: a.Training.Title,
		UserID:        a.UserID,
		UserName:      a.User.FullName,
		AssignedByID:  a.AssignedByID,
		Status:        a.Status,
		DueDate:       a.DueDate,
		CompletedAt:   a.CompletedAt,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}
