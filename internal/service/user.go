package service

import (
	"errors"
	"fmt"
	"time"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/repository"
	"ops-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for portal users
type UserService struct {
	repo      repository.UserRepositoryInterface
	tagRepo   repository.TagRepositoryInterface
	resolver  *scope.Resolver
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, tagRepo repository.TagRepositoryInterface, resolver *scope.Resolver, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		tagRepo:   tagRepo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	FullName     string     `json:"full_name" validate:"required,max=200"`
	Email        string     `json:"email" validate:"required,email,max=255"`
	Password     string     `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber  string     `json:"phone_number" validate:"max=20"`
	Role         string     `json:"role" example:"employee" default:"employee"` // Optional: defaults to "employee". Valid values: employee, manager, owner, super_admin
	DepartmentID *uuid.UUID `json:"department_id"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	FullName     *string    `json:"full_name" validate:"omitempty,max=200"`
	PhoneNumber  *string    `json:"phone_number" validate:"omitempty,max=20"`
	Role         *string    `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

// ReplaceTagsRequest carries the full replacement tag set for a user
type ReplaceTagsRequest struct {
	Tags []TagRequest `json:"tags" validate:"dive"`
}

// TagRequest is one key/value pair in a tag replacement
type TagRequest struct {
	Key   string `json:"key" validate:"required,max=50"`
	Value string `json:"value" validate:"required,max=100"`
}

// TagResponse represents one tag on a user
type TagResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phone_number"`
	Role         models.UserRole `json:"role"`
	IsApproved   bool            `json:"is_approved"`
	DepartmentID *uuid.UUID      `json:"department_id,omitempty"`
	Department   string          `json:"department,omitempty"`
	Tags         []TagResponse   `json:"tags,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// CreateUser creates a new user account. Owner and manager accounts start
// unapproved and cannot authenticate until an admin approves them.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.RoleEmployee
	if req.Role != "" {
		role = models.NormalizeRole(req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		IsApproved:   !models.RequiresApproval(role),
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// GetUserByID retrieves a user by ID with department and tags
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByIDWithDepartment(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	return s.convertToResponse(user), nil
}

// GetUserByEmail retrieves the raw user record by email. Used by the auth
// layer, which needs the password hash.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns the users visible to the requester. The explicit filter
// is resolved first and then narrowed by the requester's role-default scope.
func (s *UserService) ListUsers(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]UserResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	ids, err := s.resolver.ForRequester(requesterID, role, f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	users, total, err := s.repo.GetByIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.convertToResponse(&user)
	}

	return responses, total, nil
}

// UpdateUser updates profile fields, role and department of a user
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role := models.NormalizeRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = role
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// ApproveUser marks a pending owner or manager account as approved
func (s *UserService) ApproveUser(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user.IsApproved = true
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to approve user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// DeleteUser soft-deletes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// GetUserTags returns the tag set of a user
func (s *UserService) GetUserTags(id uuid.UUID) ([]TagResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	tags, err := s.tagRepo.GetByUserID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	return convertTags(tags), nil
}

// ReplaceUserTags replaces the user's tag set wholesale. Tags are never
// patched individually; the request carries the complete new set.
func (s *UserService) ReplaceUserTags(id uuid.UUID, req *ReplaceTagsRequest) ([]TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(id); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Last write wins on duplicate keys within one request.
	byKey := make(map[string]string, len(req.Tags))
	order := make([]string, 0, len(req.Tags))
	for _, t := range req.Tags {
		if _, seen := byKey[t.Key]; !seen {
			order = append(order, t.Key)
		}
		byKey[t.Key] = t.Value
	}

	tags := make([]models.UserTag, 0, len(byKey))
	for _, key := range order {
		tags = append(tags, models.UserTag{UserID: id, Key: key, Value: byKey[key]})
	}

	if err := s.tagRepo.ReplaceForUser(id, tags); err != nil {
		return nil, fmt.Errorf("failed to replace tags: %w", err)
	}

	return convertTags(tags), nil
}

func convertTags(tags []models.UserTag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = TagResponse{Key: t.Key, Value: t.Value}
	}
	return out
}

// convertToResponse converts a user model to a response
func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Role:         user.Role,
		IsApproved:   user.IsApproved,
		DepartmentID: user.DepartmentID,
		Tags:         convertTags(user.Tags),
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Department != nil {
		resp.Department = user.Department.Name
	}
	return resp
}
