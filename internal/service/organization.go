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
	"gorm.io/gorm"
)

// OrganizationService handles the manager hierarchy, departments and teams
type OrganizationService struct {
	assignmentRepo repository.AssignmentRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	assignmentRepo repository.AssignmentRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		assignmentRepo: assignmentRepo,
		departmentRepo: departmentRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		validator:      validator,
	}
}

// CreateAssignmentRequest represents the data needed to create a manager assignment
type CreateAssignmentRequest struct {
	ManagerID  uuid.UUID `json:"manager_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
}

// AssignmentResponse represents the response data for a manager assignment
type AssignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	ManagerID  uuid.UUID `json:"manager_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	CreatedAt  string    `json:"created_at"`
}

// CreateDepartmentRequest represents the data needed to create a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateDepartmentRequest represents the data needed to update a department
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// DepartmentResponse represents the response data for a department
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// TeamMemberResponse represents one member within a team response
type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Members     []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// CreateAssignment records a manager -> employee edge. Self-edges and edges
// that would close a cycle through the existing graph are rejected before
// anything is written.
func (s *OrganizationService) CreateAssignment(req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ManagerID == req.EmployeeID {
		return nil, apperrors.ErrSelfManagerAssignment
	}

	if _, err := s.userRepo.GetByID(req.ManagerID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.userRepo.GetByID(req.EmployeeID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if existing, err := s.assignmentRepo.GetByPair(req.ManagerID, req.EmployeeID); err == nil && existing != nil {
		return nil, apperrors.ErrManagerAssignmentExists
	}

	edges, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	if scope.NewGraph(edges).WouldCycle(req.ManagerID, req.EmployeeID) {
		return nil, apperrors.ErrCyclicManagerAssignment
	}

	assignment := &models.ManagerAssignment{
		ManagerID:  req.ManagerID,
		EmployeeID: req.EmployeeID,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return convertAssignment(assignment), nil
}

// DeleteAssignment removes a manager -> employee edge
func (s *OrganizationService) DeleteAssignment(managerID, employeeID uuid.UUID) error {
	if _, err := s.assignmentRepo.GetByPair(managerID, employeeID); err != nil {
		return apperrors.ErrManagerAssignmentNotFound
	}

	if err := s.assignmentRepo.Delete(managerID, employeeID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

// ListAssignmentsByManager returns the direct edges under one manager
func (s *OrganizationService) ListAssignmentsByManager(managerID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.GetByManagerID(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *convertAssignment(&assignments[i])
	}
	return responses, nil
}

// GetHierarchyTree renders the organization as a forest rooted at the users
// no edge names as an employee.
func (s *OrganizationService) GetHierarchyTree() ([]scope.TreeNode, error) {
	users, _, err := s.userRepo.GetAll(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	edges, err := s.assignmentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	return scope.BuildHierarchyTree(users, edges), nil
}

// CreateDepartment creates a new department
func (s *OrganizationService) CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.departmentRepo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrDepartmentExists
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.departmentRepo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return convertDepartment(department), nil
}

// GetDepartments retrieves all departments with pagination
func (s *OrganizationService) GetDepartments(limit, offset int) ([]DepartmentResponse, int64, error) {
	departments, total, err := s.departmentRepo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *convertDepartment(&departments[i])
	}
	return responses, total, nil
}

// UpdateDepartment updates an existing department
func (s *OrganizationService) UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.departmentRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if req.Name != nil && *req.Name != department.Name {
		if existing, err := s.departmentRepo.GetByName(*req.Name); err == nil && existing != nil {
			return nil, apperrors.ErrDepartmentExists
		}
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}

	if err := s.departmentRepo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return convertDepartment(department), nil
}

// DeleteDepartment soft-deletes a department. Users keep their rows; the
// department foreign key is set null by the constraint.
func (s *OrganizationService) DeleteDepartment(id uuid.UUID) error {
	if _, err := s.departmentRepo.GetByID(id); err != nil {
		return apperrors.ErrDepartmentNotFound
	}

	if err := s.departmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// CreateTeam creates a new team
func (s *OrganizationService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.teamRepo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return convertTeam(team), nil
}

// GetTeams retrieves all teams with pagination
func (s *OrganizationService) GetTeams(limit, offset int) ([]TeamResponse, int64, error) {
	teams, total, err := s.teamRepo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *convertTeam(&teams[i])
	}
	return responses, total, nil
}

// GetTeamWithMembers retrieves a team together with its member users
func (s *OrganizationService) GetTeamWithMembers(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	return convertTeam(team), nil
}

// AddTeamMember adds a user to a team
func (s *OrganizationService) AddTeamMember(teamID, userID uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		return apperrors.ErrTeamNotFound
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return apperrors.ErrUserNotFound
	}

	member, err := s.teamRepo.HasMember(teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if member {
		return apperrors.ErrTeamMemberExists
	}

	if err := s.teamRepo.AddMember(teamID, userID); err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// RemoveTeamMember removes a user from a team
func (s *OrganizationService) RemoveTeamMember(teamID, userID uuid.UUID) error {
	member, err := s.teamRepo.HasMember(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !member {
		return apperrors.ErrTeamMemberNotFound
	}

	if err := s.teamRepo.RemoveMember(teamID, userID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// DeleteTeam soft-deletes a team
func (s *OrganizationService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(id); err != nil {
		return apperrors.ErrTeamNotFound
	}

	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func convertAssignment(a *models.ManagerAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		ManagerID:  a.ManagerID,
		EmployeeID: a.EmployeeID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

func convertDepartment(d *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}
}

func convertTeam(t *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	for _, m := range t.Members {
		resp.Members = append(resp.Members, TeamMemberResponse{
			UserID:   m.UserID,
			FullName: m.User.FullName,
			Email:    m.User.Email,
		})
	}
	return resp
}
