package service

import (
	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]UserResponse, int64, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	ApproveUser(id uuid.UUID) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
	GetUserTags(id uuid.UUID) ([]TagResponse, error)
	ReplaceUserTags(id uuid.UUID, req *ReplaceTagsRequest) ([]TagResponse, error)
}

// OrganizationServiceInterface defines the interface for the manager
// hierarchy, departments and teams
type OrganizationServiceInterface interface {
	CreateAssignment(req *CreateAssignmentRequest) (*AssignmentResponse, error)
	DeleteAssignment(managerID, employeeID uuid.UUID) error
	ListAssignmentsByManager(managerID uuid.UUID) ([]AssignmentResponse, error)
	GetHierarchyTree() ([]scope.TreeNode, error)
	CreateDepartment(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetDepartments(limit, offset int) ([]DepartmentResponse, int64, error)
	UpdateDepartment(id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	DeleteDepartment(id uuid.UUID) error
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeams(limit, offset int) ([]TeamResponse, int64, error)
	GetTeamWithMembers(id uuid.UUID) (*TeamResponse, error)
	AddTeamMember(teamID, userID uuid.UUID) error
	RemoveTeamMember(teamID, userID uuid.UUID) error
	DeleteTeam(id uuid.UUID) error
}

// AnnouncementServiceInterface defines the interface for announcements
type AnnouncementServiceInterface interface {
	CreateAnnouncement(requesterID uuid.UUID, role models.UserRole, req *CreateAnnouncementRequest) (*AnnouncementResponse, error)
	GetAnnouncements(limit, offset int) ([]AnnouncementResponse, int64, error)
	UpdateAnnouncement(id, requesterID uuid.UUID, role models.UserRole, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error)
	DeleteAnnouncement(id, requesterID uuid.UUID, role models.UserRole) error
}

// CheckinServiceInterface defines the interface for daily check-ins
type CheckinServiceInterface interface {
	CreateCheckin(userID uuid.UUID, req *CreateCheckinRequest) (*CheckinResponse, error)
	ListCheckins(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]CheckinResponse, int64, error)
	AssignCheckin(id, requesterID uuid.UUID, role models.UserRole, req *AssignCheckinRequest) (*CheckinResponse, error)
	CompleteCheckin(id, requesterID uuid.UUID, role models.UserRole) (*CheckinResponse, error)
	GrantSubmissionAccess(userID, grantedBy uuid.UUID) error
	RevokeSubmissionAccess(userID uuid.UUID) error
}

// ContactServiceInterface defines the interface for the contact directory
type ContactServiceInterface interface {
	CreateContact(creatorID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error)
	ListContacts(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]ContactResponse, int64, error)
	UpdateContact(id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	DeleteContact(id uuid.UUID) error
}

// ContractorServiceInterface defines the interface for the contractor directory
type ContractorServiceInterface interface {
	CreateContractor(creatorID uuid.UUID, req *CreateContractorRequest) (*ContractorResponse, error)
	ListContractors(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]ContractorResponse, int64, error)
	UpdateContractor(id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error)
	DeleteContractor(id uuid.UUID) error
}

// TrainingServiceInterface defines the interface for trainings and their assignments
type TrainingServiceInterface interface {
	CreateTraining(req *CreateTrainingRequest) (*TrainingResponse, error)
	GetTrainings(limit, offset int) ([]TrainingResponse, int64, error)
	AssignTraining(assignedByID uuid.UUID, req *AssignTrainingRequest) (*TrainingAssignmentResponse, error)
	ListAssignments(requesterID uuid.UUID, role models.UserRole, f scope.Filter, limit, offset int) ([]TrainingAssignmentResponse, int64, error)
	UpdateAssignmentStatus(id uuid.UUID, req *UpdateTrainingStatusRequest) (*TrainingAssignmentResponse, error)
	DeleteTraining(id uuid.UUID) error
}

// EstimateServiceInterface defines the interface for estimates and comparison
type EstimateServiceInterface interface {
	CreateEstimate(creatorID uuid.UUID, req *CreateEstimateRequest) (*EstimateResponse, error)
	GetEstimate(id uuid.UUID) (*EstimateResponse, error)
	ListEstimates(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]EstimateResponse, int64, error)
	CompareEstimates(leftID, rightID uuid.UUID) (*EstimateComparisonResponse, error)
	DeleteEstimate(id uuid.UUID) error
}

// DirectorySearchServiceInterface defines the interface for corporate
// directory lookups
type DirectorySearchServiceInterface interface {
	SearchByName(name string) ([]DirectoryEntry, error)
}
