package repository

import (
	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDWithDepartment(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByIDs(ids []uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for manager assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.ManagerAssignment) error
	GetByPair(managerID, employeeID uuid.UUID) (*models.ManagerAssignment, error)
	GetAll() ([]models.ManagerAssignment, error)
	GetByManagerID(managerID uuid.UUID) ([]models.ManagerAssignment, error)
	Delete(managerID, employeeID uuid.UUID) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByID(id uuid.UUID) (*models.Department, error)
	GetByName(name string) (*models.Department, error)
	GetAll(limit, offset int) ([]models.Department, int64, error)
	Update(department *models.Department) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	AddMember(teamID, userID uuid.UUID) error
	RemoveMember(teamID, userID uuid.UUID) error
	HasMember(teamID, userID uuid.UUID) (bool, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// TagRepositoryInterface defines the interface for user tag operations
type TagRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) ([]models.UserTag, error)
	ReplaceForUser(userID uuid.UUID, tags []models.UserTag) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(announcement *models.Announcement) error
	GetByID(id uuid.UUID) (*models.Announcement, error)
	GetAll(limit, offset int) ([]models.Announcement, int64, error)
	Update(announcement *models.Announcement) error
	Delete(id uuid.UUID) error
}

// CheckinRepositoryInterface defines the interface for check-in submission operations
type CheckinRepositoryInterface interface {
	Create(submission *models.CheckinSubmission) error
	GetByID(id uuid.UUID) (*models.CheckinSubmission, error)
	GetByUserIDs(userIDs []uuid.UUID, limit, offset int) ([]models.CheckinSubmission, int64, error)
	Update(submission *models.CheckinSubmission) error
	Delete(id uuid.UUID) error
	CreateAccessGrant(grant *models.SubmissionAccessGrant) error
	DeleteAccessGrant(userID uuid.UUID) error
	HasAccessGrant(userID uuid.UUID) (bool, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByCreatorIDs(creatorIDs []uuid.UUID, limit, offset int) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

// ContractorRepositoryInterface defines the interface for contractor repository operations
type ContractorRepositoryInterface interface {
	Create(contractor *models.Contractor) error
	GetByID(id uuid.UUID) (*models.Contractor, error)
	GetByCreatorIDs(creatorIDs []uuid.UUID, limit, offset int) ([]models.Contractor, int64, error)
	Update(contractor *models.Contractor) error
	Delete(id uuid.UUID) error
}

// TrainingRepositoryInterface defines the interface for training repository operations
type TrainingRepositoryInterface interface {
	Create(training *models.Training) error
	GetByID(id uuid.UUID) (*models.Training, error)
	GetAll(limit, offset int) ([]models.Training, int64, error)
	Update(training *models.Training) error
	Delete(id uuid.UUID) error
	CreateAssignment(assignment *models.TrainingAssignment) error
	GetAssignmentByID(id uuid.UUID) (*models.TrainingAssignment, error)
	GetAssignmentsByUserIDs(userIDs []uuid.UUID, limit, offset int) ([]models.TrainingAssignment, int64, error)
	UpdateAssignment(assignment *models.TrainingAssignment) error
}

// EstimateRepositoryInterface defines the interface for estimate repository operations
type EstimateRepositoryInterface interface {
	Create(estimate *models.Estimate) error
	GetByID(id uuid.UUID) (*models.Estimate, error)
	GetWithItems(id uuid.UUID) (*models.Estimate, error)
	GetByCreatorIDs(creatorIDs []uuid.UUID, limit, offset int) ([]models.Estimate, int64, error)
	Delete(id uuid.UUID) error
}

// OrgDirectoryInterface is the repository view of the scope engine's ports.
type OrgDirectoryInterface interface {
	scope.Directory
	scope.PolicyDirectory
}
