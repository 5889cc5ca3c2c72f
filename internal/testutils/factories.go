package testutils

import (
	"fmt"
	"time"

	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each call gets a unique
// email so inserts never collide on the partial unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     "Jordan Reyes",
		Email:        fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		PasswordHash: string(hash),
		PhoneNumber:  "+1-555-0123",
		Role:         models.RoleEmployee,
		IsApproved:   true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithDepartment sets the department ID for the user
func (f *UserFactory) WithDepartment(departmentID uuid.UUID) *models.User {
	user := f.Create()
	user.DepartmentID = &departmentID
	return user
}

// Unapproved creates a user awaiting admin approval
func (f *UserFactory) Unapproved(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	user.IsApproved = false
	return user
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with a unique name
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Department " + id.String()[:8],
		Description: "A test department",
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	department := f.Create()
	department.Name = name
	return department
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Team " + id.String()[:8],
		Description: "A test team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// AssignmentFactory provides methods to create test ManagerAssignment edges
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Between creates an edge meaning "employee reports to manager"
func (f *AssignmentFactory) Between(managerID, employeeID uuid.UUID) *models.ManagerAssignment {
	return &models.ManagerAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ManagerID:  managerID,
		EmployeeID: employeeID,
	}
}

// CheckinFactory provides methods to create test CheckinSubmission data
type CheckinFactory struct{}

// NewCheckinFactory creates a new CheckinFactory
func NewCheckinFactory() *CheckinFactory {
	return &CheckinFactory{}
}

// Create creates an open check-in submission for the given user
func (f *CheckinFactory) Create(userID uuid.UUID) *models.CheckinSubmission {
	return &models.CheckinSubmission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  userID,
		Date:    time.Now().Truncate(24 * time.Hour),
		JobSite: "123 Main St",
		Notes:   "Demo and tear-out complete",
		Status:  models.CheckinStatusOpen,
	}
}

// OnDate sets the submission date
func (f *CheckinFactory) OnDate(userID uuid.UUID, date time.Time) *models.CheckinSubmission {
	checkin := f.Create(userID)
	checkin.Date = date
	return checkin
}

// AssignedTo creates a submission already assigned to a user
func (f *CheckinFactory) AssignedTo(userID, assigneeID uuid.UUID) *models.CheckinSubmission {
	checkin := f.Create(userID)
	checkin.Status = models.CheckinStatusAssigned
	checkin.AssignedToID = &assigneeID
	return checkin
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a published announcement authored by the given user
func (f *AnnouncementFactory) Create(authorID uuid.UUID) *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AuthorID:    authorID,
		Title:       "Safety briefing Friday",
		Body:        "All field crews meet at the shop at 7am.",
		PublishedAt: time.Now(),
	}
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a contact owned by the given creator
func (f *ContactFactory) Create(createdByID uuid.UUID) *models.Contact {
	id := uuid.New()
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CreatedByID: createdByID,
		Name:        "Pat Chen",
		Company:     "Acme Claims",
		Email:       fmt.Sprintf("contact-%s@example.com", id.String()[:8]),
		PhoneNumber: "+1-555-0188",
	}
}

// ContractorFactory provides methods to create test Contractor data
type ContractorFactory struct{}

// NewContractorFactory creates a new ContractorFactory
func NewContractorFactory() *ContractorFactory {
	return &ContractorFactory{}
}

// Create creates a contractor record owned by the given creator
func (f *ContractorFactory) Create(createdByID uuid.UUID) *models.Contractor {
	id := uuid.New()
	return &models.Contractor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CreatedByID:   createdByID,
		CompanyName:   "Contractor " + id.String()[:8],
		ContactName:   "Sam Ortiz",
		Trade:         "Drywall",
		LicenseNumber: "LIC-" + id.String()[:6],
		IsInsured:     true,
	}
}

// TrainingFactory provides methods to create test Training data
type TrainingFactory struct{}

// NewTrainingFactory creates a new TrainingFactory
func NewTrainingFactory() *TrainingFactory {
	return &TrainingFactory{}
}

// Create creates a training course
func (f *TrainingFactory) Create() *models.Training {
	id := uuid.New()
	return &models.Training{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Training " + id.String()[:8],
		Description: "Water mitigation fundamentals",
		ContentURL:  "https://training.example.com/" + id.String()[:8],
	}
}

// EstimateFactory provides methods to create test Estimate data
type EstimateFactory struct{}

// NewEstimateFactory creates a new EstimateFactory
func NewEstimateFactory() *EstimateFactory {
	return &EstimateFactory{}
}

// Create creates an estimate with no line items
func (f *EstimateFactory) Create(createdByID uuid.UUID) *models.Estimate {
	return &models.Estimate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CreatedByID: createdByID,
		JobName:     "Smith residence water loss",
		Source:      "carrier",
	}
}

// WithItems creates an estimate carrying the given line items
func (f *EstimateFactory) WithItems(createdByID uuid.UUID, items ...models.EstimateItem) *models.Estimate {
	estimate := f.Create(createdByID)
	for i := range items {
		items[i].EstimateID = estimate.ID
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	estimate.Items = items
	return estimate
}

// Item builds a single estimate line item
func (f *EstimateFactory) Item(description string, quantity, unitPrice float64) models.EstimateItem {
	return models.EstimateItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Description: description,
		Quantity:    quantity,
		Unit:        "SF",
		UnitPrice:   unitPrice,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Department   *DepartmentFactory
	Team         *TeamFactory
	Assignment   *AssignmentFactory
	Checkin      *CheckinFactory
	Announcement *AnnouncementFactory
	Contact      *ContactFactory
	Contractor   *ContractorFactory
	Training     *TrainingFactory
	Estimate     *EstimateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Department:   NewDepartmentFactory(),
		Team:         NewTeamFactory(),
		Assignment:   NewAssignmentFactory(),
		Checkin:      NewCheckinFactory(),
		Announcement: NewAnnouncementFactory(),
		Contact:      NewContactFactory(),
		Contractor:   NewContractorFactory(),
		Training:     NewTrainingFactory(),
		Estimate:     NewEstimateFactory(),
	}
}

// CreateReportingChain creates a manager with the given number of direct
// reports and returns the manager, the reports, and the connecting edges.
func (fs *FactorySet) CreateReportingChain(reports int) (*models.User, []*models.User, []*models.ManagerAssignment) {
	manager := fs.User.WithRole(models.RoleManager)

	employees := make([]*models.User, 0, reports)
	edges := make([]*models.ManagerAssignment, 0, reports)
	for i := 0; i < reports; i++ {
		employee := fs.User.Create()
		employees = append(employees, employee)
		edges = append(edges, fs.Assignment.Between(manager.ID, employee.ID))
	}
	return manager, employees, edges
}
