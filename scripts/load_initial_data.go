package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ops-portal-backend/internal/config"
	"ops-portal-backend/internal/database"
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DepartmentData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type UserData struct {
	FullName       string            `yaml:"full_name"`
	Email          string            `yaml:"email"`
	Password       string            `yaml:"password"`
	PhoneNumber    string            `yaml:"phone_number,omitempty"`
	Role           string            `yaml:"role"`
	IsApproved     bool              `yaml:"is_approved"`
	DepartmentName string            `yaml:"department_name,omitempty"`
	ManagerEmails  []string          `yaml:"manager_emails,omitempty"`
	Tags           map[string]string `yaml:"tags,omitempty"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description,omitempty"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
}

type AnnouncementData struct {
	AuthorEmail string `yaml:"author_email"`
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	IsPinned    bool   `yaml:"is_pinned,omitempty"`
}

type ContactData struct {
	CreatedByEmail string `yaml:"created_by_email"`
	Name           string `yaml:"name"`
	Company        string `yaml:"company,omitempty"`
	Email          string `yaml:"email,omitempty"`
	PhoneNumber    string `yaml:"phone_number,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

type ContractorData struct {
	CreatedByEmail string `yaml:"created_by_email"`
	CompanyName    string `yaml:"company_name"`
	ContactName    string `yaml:"contact_name,omitempty"`
	Trade          string `yaml:"trade,omitempty"`
	Email          string `yaml:"email,omitempty"`
	PhoneNumber    string `yaml:"phone_number,omitempty"`
	LicenseNumber  string `yaml:"license_number,omitempty"`
	IsInsured      bool   `yaml:"is_insured,omitempty"`
}

type TrainingData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	ContentURL  string `yaml:"content_url,omitempty"`
}

// File structures
type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type AnnouncementsFile struct {
	Announcements []AnnouncementData `yaml:"announcements"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type ContractorsFile struct {
	Contractors []ContractorData `yaml:"contractors"`
}

type TrainingsFile struct {
	Trainings []TrainingData `yaml:"trainings"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	departments, err := loadYAMLSection(dataDir, "departments", func(f *DepartmentsFile) []DepartmentData { return f.Departments })
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}
	users, err := loadYAMLSection(dataDir, "users", func(f *UsersFile) []UserData { return f.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	teams, err := loadYAMLSection(dataDir, "teams", func(f *TeamsFile) []TeamData { return f.Teams })
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	announcements, err := loadYAMLSection(dataDir, "announcements", func(f *AnnouncementsFile) []AnnouncementData { return f.Announcements })
	if err != nil {
		return fmt.Errorf("failed to load announcements: %w", err)
	}
	contacts, err := loadYAMLSection(dataDir, "contacts", func(f *ContactsFile) []ContactData { return f.Contacts })
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}
	contractors, err := loadYAMLSection(dataDir, "contractors", func(f *ContractorsFile) []ContractorData { return f.Contractors })
	if err != nil {
		return fmt.Errorf("failed to load contractors: %w", err)
	}
	trainings, err := loadYAMLSection(dataDir, "trainings", func(f *TrainingsFile) []TrainingData { return f.Trainings })
	if err != nil {
		return fmt.Errorf("failed to load trainings: %w", err)
	}

	// Departments come first so users can reference them by name
	departmentMap := make(map[string]*models.Department)
	departmentCreated := 0
	for _, departmentData := range departments {
		department, created, err := createDepartment(db, departmentData)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", departmentData.Name, err)
		}
		departmentMap[departmentData.Name] = department
		if created {
			departmentCreated++
		}
	}
	log.Printf("Departments: %d created, %d total", departmentCreated, len(departments))

	// Users next; manager edges and tags are applied in a second pass so
	// a user can name a manager that appears later in the file
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, departmentMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	edgeCreated := 0
	tagCreated := 0
	for _, userData := range users {
		user := userMap[userData.Email]
		for _, managerEmail := range userData.ManagerEmails {
			manager := userMap[managerEmail]
			if manager == nil {
				return fmt.Errorf("manager %s not found for user %s", managerEmail, userData.Email)
			}
			created, err := createAssignment(db, manager.ID, user.ID)
			if err != nil {
				return fmt.Errorf("failed to assign %s under %s: %w", userData.Email, managerEmail, err)
			}
			if created {
				edgeCreated++
			}
		}
		for key, value := range userData.Tags {
			created, err := createUserTag(db, user.ID, key, value)
			if err != nil {
				return fmt.Errorf("failed to tag user %s: %w", userData.Email, err)
			}
			if created {
				tagCreated++
			}
		}
	}
	log.Printf("Manager assignments: %d created", edgeCreated)
	log.Printf("User tags: %d created", tagCreated)

	teamCreated := 0
	for _, teamData := range teams {
		_, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	announcementCreated := 0
	for _, announcementData := range announcements {
		created, err := createAnnouncement(db, announcementData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create announcement %q: %v", announcementData.Title, err)
			continue
		}
		if created {
			announcementCreated++
		}
	}
	log.Printf("Announcements: %d created, %d total", announcementCreated, len(announcements))

	contactCreated := 0
	for _, contactData := range contacts {
		created, err := createContact(db, contactData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create contact %s: %v", contactData.Name, err)
			continue
		}
		if created {
			contactCreated++
		}
	}
	log.Printf("Contacts: %d created, %d total", contactCreated, len(contacts))

	contractorCreated := 0
	for _, contractorData := range contractors {
		created, err := createContractor(db, contractorData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create contractor %s: %v", contractorData.CompanyName, err)
			continue
		}
		if created {
			contractorCreated++
		}
	}
	log.Printf("Contractors: %d created, %d total", contractorCreated, len(contractors))

	trainingCreated := 0
	for _, trainingData := range trainings {
		created, err := createTraining(db, trainingData)
		if err != nil {
			log.Printf("Warning: failed to create training %q: %v", trainingData.Title, err)
			continue
		}
		if created {
			trainingCreated++
		}
	}
	log.Printf("Trainings: %d created, %d total", trainingCreated, len(trainings))

	return nil
}

// loadYAMLSection walks dataDir and collects entries from every YAML file
// whose path contains the section name.
func loadYAMLSection[F any, T any](dataDir, section string, extract func(*F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, section) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, extract(&file)...)
		}
		return nil
	})

	return all, err
}

func createDepartment(db *gorm.DB, departmentData DepartmentData) (*models.Department, bool, error) {
	var department models.Department
	if err := db.Where("name = ?", departmentData.Name).First(&department).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			department = models.Department{
				Name:        departmentData.Name,
				Description: departmentData.Description,
			}
			if err := db.Create(&department).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create department: %w", err)
			}
			return &department, true, nil
		}
		return nil, false, fmt.Errorf("failed to query department: %w", err)
	}

	return &department, false, nil
}

func createUser(db *gorm.DB, userData UserData, departmentMap map[string]*models.Department) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.NormalizeRole(userData.Role)
			if !role.IsValid() {
				return nil, false, fmt.Errorf("invalid role %q", userData.Role)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				FullName:     userData.FullName,
				Email:        userData.Email,
				PasswordHash: string(hash),
				PhoneNumber:  userData.PhoneNumber,
				Role:         role,
				IsApproved:   userData.IsApproved || !models.RequiresApproval(role),
			}
			if userData.DepartmentName != "" {
				department := departmentMap[userData.DepartmentName]
				if department == nil {
					return nil, false, fmt.Errorf("department %s not found", userData.DepartmentName)
				}
				user.DepartmentID = &department.ID
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createAssignment(db *gorm.DB, managerID, employeeID uuid.UUID) (bool, error) {
	if managerID == employeeID {
		return false, fmt.Errorf("self-assignment is not allowed")
	}

	var assignment models.ManagerAssignment
	err := db.Where("manager_id = ? AND employee_id = ?", managerID, employeeID).First(&assignment).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query assignment: %w", err)
	}

	assignment = models.ManagerAssignment{
		ManagerID:  managerID,
		EmployeeID: employeeID,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return false, fmt.Errorf("failed to create assignment: %w", err)
	}
	return true, nil
}

func createUserTag(db *gorm.DB, userID uuid.UUID, key, value string) (bool, error) {
	var tag models.UserTag
	err := db.Where("user_id = ? AND key = ?", userID, key).First(&tag).Error
	if err == nil {
		if tag.Value == value {
			return false, nil
		}
		tag.Value = value
		if err := db.Save(&tag).Error; err != nil {
			return false, fmt.Errorf("failed to update tag: %w", err)
		}
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query tag: %w", err)
	}

	tag = models.UserTag{
		UserID: userID,
		Key:    key,
		Value:  value,
	}
	if err := db.Create(&tag).Error; err != nil {
		return false, fmt.Errorf("failed to create tag: %w", err)
	}
	return true, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	created := false
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
		team = models.Team{
			Name:        teamData.Name,
			Description: teamData.Description,
		}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create team: %w", err)
		}
		created = true
	}

	for _, memberEmail := range teamData.MemberEmails {
		user := userMap[memberEmail]
		if user == nil {
			return nil, false, fmt.Errorf("member %s not found for team %s", memberEmail, teamData.Name)
		}
		var membership models.TeamMember
		err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).First(&membership).Error
		if err == gorm.ErrRecordNotFound {
			membership = models.TeamMember{TeamID: team.ID, UserID: user.ID}
			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to add %s to team %s: %w", memberEmail, teamData.Name, err)
			}
		} else if err != nil {
			return nil, false, fmt.Errorf("failed to query team membership: %w", err)
		}
	}

	return &team, created, nil
}

func createAnnouncement(db *gorm.DB, announcementData AnnouncementData, userMap map[string]*models.User) (bool, error) {
	author := userMap[announcementData.AuthorEmail]
	if author == nil {
		return false, fmt.Errorf("author %s not found", announcementData.AuthorEmail)
	}

	var announcement models.Announcement
	err := db.Where("author_id = ? AND title = ?", author.ID, announcementData.Title).First(&announcement).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query announcement: %w", err)
	}

	announcement = models.Announcement{
		AuthorID:    author.ID,
		Title:       announcementData.Title,
		Body:        announcementData.Body,
		IsPinned:    announcementData.IsPinned,
		PublishedAt: time.Now(),
	}
	if err := db.Create(&announcement).Error; err != nil {
		return false, fmt.Errorf("failed to create announcement: %w", err)
	}
	return true, nil
}

func createContact(db *gorm.DB, contactData ContactData, userMap map[string]*models.User) (bool, error) {
	creator := userMap[contactData.CreatedByEmail]
	if creator == nil {
		return false, fmt.Errorf("creator %s not found", contactData.CreatedByEmail)
	}

	var contact models.Contact
	err := db.Where("created_by_id = ? AND name = ?", creator.ID, contactData.Name).First(&contact).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query contact: %w", err)
	}

	contact = models.Contact{
		CreatedByID: creator.ID,
		Name:        contactData.Name,
		Company:     contactData.Company,
		Email:       contactData.Email,
		PhoneNumber: contactData.PhoneNumber,
		Notes:       contactData.Notes,
	}
	if err := db.Create(&contact).Error; err != nil {
		return false, fmt.Errorf("failed to create contact: %w", err)
	}
	return true, nil
}

func createContractor(db *gorm.DB, contractorData ContractorData, userMap map[string]*models.User) (bool, error) {
	creator := userMap[contractorData.CreatedByEmail]
	if creator == nil {
		return false, fmt.Errorf("creator %s not found", contractorData.CreatedByEmail)
	}

	var contractor models.Contractor
	err := db.Where("created_by_id = ? AND company_name = ?", creator.ID, contractorData.CompanyName).First(&contractor).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query contractor: %w", err)
	}

	contractor = models.Contractor{
		CreatedByID:   creator.ID,
		CompanyName:   contractorData.CompanyName,
		ContactName:   contractorData.ContactName,
		Trade:         contractorData.Trade,
		Email:         contractorData.Email,
		PhoneNumber:   contractorData.PhoneNumber,
		LicenseNumber: contractorData.LicenseNumber,
		IsInsured:     contractorData.IsInsured,
	}
	if err := db.Create(&contractor).Error; err != nil {
		return false, fmt.Errorf("failed to create contractor: %w", err)
	}
	return true, nil
}

func createTraining(db *gorm.DB, trainingData TrainingData) (bool, error) {
	var training models.Training
	err := db.Where("title = ?", trainingData.Title).First(&training).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query training: %w", err)
	}

	training = models.Training{
		Title:       trainingData.Title,
		Description: trainingData.Description,
		ContentURL:  trainingData.ContentURL,
	}
	if err := db.Create(&training).Error; err != nil {
		return false, fmt.Errorf("failed to create training: %w", err)
	}
	return true, nil
}
