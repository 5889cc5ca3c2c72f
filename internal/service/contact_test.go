package service_test

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/mocks"
	"ops-portal-backend/internal/scope"
	"ops-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockContactRepositoryInterface
	mockDir        *mocks.MockOrgDirectoryInterface
	contactService *service.ContactService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockDir = mocks.NewMockOrgDirectoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := scope.NewResolver(suite.mockDir)
	suite.contactService = service.NewContactService(suite.mockRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateContact tests creating a contact stamped with its creator
func (suite *ContactServiceTestSuite) TestCreateContact() {
	creator := uuid.New()
	req := &service.CreateContactRequest{
		Name:        "Dana Whitfield",
		Company:     "Lakeside Adjusters",
		Email:       "dana@lakeside.example.com",
		PhoneNumber: "555-0134",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.CreateContact(creator, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), creator, response.CreatedByID)
	assert.Equal(suite.T(), req.Name, response.Name)
}

// TestCreateContactInvalidEmail tests request validation
func (suite *ContactServiceTestSuite) TestCreateContactInvalidEmail() {
	req := &service.CreateContactRequest{Name: "Dana", Email: "not-an-email"}

	response, err := suite.contactService.CreateContact(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestListContactsEmployeeSeesOnlyOwn tests the default employee scope
func (suite *ContactServiceTestSuite) TestListContactsEmployeeSeesOnlyOwn() {
	employee := uuid.New()
	coworker := uuid.New()

	suite.mockDir.EXPECT().AllUserIDs().Return([]uuid.UUID{employee, coworker}, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByCreatorIDs([]uuid.UUID{employee}, 20, 0).
		Return([]models.Contact{{CreatedByID: employee}}, int64(1), nil).
		Times(1)

	contacts, total, err := suite.contactService.ListContacts(employee, models.RoleEmployee, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), contacts, 1)
}

// TestListContactsManagerConfinedToSubtree tests manager scoping
func (suite *ContactServiceTestSuite) TestListContactsManagerConfinedToSubtree() {
	manager := uuid.New()
	report := uuid.New()
	outsider := uuid.New()

	suite.mockDir.EXPECT().AllUserIDs().Return([]uuid.UUID{manager, report, outsider}, nil).Times(1)
	suite.mockDir.EXPECT().
		ListAssignments().
		Return([]models.ManagerAssignment{{ManagerID: manager, EmployeeID: report}}, nil).
		Times(1)
	// Subtree plus self, never the outsider.
	suite.mockRepo.EXPECT().
		GetByCreatorIDs(gomock.Len(2), 20, 0).
		Return([]models.Contact{{}, {}}, int64(2), nil).
		Times(1)

	contacts, total, err := suite.contactService.ListContacts(manager, models.RoleManager, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), contacts, 2)
}

// TestListContactsOwnerSeesEveryCreator tests the unrestricted roles
func (suite *ContactServiceTestSuite) TestListContactsOwnerSeesEveryCreator() {
	owner := uuid.New()
	all := []uuid.UUID{owner, uuid.New(), uuid.New()}

	suite.mockDir.EXPECT().AllUserIDs().Return(all, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByCreatorIDs(gomock.Len(3), 20, 0).
		Return([]models.Contact{{}, {}, {}}, int64(3), nil).
		Times(1)

	contacts, total, err := suite.contactService.ListContacts(owner, models.RoleOwner, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), contacts, 3)
}

// TestListContactsNegativePagination tests pagination validation
func (suite *ContactServiceTestSuite) TestListContactsNegativePagination() {
	contacts, total, err := suite.contactService.ListContacts(uuid.New(), models.RoleOwner, -1, 0)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
	assert.Equal(suite.T(), int64(0), total)
	assert.Nil(suite.T(), contacts)
}

// TestUpdateContactNotFound tests updating a missing contact
func (suite *ContactServiceTestSuite) TestUpdateContactNotFound() {
	id := uuid.New()
	name := "Renamed"

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrContactNotFound).Times(1)

	response, err := suite.contactService.UpdateContact(id, &service.UpdateContactRequest{Name: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotFound)
	assert.Nil(suite.T(), response)
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
