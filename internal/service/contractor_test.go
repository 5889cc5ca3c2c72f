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

// ContractorServiceTestSuite defines the test suite for ContractorService
type ContractorServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockContractorRepositoryInterface
	mockDir           *mocks.MockOrgDirectoryInterface
	contractorService *service.ContractorService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ContractorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContractorRepositoryInterface(suite.ctrl)
	suite.mockDir = mocks.NewMockOrgDirectoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := scope.NewResolver(suite.mockDir)
	suite.contractorService = service.NewContractorService(suite.mockRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ContractorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateContractor tests creating a contractor stamped with its creator
func (suite *ContractorServiceTestSuite) TestCreateContractor() {
	creator := uuid.New()
	req := &service.CreateContractorRequest{
		CompanyName:   "Ridgegate Roofing",
		ContactName:   "Sal Ortega",
		Trade:         "roofing",
		LicenseNumber: "RC-20441",
		IsInsured:     true,
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contractorService.CreateContractor(creator, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), creator, response.CreatedByID)
	assert.True(suite.T(), response.IsInsured)
}

// TestCreateContractorMissingCompany tests request validation
func (suite *ContractorServiceTestSuite) TestCreateContractorMissingCompany() {
	req := &service.CreateContractorRequest{Trade: "roofing"}

	response, err := suite.contractorService.CreateContractor(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestListContractorsEmployeeSeesOnlyOwn tests the default employee scope
func (suite *ContractorServiceTestSuite) TestListContractorsEmployeeSeesOnlyOwn() {
	employee := uuid.New()
	coworker := uuid.New()

	suite.mockDir.EXPECT().AllUserIDs().Return([]uuid.UUID{employee, coworker}, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByCreatorIDs([]uuid.UUID{employee}, 20, 0).
		Return([]models.Contractor{{CreatedByID: employee}}, int64(1), nil).
		Times(1)

	contractors, total, err := suite.contractorService.ListContractors(employee, models.RoleEmployee, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), contractors, 1)
}

// TestListContractorsManagerConfinedToSubtree tests manager scoping
func (suite *ContractorServiceTestSuite) TestListContractorsManagerConfinedToSubtree() {
	manager := uuid.New()
	report := uuid.New()
	grandReport := uuid.New()
	outsider := uuid.New()

	suite.mockDir.EXPECT().
		AllUserIDs().
		Return([]uuid.UUID{manager, report, grandReport, outsider}, nil).
		Times(1)
	// The walk is transitive, so the report's own report is in scope too.
	suite.mockDir.EXPECT().
		ListAssignments().
		Return([]models.ManagerAssignment{
			{ManagerID: manager, EmployeeID: report},
			{ManagerID: report, EmployeeID: grandReport},
		}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByCreatorIDs(gomock.Len(3), 20, 0).
		Return([]models.Contractor{{}, {}, {}}, int64(3), nil).
		Times(1)

	contractors, total, err := suite.contractorService.ListContractors(manager, models.RoleManager, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), contractors, 3)
}

// TestListContractorsNegativePagination tests pagination validation
func (suite *ContractorServiceTestSuite) TestListContractorsNegativePagination() {
	contractors, total, err := suite.contractorService.ListContractors(uuid.New(), models.RoleOwner, 20, -1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
	assert.Equal(suite.T(), int64(0), total)
	assert.Nil(suite.T(), contractors)
}

// TestDeleteContractorNotFound tests deleting a missing contractor
func (suite *ContractorServiceTestSuite) TestDeleteContractorNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, apperrors.ErrContractorNotFound).Times(1)

	err := suite.contractorService.DeleteContractor(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrContractorNotFound)
}

// TestContractorServiceTestSuite runs the test suite
func TestContractorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractorServiceTestSuite))
}
