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

// TrainingServiceTestSuite defines the test suite for TrainingService
type TrainingServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockTrainingRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockDir         *mocks.MockOrgDirectoryInterface
	trainingService *service.TrainingService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TrainingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTrainingRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDir = mocks.NewMockOrgDirectoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := scope.NewResolver(suite.mockDir)
	suite.trainingService = service.NewTrainingService(suite.mockRepo, suite.mockUserRepo, resolver, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TrainingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAssignTrainingUserNotFound tests assigning to a missing user
func (suite *TrainingServiceTestSuite) TestAssignTrainingUserNotFound() {
	req := &service.AssignTrainingRequest{TrainingID: uuid.New(), UserID: uuid.New()}

	suite.mockRepo.EXPECT().GetByID(req.TrainingID).Return(&models.Training{}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(req.UserID).Return(nil, apperrors.ErrUserNotFound).Times(1)

	response, err := suite.trainingService.AssignTraining(uuid.New(), req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	assert.Nil(suite.T(), response)
}

// TestListAssignmentsEmployeeSeesOnlyOwn tests the default employee scope
func (suite *TrainingServiceTestSuite) TestListAssignmentsEmployeeSeesOnlyOwn() {
	employee := uuid.New()
	coworker := uuid.New()

	suite.mockDir.EXPECT().AllUserIDs().Return([]uuid.UUID{employee, coworker}, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetAssignmentsByUserIDs([]uuid.UUID{employee}, 20, 0).
		Return([]models.TrainingAssignment{{UserID: employee}}, int64(1), nil).
		Times(1)

	assignments, total, err := suite.trainingService.ListAssignments(employee, models.RoleEmployee, scope.Filter{}, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), assignments, 1)
}

// TestListAssignmentsManagerConfinedToSubtree tests manager scoping
func (suite *TrainingServiceTestSuite) TestListAssignmentsManagerConfinedToSubtree() {
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
		GetAssignmentsByUserIDs(gomock.Len(2), 20, 0).
		Return([]models.TrainingAssignment{{}}, int64(1), nil).
		Times(1)

	assignments, total, err := suite.trainingService.ListAssignments(manager, models.RoleManager, scope.Filter{}, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), assignments, 1)
}

// TestListAssignmentsManagerWithDepartmentFilter tests filter intersection
// with the manager's subtree
func (suite *TrainingServiceTestSuite) TestListAssignmentsManagerWithDepartmentFilter() {
	manager := uuid.New()
	report := uuid.New()
	deptID := uuid.New()

	// The report is in the department, the manager is not, so only the
	// report survives the intersection.
	suite.mockDir.EXPECT().UserIDsByDepartment(deptID).Return([]uuid.UUID{report}, nil).Times(1)
	suite.mockDir.EXPECT().
		ListAssignments().
		Return([]models.ManagerAssignment{{ManagerID: manager, EmployeeID: report}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetAssignmentsByUserIDs([]uuid.UUID{report}, 20, 0).
		Return([]models.TrainingAssignment{{UserID: report}}, int64(1), nil).
		Times(1)

	assignments, total, err := suite.trainingService.ListAssignments(
		manager, models.RoleManager, scope.Filter{DepartmentID: &deptID}, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), assignments, 1)
}

// TestUpdateAssignmentStatusCompleted tests the completion timestamp
func (suite *TrainingServiceTestSuite) TestUpdateAssignmentStatusCompleted() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetAssignmentByID(id).
		Return(&models.TrainingAssignment{Status: models.TrainingStatusInProgress}, nil).
		Times(1)
	suite.mockRepo.EXPECT().UpdateAssignment(gomock.Any()).Return(nil).Times(1)

	response, err := suite.trainingService.UpdateAssignmentStatus(id, &service.UpdateTrainingStatusRequest{Status: "completed"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TrainingStatusCompleted, response.Status)
	assert.NotNil(suite.T(), response.CompletedAt)
}

// TestUpdateAssignmentStatusInvalid tests an unknown lifecycle state
func (suite *TrainingServiceTestSuite) TestUpdateAssignmentStatusInvalid() {
	response, err := suite.trainingService.UpdateAssignmentStatus(uuid.New(), &service.UpdateTrainingStatusRequest{Status: "archived"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestTrainingServiceTestSuite runs the test suite
func TestTrainingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingServiceTestSuite))
}
