package service_test

import (
	"testing"
	"time"

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

// CheckinServiceTestSuite defines the test suite for CheckinService
type CheckinServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCheckinRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockDir        *mocks.MockOrgDirectoryInterface
	checkinService *service.CheckinService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *CheckinServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCheckinRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDir = mocks.NewMockOrgDirectoryInterface(suite.ctrl)
	suite.validator = validator.New()

	resolver := scope.NewResolver(suite.mockDir)
	checker := scope.NewChecker(suite.mockDir, nil)
	suite.checkinService = service.NewCheckinService(suite.mockRepo, suite.mockUserRepo, resolver, checker, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *CheckinServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCheckin tests submitting a daily check-in
func (suite *CheckinServiceTestSuite) TestCreateCheckin() {
	userID := uuid.New()
	req := &service.CreateCheckinRequest{
		Date:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		JobSite: "Maple St water loss",
		Notes:   "Demo complete, drying in progress",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.CheckinSubmission) error {
			assert.Equal(suite.T(), models.CheckinStatusOpen, c.Status)
			assert.Equal(suite.T(), userID, c.UserID)
			return nil
		}).
		Times(1)

	response, err := suite.checkinService.CreateCheckin(userID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-06-02", response.Date)
	assert.Equal(suite.T(), models.CheckinStatusOpen, response.Status)
}

// TestListCheckinsElevatedManagerSeesAll tests elevated department visibility
func (suite *CheckinServiceTestSuite) TestListCheckinsElevatedManagerSeesAll() {
	manager := uuid.New()
	all := []uuid.UUID{uuid.New(), uuid.New()}

	suite.mockDir.EXPECT().HasAccessGrant(manager).Return(false, nil).Times(1)
	suite.mockDir.EXPECT().DepartmentNameOf(manager).Return("Estimating", nil).Times(1)
	suite.mockDir.EXPECT().AllUserIDs().Return(all, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByUserIDs(gomock.Len(2), 50, 0).
		Return([]models.CheckinSubmission{{}, {}}, int64(2), nil).
		Times(1)

	checkins, total, err := suite.checkinService.ListCheckins(manager, models.RoleManager, scope.Filter{}, 50, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), total)
	assert.Len(suite.T(), checkins, 2)
}

// TestListCheckinsPlainManagerConfinedToSubtree tests non-elevated scoping
func (suite *CheckinServiceTestSuite) TestListCheckinsPlainManagerConfinedToSubtree() {
	manager := uuid.New()
	report := uuid.New()
	outsider := uuid.New()

	suite.mockDir.EXPECT().HasAccessGrant(manager).Return(false, nil).Times(1)
	suite.mockDir.EXPECT().DepartmentNameOf(manager).Return("Field Ops", nil).Times(1)
	suite.mockDir.EXPECT().AllUserIDs().Return([]uuid.UUID{manager, report, outsider}, nil).Times(1)
	suite.mockDir.EXPECT().
		ListAssignments().
		Return([]models.ManagerAssignment{{ManagerID: manager, EmployeeID: report}}, nil).
		Times(1)
	// Subtree plus self, never the outsider.
	suite.mockRepo.EXPECT().
		GetByUserIDs(gomock.Len(2), 50, 0).
		Return([]models.CheckinSubmission{{}}, int64(1), nil).
		Times(1)

	checkins, total, err := suite.checkinService.ListCheckins(manager, models.RoleManager, scope.Filter{}, 50, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), checkins, 1)
}

// TestListCheckinsGrantHolderSeesAll tests explicit access grants
func (suite *CheckinServiceTestSuite) TestListCheckinsGrantHolderSeesAll() {
	employee := uuid.New()
	all := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	suite.mockDir.EXPECT().HasAccessGrant(employee).Return(true, nil).Times(1)
	suite.mockDir.EXPECT().AllUserIDs().Return(all, nil).Times(1)
	suite.mockRepo.EXPECT().
		GetByUserIDs(gomock.Len(3), 50, 0).
		Return([]models.CheckinSubmission{{}, {}, {}}, int64(3), nil).
		Times(1)

	checkins, total, err := suite.checkinService.ListCheckins(employee, models.RoleEmployee, scope.Filter{}, 50, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), checkins, 3)
}

// TestAssignCheckinDirectReport tests assignment to a direct report
func (suite *CheckinServiceTestSuite) TestAssignCheckinDirectReport() {
	manager := uuid.New()
	assignee := uuid.New()
	checkinID := uuid.New()
	req := &service.AssignCheckinRequest{AssigneeID: assignee}

	suite.mockRepo.EXPECT().
		GetByID(checkinID).
		Return(&models.CheckinSubmission{Status: models.CheckinStatusOpen}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(assignee).Return(&models.User{}, nil).Times(1)
	suite.mockDir.EXPECT().HasAccessGrant(manager).Return(false, nil).Times(1)
	suite.mockDir.EXPECT().DepartmentNameOf(manager).Return("Estimating", nil).Times(1)
	suite.mockDir.EXPECT().HasAssignment(manager, assignee).Return(true, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.checkinService.AssignCheckin(checkinID, manager, models.RoleManager, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CheckinStatusAssigned, response.Status)
	assert.Equal(suite.T(), assignee, *response.AssignedToID)
}

// TestAssignCheckinTransitiveReportForbidden tests that visibility does not
// imply assignability
func (suite *CheckinServiceTestSuite) TestAssignCheckinTransitiveReportForbidden() {
	manager := uuid.New()
	grandReport := uuid.New()
	checkinID := uuid.New()
	req := &service.AssignCheckinRequest{AssigneeID: grandReport}

	suite.mockRepo.EXPECT().
		GetByID(checkinID).
		Return(&models.CheckinSubmission{Status: models.CheckinStatusOpen}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(grandReport).Return(&models.User{}, nil).Times(1)
	suite.mockDir.EXPECT().HasAccessGrant(manager).Return(false, nil).Times(1)
	suite.mockDir.EXPECT().DepartmentNameOf(manager).Return("Estimating", nil).Times(1)
	// No direct edge to the transitive report.
	suite.mockDir.EXPECT().HasAssignment(manager, grandReport).Return(false, nil).Times(1)

	response, err := suite.checkinService.AssignCheckin(checkinID, manager, models.RoleManager, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestAssignCheckinAlreadyCompleted tests assignment to a closed submission
func (suite *CheckinServiceTestSuite) TestAssignCheckinAlreadyCompleted() {
	checkinID := uuid.New()
	req := &service.AssignCheckinRequest{AssigneeID: uuid.New()}

	suite.mockRepo.EXPECT().
		GetByID(checkinID).
		Return(&models.CheckinSubmission{Status: models.CheckinStatusCompleted}, nil).
		Times(1)

	response, err := suite.checkinService.AssignCheckin(checkinID, uuid.New(), models.RoleOwner, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCheckinAlreadyCompleted)
	assert.Nil(suite.T(), response)
}

// TestCompleteCheckinByAssignee tests completion by the assigned user
func (suite *CheckinServiceTestSuite) TestCompleteCheckinByAssignee() {
	assignee := uuid.New()
	checkinID := uuid.New()
	submission := &models.CheckinSubmission{
		UserID:       uuid.New(),
		Status:       models.CheckinStatusAssigned,
		AssignedToID: &assignee,
	}

	suite.mockRepo.EXPECT().GetByID(checkinID).Return(submission, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.checkinService.CompleteCheckin(checkinID, assignee, models.RoleEmployee)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CheckinStatusCompleted, response.Status)
	assert.NotNil(suite.T(), response.CompletedAt)
}

// TestCompleteCheckinByOwner tests that owners can always complete
func (suite *CheckinServiceTestSuite) TestCompleteCheckinByOwner() {
	checkinID := uuid.New()
	submission := &models.CheckinSubmission{UserID: uuid.New(), Status: models.CheckinStatusOpen}

	suite.mockRepo.EXPECT().GetByID(checkinID).Return(submission, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.checkinService.CompleteCheckin(checkinID, uuid.New(), models.RoleOwner)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CheckinStatusCompleted, response.Status)
}

// TestCompleteCheckinForbidden tests completion by an unrelated employee
func (suite *CheckinServiceTestSuite) TestCompleteCheckinForbidden() {
	requester := uuid.New()
	checkinID := uuid.New()
	submission := &models.CheckinSubmission{UserID: uuid.New(), Status: models.CheckinStatusOpen}

	suite.mockRepo.EXPECT().GetByID(checkinID).Return(submission, nil).Times(1)
	suite.mockDir.EXPECT().HasAccessGrant(requester).Return(false, nil).Times(1)

	response, err := suite.checkinService.CompleteCheckin(checkinID, requester, models.RoleEmployee)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), response)
}

// TestGrantSubmissionAccess tests granting cross-employee visibility
func (suite *CheckinServiceTestSuite) TestGrantSubmissionAccess() {
	userID := uuid.New()
	grantedBy := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil).Times(1)
	suite.mockRepo.EXPECT().HasAccessGrant(userID).Return(false, nil).Times(1)
	suite.mockRepo.EXPECT().CreateAccessGrant(gomock.Any()).Return(nil).Times(1)

	err := suite.checkinService.GrantSubmissionAccess(userID, grantedBy)

	assert.NoError(suite.T(), err)
}

// TestGrantSubmissionAccessDuplicate tests duplicate grant rejection
func (suite *CheckinServiceTestSuite) TestGrantSubmissionAccessDuplicate() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil).Times(1)
	suite.mockRepo.EXPECT().HasAccessGrant(userID).Return(true, nil).Times(1)

	err := suite.checkinService.GrantSubmissionAccess(userID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccessGrantExists)
}

// TestRevokeSubmissionAccessNotFound tests revoking a missing grant
func (suite *CheckinServiceTestSuite) TestRevokeSubmissionAccessNotFound() {
	userID := uuid.New()

	suite.mockRepo.EXPECT().HasAccessGrant(userID).Return(false, nil).Times(1)

	err := suite.checkinService.RevokeSubmissionAccess(userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAccessGrantNotFound)
}

// TestCheckinServiceTestSuite runs the test suite
func TestCheckinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckinServiceTestSuite))
}
