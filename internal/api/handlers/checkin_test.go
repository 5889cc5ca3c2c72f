package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"ops-portal-backend/internal/api/handlers"
	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/mocks"
	"ops-portal-backend/internal/service"
	"ops-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CheckinHandlerTestSuite defines the test suite for CheckinHandler
type CheckinHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCheckinServiceInterface
	handler     *handlers.CheckinHandler
	http        *testutils.HTTPTestSuite
	requesterID uuid.UUID
	role        models.UserRole
}

// SetupTest sets up the test suite
func (suite *CheckinHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCheckinServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCheckinHandler(suite.mockService)
	suite.requesterID = uuid.New()
	suite.role = models.RoleManager

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.requesterID)
		c.Set("role", suite.role)
		c.Next()
	})
	suite.http.Router.POST("/checkins", suite.handler.CreateCheckin)
	suite.http.Router.GET("/checkins", suite.handler.ListCheckins)
	suite.http.Router.POST("/checkins/:id/assign", suite.handler.AssignCheckin)
	suite.http.Router.POST("/checkins/:id/complete", suite.handler.CompleteCheckin)
	suite.http.Router.POST("/checkins/access/:userId", suite.handler.GrantSubmissionAccess)
	suite.http.Router.DELETE("/checkins/access/:userId", suite.handler.RevokeSubmissionAccess)
}

// TearDownTest cleans up after each test
func (suite *CheckinHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CheckinHandlerTestSuite) TestCreateCheckin_UsesRequesterIdentity() {
	suite.mockService.EXPECT().
		CreateCheckin(suite.requesterID, gomock.Any()).
		Return(&service.CheckinResponse{ID: uuid.New(), Status: models.CheckinStatusOpen}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/checkins", service.CreateCheckinRequest{
		Date:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Notes: "site visit at the Hooper job",
	})

	var resp service.CheckinResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(models.CheckinStatusOpen, resp.Status)
}

func (suite *CheckinHandlerTestSuite) TestListCheckins_Success() {
	suite.mockService.EXPECT().
		ListCheckins(suite.requesterID, suite.role, gomock.Any(), 20, 0).
		Return([]service.CheckinResponse{}, int64(0), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/checkins", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CheckinHandlerTestSuite) TestAssignCheckin_Forbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AssignCheckin(id, suite.requesterID, suite.role, gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	w := suite.http.MakeRequest(http.MethodPost, "/checkins/"+id.String()+"/assign",
		service.AssignCheckinRequest{AssigneeID: uuid.New()})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *CheckinHandlerTestSuite) TestAssignCheckin_AlreadyCompleted() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AssignCheckin(id, suite.requesterID, suite.role, gomock.Any()).
		Return(nil, apperrors.ErrCheckinAlreadyCompleted)

	w := suite.http.MakeRequest(http.MethodPost, "/checkins/"+id.String()+"/assign",
		service.AssignCheckinRequest{AssigneeID: uuid.New()})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CheckinHandlerTestSuite) TestCompleteCheckin_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().
		CompleteCheckin(id, suite.requesterID, suite.role).
		Return(&service.CheckinResponse{ID: id, Status: models.CheckinStatusCompleted}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/checkins/"+id.String()+"/complete", nil)

	var resp service.CheckinResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(models.CheckinStatusCompleted, resp.Status)
}

func (suite *CheckinHandlerTestSuite) TestGrantAccess_Duplicate() {
	userID := uuid.New()
	suite.mockService.EXPECT().
		GrantSubmissionAccess(userID, suite.requesterID).
		Return(apperrors.ErrAccessGrantExists)

	w := suite.http.MakeRequest(http.MethodPost, "/checkins/access/"+userID.String(), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CheckinHandlerTestSuite) TestRevokeAccess_NotFound() {
	userID := uuid.New()
	suite.mockService.EXPECT().
		RevokeSubmissionAccess(userID).
		Return(apperrors.ErrAccessGrantNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/checkins/access/"+userID.String(), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// TestCheckinHandlerTestSuite runs the test suite
func TestCheckinHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckinHandlerTestSuite))
}
