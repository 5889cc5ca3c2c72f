package handlers_test

import (
	"net/http"
	"testing"

	"ops-portal-backend/internal/api/handlers"
	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/mocks"
	"ops-portal-backend/internal/scope"
	"ops-portal-backend/internal/service"
	"ops-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	http        *testutils.HTTPTestSuite
	requesterID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.requesterID = uuid.New()

	suite.http = testutils.SetupHTTPTest()
	// Stand-in for the auth middleware: inject requester identity directly.
	suite.http.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.requesterID)
		c.Set("role", models.RoleManager)
		c.Next()
	})
	suite.http.Router.POST("/users", suite.handler.CreateUser)
	suite.http.Router.GET("/users", suite.handler.ListUsers)
	suite.http.Router.GET("/users/:id", suite.handler.GetUser)
	suite.http.Router.PUT("/users/:id", suite.handler.UpdateUser)
	suite.http.Router.POST("/users/:id/approve", suite.handler.ApproveUser)
	suite.http.Router.DELETE("/users/:id", suite.handler.DeleteUser)
	suite.http.Router.GET("/users/:id/tags", suite.handler.GetUserTags)
	suite.http.Router.PUT("/users/:id/tags", suite.handler.ReplaceUserTags)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	expected := &service.UserResponse{
		ID:       uuid.New(),
		FullName: "Jane Doe",
		Email:    "jane.doe@example.com",
		Role:     models.RoleEmployee,
	}
	suite.mockService.EXPECT().CreateUser(gomock.Any()).Return(expected, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/users", service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane.doe@example.com",
		Password: "hunter2hunter2",
	})

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &response)
	suite.Equal(expected.ID, response.ID)
	suite.Equal("Jane Doe", response.FullName)
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail() {
	suite.mockService.EXPECT().CreateUser(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	w := suite.http.MakeRequest(http.MethodPost, "/users", service.CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane.doe@example.com",
		Password: "hunter2hunter2",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreateUser_InvalidBody() {
	// A JSON string is not a valid request object
	w := suite.http.MakeRequest(http.MethodPost, "/users", "not an object")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers_PassesScopeFilter() {
	managerID := uuid.New()

	suite.mockService.EXPECT().
		ListUsers(suite.requesterID, models.RoleManager, gomock.Any(), 10, 5).
		DoAndReturn(func(_ uuid.UUID, _ models.UserRole, f scope.Filter, _, _ int) ([]service.UserResponse, int64, error) {
			suite.Require().NotNil(f.ManagerID)
			suite.Equal(managerID, *f.ManagerID)
			suite.Require().Len(f.Tags, 1)
			suite.Equal("region", f.Tags[0].Key)
			suite.Equal("south", f.Tags[0].Value)
			return []service.UserResponse{}, 0, nil
		})

	w := suite.http.MakeRequest(http.MethodGet,
		"/users?manager_id="+managerID.String()+"&tag=region:south&limit=10&offset=5", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *UserHandlerTestSuite) TestListUsers_InvalidTag() {
	w := suite.http.MakeRequest(http.MethodGet, "/users?tag=no-colon-here", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "tag")
}

func (suite *UserHandlerTestSuite) TestListUsers_InvalidManagerID() {
	w := suite.http.MakeRequest(http.MethodGet, "/users?manager_id=not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetUserByID(id).Return(nil, apperrors.ErrUserNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/users/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetUser_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/users/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *UserHandlerTestSuite) TestApproveUser_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().ApproveUser(id).Return(&service.UserResponse{
		ID:         id,
		IsApproved: true,
	}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/users/"+id.String()+"/approve", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"is_approved":true`)
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteUser(id).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/users/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserHandlerTestSuite) TestReplaceTags_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ReplaceUserTags(id, gomock.Any()).
		Return([]service.TagResponse{{Key: "region", Value: "south"}}, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/users/"+id.String()+"/tags", service.ReplaceTagsRequest{
		Tags: []service.TagRequest{{Key: "region", Value: "south"}},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "region")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
