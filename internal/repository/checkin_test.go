//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CheckinRepositoryTestSuite tests the CheckinRepository
type CheckinRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CheckinRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CheckinRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCheckinRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CheckinRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CheckinRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CheckinRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CheckinRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.users.Create(user))
	return user
}

// TestCreate tests creating an open submission
func (suite *CheckinRepositoryTestSuite) TestCreate() {
	user := suite.createUser()

	checkin := suite.factories.Checkin.Create(user.ID)
	err := suite.repo.Create(checkin)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, checkin.ID)

	found, err := suite.repo.GetByID(checkin.ID)
	suite.NoError(err)
	suite.Equal(models.CheckinStatusOpen, found.Status)
	suite.Equal(user.Email, found.User.Email)
}

// TestAssignmentLifecycle tests persisting assign and complete transitions
func (suite *CheckinRepositoryTestSuite) TestAssignmentLifecycle() {
	submitter := suite.createUser()
	assignee := suite.createUser()

	checkin := suite.factories.Checkin.Create(submitter.ID)
	suite.NoError(suite.repo.Create(checkin))

	checkin.Status = models.CheckinStatusAssigned
	checkin.AssignedToID = &assignee.ID
	suite.NoError(suite.repo.Update(checkin))

	found, err := suite.repo.GetByID(checkin.ID)
	suite.NoError(err)
	suite.Equal(models.CheckinStatusAssigned, found.Status)
	suite.NotNil(found.AssignedTo)
	suite.Equal(assignee.ID, found.AssignedTo.ID)

	now := time.Now()
	found.Status = models.CheckinStatusCompleted
	found.CompletedAt = &now
	suite.NoError(suite.repo.Update(found))

	completed, err := suite.repo.GetByID(checkin.ID)
	suite.NoError(err)
	suite.Equal(models.CheckinStatusCompleted, completed.Status)
	suite.NotNil(completed.CompletedAt)
}

// TestGetByUserIDs tests scoped listing against an allowed submitter set
func (suite *CheckinRepositoryTestSuite) TestGetByUserIDs() {
	visible := suite.createUser()
	hidden := suite.createUser()

	suite.NoError(suite.repo.Create(suite.factories.Checkin.OnDate(visible.ID, time.Now().AddDate(0, 0, -1))))
	suite.NoError(suite.repo.Create(suite.factories.Checkin.Create(visible.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Checkin.Create(hidden.ID)))

	checkins, total, err := suite.repo.GetByUserIDs([]uuid.UUID{visible.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(checkins, 2)
	// Newest first
	suite.True(checkins[0].Date.After(checkins[1].Date) || checkins[0].Date.Equal(checkins[1].Date))

	empty, total, err := suite.repo.GetByUserIDs(nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(empty)
}

// TestAccessGrants tests grant create, lookup, and revoke
func (suite *CheckinRepositoryTestSuite) TestAccessGrants() {
	user := suite.createUser()
	admin := suite.createUser()

	has, err := suite.repo.HasAccessGrant(user.ID)
	suite.NoError(err)
	suite.False(has)

	grant := &models.SubmissionAccessGrant{UserID: user.ID, GrantedBy: admin.ID}
	suite.NoError(suite.repo.CreateAccessGrant(grant))

	has, err = suite.repo.HasAccessGrant(user.ID)
	suite.NoError(err)
	suite.True(has)

	// One grant per user while active
	err = suite.repo.CreateAccessGrant(&models.SubmissionAccessGrant{UserID: user.ID, GrantedBy: admin.ID})
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")

	suite.NoError(suite.repo.DeleteAccessGrant(user.ID))

	has, err = suite.repo.HasAccessGrant(user.ID)
	suite.NoError(err)
	suite.False(has)

	// Revoke frees the slot for a future grant
	suite.NoError(suite.repo.CreateAccessGrant(&models.SubmissionAccessGrant{UserID: user.ID, GrantedBy: admin.ID}))
}

// TestCheckinRepositoryTestSuite runs the test suite
func TestCheckinRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CheckinRepositoryTestSuite))
}
