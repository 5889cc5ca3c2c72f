//go:build integration
// +build integration

package repository

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	tags          *TagRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.tags = NewTagRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateEmail tests that an active email cannot be registered twice
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.WithEmail("duplicate@example.com")
	err := suite.repo.Create(user1)
	suite.NoError(err)

	user2 := suite.factories.User.WithEmail("duplicate@example.com")
	err = suite.repo.Create(user2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestEmailReusableAfterDelete tests that soft deletion frees the address
func (suite *UserRepositoryTestSuite) TestEmailReusableAfterDelete() {
	user1 := suite.factories.User.WithEmail("rehire@example.com")
	suite.NoError(suite.repo.Create(user1))
	suite.NoError(suite.repo.Delete(user1.ID))

	user2 := suite.factories.User.WithEmail("rehire@example.com")
	suite.NoError(suite.repo.Create(user2))
}

// TestGetByEmail tests looking up a user by address
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@example.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("lookup@example.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("missing@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests scoped listing against an allowed id set
func (suite *UserRepositoryTestSuite) TestGetByIDs() {
	inScope1 := suite.factories.User.Create()
	inScope2 := suite.factories.User.Create()
	outOfScope := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(inScope1))
	suite.NoError(suite.repo.Create(inScope2))
	suite.NoError(suite.repo.Create(outOfScope))

	users, total, err := suite.repo.GetByIDs([]uuid.UUID{inScope1.ID, inScope2.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(users, 2)
	for _, u := range users {
		suite.NotEqual(outOfScope.ID, u.ID)
	}
}

// TestGetByIDsEmptySet tests that an empty id set yields no rows, not all rows
func (suite *UserRepositoryTestSuite) TestGetByIDsEmptySet() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	users, total, err := suite.repo.GetByIDs(nil, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(users)
}

// TestGetAllUnlimited tests that a non-positive limit returns every row
func (suite *UserRepositoryTestSuite) TestGetAllUnlimited() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.GetAll(0, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 3)
}

// TestReplaceTags tests wholesale tag replacement round-trip
func (suite *UserRepositoryTestSuite) TestReplaceTags() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	err := suite.tags.ReplaceForUser(user.ID, []models.UserTag{
		{UserID: user.ID, Key: "region", Value: "north"},
		{UserID: user.ID, Key: "crew", Value: "water"},
	})
	suite.NoError(err)

	tags, err := suite.tags.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Len(tags, 2)

	// Replacement drops keys not present in the new set
	err = suite.tags.ReplaceForUser(user.ID, []models.UserTag{
		{UserID: user.ID, Key: "region", Value: "south"},
	})
	suite.NoError(err)

	tags, err = suite.tags.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Len(tags, 1)
	suite.Equal("region", tags[0].Key)
	suite.Equal("south", tags[0].Value)
}

// TestReplaceTagsEmpty tests clearing all tags
func (suite *UserRepositoryTestSuite) TestReplaceTagsEmpty() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.tags.ReplaceForUser(user.ID, []models.UserTag{
		{UserID: user.ID, Key: "region", Value: "north"},
	}))
	suite.NoError(suite.tags.ReplaceForUser(user.ID, nil))

	tags, err := suite.tags.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Empty(tags)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
