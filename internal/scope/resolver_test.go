package scope_test

import (
	"testing"

	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeIDsEmptyFilterReturnsEveryone(t *testing.T) {
	dir := newFakeDirectory()
	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	dir.users = []uuid.UUID{u1, u2, u3, u2} // duplicate must collapse

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{})
	require.NoError(t, err)
	assert.Len(t, ids, 3)
	assert.Equal(t, idSet(u1, u2, u3), toSet(ids))
}

func TestEmployeeIDsManagerFilter(t *testing.T) {
	dir := newFakeDirectory()
	m, e1, e2 := uuid.New(), uuid.New(), uuid.New()
	dir.addEdge(m, e1)
	dir.addEdge(e1, e2)

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{ManagerID: &m})
	require.NoError(t, err)
	assert.Equal(t, idSet(e1, e2), toSet(ids))
}

func TestEmployeeIDsFilterConjunction(t *testing.T) {
	dir := newFakeDirectory()
	dept := uuid.New()
	inBoth, deptOnly, tagOnly := uuid.New(), uuid.New(), uuid.New()
	dir.users = []uuid.UUID{inBoth, deptOnly, tagOnly}
	dir.departments[dept] = []uuid.UUID{inBoth, deptOnly}
	dir.tags["location:NYC"] = []uuid.UUID{inBoth, tagOnly}

	r := scope.NewResolver(dir)
	filter := scope.Filter{
		DepartmentID: &dept,
		Tags:         []scope.Tag{{Key: "location", Value: "NYC"}},
	}

	combined, err := r.EmployeeIDs(filter)
	require.NoError(t, err)
	assert.Equal(t, idSet(inBoth), toSet(combined))

	// Conjunction equals the intersection of the single-filter results.
	byDept, err := r.EmployeeIDs(scope.Filter{DepartmentID: &dept})
	require.NoError(t, err)
	byTag, err := r.EmployeeIDs(scope.Filter{Tags: filter.Tags})
	require.NoError(t, err)

	expected := map[uuid.UUID]struct{}{}
	for id := range toSet(byDept) {
		if _, ok := toSet(byTag)[id]; ok {
			expected[id] = struct{}{}
		}
	}
	assert.Equal(t, expected, toSet(combined))
}

func TestEmployeeIDsMultipleTagsConjunctive(t *testing.T) {
	dir := newFakeDirectory()
	both, nycOnly := uuid.New(), uuid.New()
	dir.tags["location:NYC"] = []uuid.UUID{both, nycOnly}
	dir.tags["branch:North"] = []uuid.UUID{both}

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{
		Tags: []scope.Tag{{Key: "location", Value: "NYC"}, {Key: "branch", Value: "North"}},
	})
	require.NoError(t, err)
	assert.Equal(t, idSet(both), toSet(ids))
}

func TestEmployeeIDsTeamFilter(t *testing.T) {
	dir := newFakeDirectory()
	team := uuid.New()
	member := uuid.New()
	dir.teams[team] = []uuid.UUID{member}

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{TeamID: &team})
	require.NoError(t, err)
	assert.Equal(t, idSet(member), toSet(ids))
}

func TestEmployeeIDsNoMatchesIsEmptyNotError(t *testing.T) {
	dir := newFakeDirectory()
	team := uuid.New()

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{TeamID: &team})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// Scenario from the hierarchy: M1 manages E1, E2 and M2; M2 manages E3. The
// whole subtree is visible to M1.
func TestEmployeeIDsNestedManagerScenario(t *testing.T) {
	dir := newFakeDirectory()
	m1, m2, e1, e2, e3 := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	dir.addEdge(m1, e1)
	dir.addEdge(m1, e2)
	dir.addEdge(m1, m2)
	dir.addEdge(m2, e3)

	ids, err := scope.NewResolver(dir).EmployeeIDs(scope.Filter{ManagerID: &m1})
	require.NoError(t, err)
	assert.Equal(t, idSet(e1, e2, m2, e3), toSet(ids))
}

func TestForRequesterOwnerUnrestricted(t *testing.T) {
	dir := newFakeDirectory()
	owner, u1, u2 := uuid.New(), uuid.New(), uuid.New()
	dir.users = []uuid.UUID{owner, u1, u2}

	ids, err := scope.NewResolver(dir).ForRequester(owner, models.RoleOwner, scope.Filter{})
	require.NoError(t, err)
	assert.Equal(t, idSet(owner, u1, u2), toSet(ids))
}

func TestForRequesterManagerConfinedToSubtree(t *testing.T) {
	dir := newFakeDirectory()
	m, report, outsider := uuid.New(), uuid.New(), uuid.New()
	dir.users = []uuid.UUID{m, report, outsider}
	dir.addEdge(m, report)

	ids, err := scope.NewResolver(dir).ForRequester(m, models.RoleManager, scope.Filter{})
	require.NoError(t, err)
	assert.Equal(t, idSet(m, report), toSet(ids))
}

func TestForRequesterEmployeeSeesOnlySelf(t *testing.T) {
	dir := newFakeDirectory()
	emp, other := uuid.New(), uuid.New()
	dir.users = []uuid.UUID{emp, other}

	ids, err := scope.NewResolver(dir).ForRequester(emp, models.RoleEmployee, scope.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{emp}, ids)
}

func TestForRequesterEmployeeFilteredOut(t *testing.T) {
	dir := newFakeDirectory()
	emp := uuid.New()
	team := uuid.New()
	dir.users = []uuid.UUID{emp}
	// Team the employee does not belong to.
	dir.teams[team] = []uuid.UUID{uuid.New()}

	ids, err := scope.NewResolver(dir).ForRequester(emp, models.RoleEmployee, scope.Filter{TeamID: &team})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestParseTag(t *testing.T) {
	tag, ok := scope.ParseTag("location:NYC")
	assert.True(t, ok)
	assert.Equal(t, scope.Tag{Key: "location", Value: "NYC"}, tag)

	tag, ok = scope.ParseTag(" branch : North ")
	assert.True(t, ok)
	assert.Equal(t, scope.Tag{Key: "branch", Value: "North"}, tag)

	for _, raw := range []string{"", "nocolon", ":value", "key:", " : "} {
		_, ok := scope.ParseTag(raw)
		assert.False(t, ok, "expected %q to be dropped", raw)
	}
}
