package scope_test

import (
	"ops-portal-backend/internal/database/models"
	"ops-portal-backend/internal/scope"

	"github.com/google/uuid"
)

// fakeDirectory is an in-memory Directory and PolicyDirectory used across
// the package tests.
type fakeDirectory struct {
	users       []uuid.UUID
	edges       []models.ManagerAssignment
	departments map[uuid.UUID][]uuid.UUID // department id -> member ids
	teams       map[uuid.UUID][]uuid.UUID
	tags        map[string][]uuid.UUID // "key:value" -> user ids
	grants      map[uuid.UUID]bool
	userDept    map[uuid.UUID]string // user id -> department name
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		departments: map[uuid.UUID][]uuid.UUID{},
		teams:       map[uuid.UUID][]uuid.UUID{},
		tags:        map[string][]uuid.UUID{},
		grants:      map[uuid.UUID]bool{},
		userDept:    map[uuid.UUID]string{},
	}
}

func (d *fakeDirectory) addEdge(managerID, employeeID uuid.UUID) {
	d.edges = append(d.edges, models.ManagerAssignment{ManagerID: managerID, EmployeeID: employeeID})
}

func (d *fakeDirectory) ListAssignments() ([]models.ManagerAssignment, error) {
	return d.edges, nil
}

func (d *fakeDirectory) AllUserIDs() ([]uuid.UUID, error) {
	return d.users, nil
}

func (d *fakeDirectory) UserIDsByDepartment(id uuid.UUID) ([]uuid.UUID, error) {
	return d.departments[id], nil
}

func (d *fakeDirectory) UserIDsByTeam(id uuid.UUID) ([]uuid.UUID, error) {
	return d.teams[id], nil
}

func (d *fakeDirectory) UserIDsByTag(key, value string) ([]uuid.UUID, error) {
	return d.tags[key+":"+value], nil
}

func (d *fakeDirectory) HasAssignment(managerID, employeeID uuid.UUID) (bool, error) {
	for _, e := range d.edges {
		if e.ManagerID == managerID && e.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (d *fakeDirectory) HasAccessGrant(userID uuid.UUID) (bool, error) {
	return d.grants[userID], nil
}

func (d *fakeDirectory) DepartmentNameOf(userID uuid.UUID) (string, error) {
	return d.userDept[userID], nil
}

func idSet(ids ...uuid.UUID) map[uuid.UUID]struct{} {
	s := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	return idSet(ids...)
}

var _ scope.Directory = (*fakeDirectory)(nil)
var _ scope.PolicyDirectory = (*fakeDirectory)(nil)
