// Package scope computes which employees a requester is entitled to see or
// act on, from the manager-assignment graph, departments, teams and tags.
// It owns no storage; everything is read through the Directory port and the
// resulting id sets are re-derived per request.
package scope

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Directory is the read-only view of the organization graph the resolver
// needs. The repository layer implements it over Postgres; tests implement
// it in memory.
type Directory interface {
	ListAssignments() ([]models.ManagerAssignment, error)
	AllUserIDs() ([]uuid.UUID, error)
	UserIDsByDepartment(departmentID uuid.UUID) ([]uuid.UUID, error)
	UserIDsByTeam(teamID uuid.UUID) ([]uuid.UUID, error)
	UserIDsByTag(key, value string) ([]uuid.UUID, error)
}

// PolicyDirectory is the narrower view the authorization predicates need.
type PolicyDirectory interface {
	// HasAssignment reports whether a direct manager->employee edge exists.
	HasAssignment(managerID, employeeID uuid.UUID) (bool, error)
	// HasAccessGrant reports whether the user holds an explicit
	// cross-employee submission access grant.
	HasAccessGrant(userID uuid.UUID) (bool, error)
	// DepartmentNameOf returns the name of the user's department, or ""
	// when the user has none.
	DepartmentNameOf(userID uuid.UUID) (string, error)
}
