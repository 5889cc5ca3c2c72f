package scope

import (
	"ops-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// DefaultElevatedDepartments lists the departments whose managers get
// cross-employee submission visibility out of the box. Kept as policy data
// rather than a string compared at call sites so the rule can be extended
// through configuration.
var DefaultElevatedDepartments = []string{"Estimating"}

// Checker evaluates the authorization predicates. All methods are pure
// reads; a false result is an ordinary outcome the caller turns into a 403.
type Checker struct {
	dir      PolicyDirectory
	elevated map[string]struct{}
}

// NewChecker creates a checker. An empty elevatedDepartments falls back to
// DefaultElevatedDepartments.
func NewChecker(dir PolicyDirectory, elevatedDepartments []string) *Checker {
	if len(elevatedDepartments) == 0 {
		elevatedDepartments = DefaultElevatedDepartments
	}
	set := make(map[string]struct{}, len(elevatedDepartments))
	for _, name := range elevatedDepartments {
		set[name] = struct{}{}
	}
	return &Checker{dir: dir, elevated: set}
}

// CanCreateAnnouncement allows managers and above to post announcements.
func CanCreateAnnouncement(role models.UserRole) bool {
	switch role {
	case models.RoleSuperAdmin, models.RoleOwner, models.RoleManager:
		return true
	}
	return false
}

// CanManageAnnouncement allows owners and super admins to edit or delete any
// announcement; a manager may only manage their own.
func CanManageAnnouncement(role models.UserRole, authorID, requesterID uuid.UUID) bool {
	switch role {
	case models.RoleSuperAdmin, models.RoleOwner:
		return true
	case models.RoleManager:
		return authorID == requesterID
	}
	return false
}

// CanViewAllSubmissions reports whether the requester sees submissions
// across the organization: owners and super admins always, holders of an
// explicit access grant, and managers in an elevated-visibility department.
func (c *Checker) CanViewAllSubmissions(requesterID uuid.UUID, role models.UserRole) (bool, error) {
	if role == models.RoleSuperAdmin || role == models.RoleOwner {
		return true, nil
	}

	granted, err := c.dir.HasAccessGrant(requesterID)
	if err != nil {
		return false, err
	}
	if granted {
		return true, nil
	}

	if role != models.RoleManager {
		return false, nil
	}
	dept, err := c.dir.DepartmentNameOf(requesterID)
	if err != nil {
		return false, err
	}
	_, ok := c.elevated[dept]
	return ok, nil
}

// CanAssign allows an elevated requester to assign a submission to a
// candidate only when the candidate is a direct report. Transitive reports
// are visible but not assignable.
func (c *Checker) CanAssign(requesterID uuid.UUID, role models.UserRole, assigneeID uuid.UUID) (bool, error) {
	elevated, err := c.CanViewAllSubmissions(requesterID, role)
	if err != nil || !elevated {
		return false, err
	}
	return c.dir.HasAssignment(requesterID, assigneeID)
}

// CanComplete allows completion by the current assignee, by an elevated
// manager with a direct edge to the assignee, or by owner/super admin.
func (c *Checker) CanComplete(requesterID uuid.UUID, role models.UserRole, submission *models.CheckinSubmission) (bool, error) {
	if role == models.RoleSuperAdmin || role == models.RoleOwner {
		return true, nil
	}

	assignee := submission.UserID
	if submission.AssignedToID != nil {
		assignee = *submission.AssignedToID
	}
	if assignee == requesterID {
		return true, nil
	}

	elevated, err := c.CanViewAllSubmissions(requesterID, role)
	if err != nil || !elevated {
		return false, err
	}
	return c.dir.HasAssignment(requesterID, assignee)
}
