package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for the manager hierarchy,
// departments and teams
type OrganizationHandler struct {
	orgService service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(orgService service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// CreateAssignment creates a manager-employee assignment
// @Summary Create a manager assignment
// @Description Create a direct manager-employee edge. Rejects self-assignments, duplicate pairs and edges that would make the hierarchy cyclic.
// @Tags hierarchy
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request body or self-assignment"
// @Failure 409 {object} ErrorResponse "Duplicate pair or cycle"
// @Security BearerAuth
// @Router /hierarchy/assignments [post]
func (h *OrganizationHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.orgService.CreateAssignment(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment removes a manager-employee assignment
// @Summary Delete a manager assignment
// @Description Remove the direct manager-employee edge between the given pair
// @Tags hierarchy
// @Accept json
// @Produce json
// @Param manager_id query string true "Manager ID (UUID)"
// @Param employee_id query string true "Employee ID (UUID)"
// @Success 204 "Successfully deleted assignment"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /hierarchy/assignments [delete]
func (h *OrganizationHandler) DeleteAssignment(c *gin.Context) {
	managerID, err := uuid.Parse(c.Query("manager_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager_id"})
		return
	}
	employeeID, err := uuid.Parse(c.Query("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee_id"})
		return
	}

	if err := h.orgService.DeleteAssignment(managerID, employeeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAssignments lists the direct reports of a manager
// @Summary List assignments by manager
// @Description Get the direct manager-employee edges outgoing from a manager
// @Tags hierarchy
// @Accept json
// @Produce json
// @Param manager_id query string true "Manager ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid manager_id"
// @Security BearerAuth
// @Router /hierarchy/assignments [get]
func (h *OrganizationHandler) ListAssignments(c *gin.Context) {
	managerID, err := uuid.Parse(c.Query("manager_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager_id"})
		return
	}

	assignments, err := h.orgService.ListAssignmentsByManager(managerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

// GetHierarchyTree returns the full reporting forest
// @Summary Get the hierarchy tree
// @Description Get the full reporting structure as a forest. Roots are users nobody manages, ordered by role rank then name. Users reachable through more than one manager appear under each of them.
// @Tags hierarchy
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved tree"
// @Security BearerAuth
// @Router /hierarchy/tree [get]
func (h *OrganizationHandler) GetHierarchyTree(c *gin.Context) {
	tree, err := h.orgService.GetHierarchyTree()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tree": tree})
}

// CreateDepartment creates a new department
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse "Successfully created department"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Department name already taken"
// @Security BearerAuth
// @Router /departments [post]
func (h *OrganizationHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.orgService.CreateDepartment(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartments lists departments
// @Summary List departments
// @Tags departments
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved departments"
// @Security BearerAuth
// @Router /departments [get]
func (h *OrganizationHandler) GetDepartments(c *gin.Context) {
	limit, offset := pagination(c)

	departments, total, err := h.orgService.GetDepartments(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"departments": departments,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// UpdateDepartment updates a department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} service.DepartmentResponse "Successfully updated department"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *OrganizationHandler) UpdateDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.orgService.UpdateDepartment(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Successfully deleted department"
// @Failure 400 {object} ErrorResponse "Invalid department ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *OrganizationHandler) DeleteDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department ID"})
		return
	}

	if err := h.orgService.DeleteDepartment(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTeam creates a new team
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Security BearerAuth
// @Router /teams [post]
func (h *OrganizationHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.orgService.CreateTeam(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeams lists teams
// @Summary List teams
// @Tags teams
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *OrganizationHandler) GetTeams(c *gin.Context) {
	limit, offset := pagination(c)

	teams, total, err := h.orgService.GetTeams(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams":  teams,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetTeam retrieves a team with its members
// @Summary Get team by ID
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *OrganizationHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	team, err := h.orgService.GetTeamWithMembers(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddTeamMember adds a user to a team
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Successfully added member"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "User already in team"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [post]
func (h *OrganizationHandler) AddTeamMember(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.orgService.AddTeamMember(teamID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveTeamMember removes a user from a team
// @Summary Remove a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team, user or membership not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *OrganizationHandler) RemoveTeamMember(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.orgService.RemoveTeamMember(teamID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTeam deletes a team
// @Summary Delete a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *OrganizationHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	if err := h.orgService.DeleteTeam(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
