package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckinHandler handles HTTP requests for daily check-in submissions
type CheckinHandler struct {
	checkinService service.CheckinServiceInterface
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinService service.CheckinServiceInterface) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

// CreateCheckin submits a daily check-in
// @Summary Submit a check-in
// @Description Submit a daily check-in for the authenticated user
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body service.CreateCheckinRequest true "Check-in data"
// @Success 201 {object} service.CheckinResponse "Successfully submitted check-in"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /checkins [post]
func (h *CheckinHandler) CreateCheckin(c *gin.Context) {
	requesterID, _, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkin, err := h.checkinService.CreateCheckin(requesterID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checkin)
}

// ListCheckins lists the check-ins visible to the requester
// @Summary List check-ins
// @Description List check-ins within the requester's visibility scope. Managers of elevated departments and grant holders see all submissions; other managers see their subtree; employees see only their own.
// @Tags checkins
// @Accept json
// @Produce json
// @Param manager_id query string false "Filter to direct reports of this manager (UUID)"
// @Param department_id query string false "Filter to members of this department (UUID)"
// @Param team_id query string false "Filter to members of this team (UUID)"
// @Param tag query []string false "Filter by tag, given as key:value. Repeatable; all must match."
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved check-ins"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Security BearerAuth
// @Router /checkins [get]
func (h *CheckinHandler) ListCheckins(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	filter, err := scopeFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, offset := pagination(c)

	checkins, total, err := h.checkinService.ListCheckins(requesterID, role, filter, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkins": checkins,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

// AssignCheckin assigns a check-in for follow-up
// @Summary Assign a check-in
// @Description Assign an open check-in to a user for follow-up. The requester must directly manage the submitter, or be an owner, super admin or elevated-department manager.
// @Tags checkins
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID (UUID)"
// @Param assignment body service.AssignCheckinRequest true "Assignee"
// @Success 200 {object} service.CheckinResponse "Successfully assigned check-in"
// @Failure 400 {object} ErrorResponse "Invalid request or check-in already completed"
// @Failure 403 {object} ErrorResponse "Not allowed to assign this check-in"
// @Failure 404 {object} ErrorResponse "Check-in not found"
// @Security BearerAuth
// @Router /checkins/{id}/assign [post]
func (h *CheckinHandler) AssignCheckin(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in ID"})
		return
	}

	var req service.AssignCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkin, err := h.checkinService.AssignCheckin(id, requesterID, role, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// CompleteCheckin marks a check-in as completed
// @Summary Complete a check-in
// @Description Mark an assigned check-in as completed. Only the assignee, an owner or a super admin may complete it.
// @Tags checkins
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID (UUID)"
// @Success 200 {object} service.CheckinResponse "Successfully completed check-in"
// @Failure 400 {object} ErrorResponse "Check-in already completed"
// @Failure 403 {object} ErrorResponse "Not allowed to complete this check-in"
// @Failure 404 {object} ErrorResponse "Check-in not found"
// @Security BearerAuth
// @Router /checkins/{id}/complete [post]
func (h *CheckinHandler) CompleteCheckin(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check-in ID"})
		return
	}

	checkin, err := h.checkinService.CompleteCheckin(id, requesterID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkin)
}

// GrantSubmissionAccess grants a user cross-hierarchy submission visibility
// @Summary Grant submission access
// @Description Give a user visibility over all check-in submissions regardless of their place in the hierarchy
// @Tags checkins
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Successfully granted access"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Grant already exists"
// @Security BearerAuth
// @Router /checkins/access/{userId} [post]
func (h *CheckinHandler) GrantSubmissionAccess(c *gin.Context) {
	requesterID, _, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.checkinService.GrantSubmissionAccess(userID, requesterID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeSubmissionAccess revokes a submission access grant
// @Summary Revoke submission access
// @Tags checkins
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Successfully revoked access"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "Grant not found"
// @Security BearerAuth
// @Router /checkins/access/{userId} [delete]
func (h *CheckinHandler) RevokeSubmissionAccess(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.checkinService.RevokeSubmissionAccess(userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
