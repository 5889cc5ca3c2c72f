package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcementService service.AnnouncementServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// CreateAnnouncement creates a new announcement
// @Summary Create an announcement
// @Description Post a company announcement. Only managers, owners and super admins may post.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} service.AnnouncementResponse "Successfully created announcement"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Employees may not post announcements"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(requesterID, role, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// GetAnnouncements lists announcements
// @Summary List announcements
// @Description List active announcements, pinned first, newest first within each group
// @Tags announcements
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved announcements"
// @Security BearerAuth
// @Router /announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	limit, offset := pagination(c)

	announcements, total, err := h.announcementService.GetAnnouncements(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"announcements": announcements,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

// UpdateAnnouncement updates an announcement
// @Summary Update an announcement
// @Description Update an announcement. Managers may edit their own posts; owners and super admins may edit any.
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param announcement body service.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} service.AnnouncementResponse "Successfully updated announcement"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not allowed to edit this announcement"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	var req service.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(id, requesterID, role, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement deletes an announcement
// @Summary Delete an announcement
// @Description Delete an announcement. Managers may delete their own posts; owners and super admins may delete any.
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 204 "Successfully deleted announcement"
// @Failure 400 {object} ErrorResponse "Invalid announcement ID"
// @Failure 403 {object} ErrorResponse "Not allowed to delete this announcement"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	if err := h.announcementService.DeleteAnnouncement(id, requesterID, role); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
