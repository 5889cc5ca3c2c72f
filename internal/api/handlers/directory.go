package handlers

import (
	"net/http"
	"strings"

	"ops-portal-backend/internal/logger"
	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for the corporate directory
type DirectoryHandler struct {
	directoryService service.DirectorySearchServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectorySearchServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// Search searches the corporate directory by display name
// @Summary Search the corporate directory
// @Description Search the LDAP corporate directory by display name prefix
// @Tags directory
// @Accept json
// @Produce json
// @Param name query string true "Display name prefix to search for"
// @Success 200 {object} map[string]interface{} "Successfully retrieved matches"
// @Failure 400 {object} ErrorResponse "Missing name parameter"
// @Failure 502 {object} ErrorResponse "Directory lookup failed"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter is required"})
		return
	}

	entries, err := h.directoryService.SearchByName(name)
	if err != nil {
		logger.FromGin(c).WithField("name", name).WithError(err).Error("directory search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Directory lookup failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": entries})
}
