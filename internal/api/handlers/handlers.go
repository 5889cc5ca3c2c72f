package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ops-portal-backend/internal/auth"
	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// requester extracts the authenticated user's id and role from the gin
// context set by the auth middleware.
func requester(c *gin.Context) (uuid.UUID, models.UserRole, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := auth.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}

// pagination parses limit/offset query parameters with defaults
func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// scopeFilter parses the shared listing filter parameters. Tags are given as
// repeated "key:value" parameters; malformed ones are reported, not dropped.
func scopeFilter(c *gin.Context) (scope.Filter, error) {
	var f scope.Filter

	if raw := c.Query("manager_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("invalid manager_id")
		}
		f.ManagerID = &id
	}
	if raw := c.Query("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("invalid department_id")
		}
		f.DepartmentID = &id
	}
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, errors.New("invalid team_id")
		}
		f.TeamID = &id
	}
	for _, raw := range c.QueryArray("tag") {
		tag, ok := scope.ParseTag(raw)
		if !ok {
			return f, errors.New("invalid tag filter, expected key:value")
		}
		f.Tags = append(f.Tags, tag)
	}

	return f, nil
}

// respondServiceError translates service errors into HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCyclicManagerAssignment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSelfManagerAssignment),
		errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrCheckinAlreadyCompleted),
		errors.Is(err, apperrors.ErrInvalidPaginationParams),
		errors.Is(err, apperrors.ErrEstimateHasNoItems),
		apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
