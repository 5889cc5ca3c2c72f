package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EstimateHandler handles HTTP requests for job estimates
type EstimateHandler struct {
	estimateService service.EstimateServiceInterface
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(estimateService service.EstimateServiceInterface) *EstimateHandler {
	return &EstimateHandler{
		estimateService: estimateService,
	}
}

// CreateEstimate creates a new estimate
// @Summary Create an estimate
// @Description Create a job estimate with its line items
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimate body service.CreateEstimateRequest true "Estimate data"
// @Success 201 {object} service.EstimateResponse "Successfully created estimate"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	requesterID, _, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.estimateService.CreateEstimate(requesterID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, estimate)
}

// GetEstimate retrieves an estimate with its line items
// @Summary Get estimate by ID
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID (UUID)"
// @Success 200 {object} service.EstimateResponse "Successfully retrieved estimate"
// @Failure 400 {object} ErrorResponse "Invalid estimate ID"
// @Failure 404 {object} ErrorResponse "Estimate not found"
// @Security BearerAuth
// @Router /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return
	}

	estimate, err := h.estimateService.GetEstimate(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// ListEstimates lists the estimates visible to the requester
// @Summary List estimates
// @Description List estimates created by users within the requester's visibility scope
// @Tags estimates
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved estimates"
// @Security BearerAuth
// @Router /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, offset := pagination(c)

	estimates, total, err := h.estimateService.ListEstimates(requesterID, role, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimates": estimates,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// CompareEstimates compares the line items of two estimates
// @Summary Compare two estimates
// @Description Match line items between two estimates by fuzzy description similarity and report per-line and total deltas
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Left estimate ID (UUID)"
// @Param otherId path string true "Right estimate ID (UUID)"
// @Success 200 {object} service.EstimateComparisonResponse "Successfully compared estimates"
// @Failure 400 {object} ErrorResponse "An estimate has no line items"
// @Failure 404 {object} ErrorResponse "Estimate not found"
// @Security BearerAuth
// @Router /estimates/{id}/compare/{otherId} [get]
func (h *EstimateHandler) CompareEstimates(c *gin.Context) {
	leftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return
	}
	rightID, err := uuid.Parse(c.Param("otherId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return
	}

	comparison, err := h.estimateService.CompareEstimates(leftID, rightID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// DeleteEstimate deletes an estimate and its line items
// @Summary Delete an estimate
// @Tags estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID (UUID)"
// @Success 204 "Successfully deleted estimate"
// @Failure 400 {object} ErrorResponse "Invalid estimate ID"
// @Failure 404 {object} ErrorResponse "Estimate not found"
// @Security BearerAuth
// @Router /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estimate ID"})
		return
	}

	if err := h.estimateService.DeleteEstimate(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
