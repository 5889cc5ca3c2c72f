package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractorHandler handles HTTP requests for subcontractors
type ContractorHandler struct {
	contractorService service.ContractorServiceInterface
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractorService service.ContractorServiceInterface) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
	}
}

// CreateContractor creates a new contractor
// @Summary Create a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param contractor body service.CreateContractorRequest true "Contractor data"
// @Success 201 {object} service.ContractorResponse "Successfully created contractor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	requesterID, _, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.CreateContractor(requesterID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contractor)
}

// ListContractors lists the contractors visible to the requester
// @Summary List contractors
// @Description List contractors created by users within the requester's visibility scope
// @Tags contractors
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved contractors"
// @Security BearerAuth
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	requesterID, role, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, offset := pagination(c)

	contractors, total, err := h.contractorService.ListContractors(requesterID, role, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contractors": contractors,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// UpdateContractor updates a contractor
// @Summary Update a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Param contractor body service.UpdateContractorRequest true "Fields to update"
// @Success 200 {object} service.ContractorResponse "Successfully updated contractor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contractor ID"})
		return
	}

	var req service.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.contractorService.UpdateContractor(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor deletes a contractor
// @Summary Delete a contractor
// @Tags contractors
// @Accept json
// @Produce json
// @Param id path string true "Contractor ID (UUID)"
// @Success 204 "Successfully deleted contractor"
// @Failure 400 {object} ErrorResponse "Invalid contractor ID"
// @Failure 404 {object} ErrorResponse "Contractor not found"
// @Security BearerAuth
// @Router /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contractor ID"})
		return
	}

	if err := h.contractorService.DeleteContractor(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
