package handlers

import (
	"net/http"

	"ops-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrainingHandler handles HTTP requests for trainings and assignments
type TrainingHandler struct {
	trainingService service.TrainingServiceInterface
}

// NewTrainingHandler creates a new training handler
func NewTrainingHandler(trainingService service.TrainingServiceInterface) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// CreateTraining creates a new training
// @Summary Create a training
// @Tags trainings
// @Accept json
// @Produce json
// @Param training body service.CreateTrainingRequest true "Training data"
// @Success 201 {object} service.TrainingResponse "Successfully created training"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /trainings [post]
func (h *TrainingHandler) CreateTraining(c *gin.Context) {
	var req service.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	training, err := h.trainingService.CreateTraining(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, training)
}

// GetTrainings lists trainings
// @Summary List trainings
// @Tags trainings
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved trainings"
// @Security BearerAuth
// @Router /trainings [get]
func (h *TrainingHandler) GetTrainings(c *gin.Context) {
	limit, offset := pagination(c)

	trainings, total, err := h.trainingService.GetTrainings(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainings": trainings,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// AssignTraining assigns a training to a user
// @Summary Assign a training
// @Tags trainings
// @Accept json
// @Produce json
// @Param assignment body service.AssignTrainingRequest true "Assignment data"
// @Success 201 {object} service.TrainingAssignmentResponse "Successfully assigned training"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Training or user not found"
// @Security BearerAuth
// @Router /trainings/assignments [post]
func (h *TrainingHandler) AssignTraining(c *gin.Context) {
	requesterID, _, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AssignTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.trainingService.AssignTraining(requesterID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListAssignments lists the training assignments visible to the requester
// @Summary List training assignments
// @Description List training assignments of users within the requester's visibility scope
// @Tags trainings
// @Accept json
// @Produce json
// @Param manager_id query string false "Filter to direct reports of this manager (UUID)"
// @Param department_id query string false "Filter to members of this department (UUID)"
// @Param team_id query string false "Filter to members of this team (UUID)"
// @Param tag query []string false "Filter by tag, given as key:value. Repeatable; all must match."
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Security BearerAuth
// @Router /trainings/assignments [get]
func (h *TrainingHandler) ListAssignments(c *gin.Context) {
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

	assignments, total, err := h.trainingService.ListAssignments(requesterID, role, filter, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// UpdateAssignmentStatus updates the status of a training assignment
// @Summary Update assignment status
// @Description Move a training assignment between assigned, in_progress and completed
// @Tags trainings
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param status body service.UpdateTrainingStatusRequest true "New status"
// @Success 200 {object} service.TrainingAssignmentResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /trainings/assignments/{id} [patch]
func (h *TrainingHandler) UpdateAssignmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req service.UpdateTrainingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.trainingService.UpdateAssignmentStatus(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteTraining deletes a training
// @Summary Delete a training
// @Tags trainings
// @Accept json
// @Produce json
// @Param id path string true "Training ID (UUID)"
// @Success 204 "Successfully deleted training"
// @Failure 400 {object} ErrorResponse "Invalid training ID"
// @Failure 404 {object} ErrorResponse "Training not found"
// @Security BearerAuth
// @Router /trainings/{id} [delete]
func (h *TrainingHandler) DeleteTraining(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid training ID"})
		return
	}

	if err := h.trainingService.DeleteTraining(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
