package service

import (
	"fmt"
	"strings"
	"time"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/repository"
	"ops-portal-backend/internal/scope"

	"github.com/agext/levenshtein"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// matchThreshold is the minimum levenshtein similarity for two line item
// descriptions to be considered the same work item.
const matchThreshold = 0.82

// EstimateService handles business logic for estimates and the
// carrier-vs-contractor comparison tool
type EstimateService struct {
	repo      repository.EstimateRepositoryInterface
	resolver  *scope.Resolver
	validator *validator.Validate
}

// NewEstimateService creates a new estimate service
func NewEstimateService(repo repository.EstimateRepositoryInterface, resolver *scope.Resolver, validator *validator.Validate) *EstimateService {
	return &EstimateService{
		repo:      repo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateEstimateRequest represents the data needed to create an estimate
type CreateEstimateRequest struct {
	JobName string                      `json:"job_name" validate:"required,max=200"`
	Source  string                      `json:"source" validate:"required,max=100"`
	Items   []CreateEstimateItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateEstimateItemRequest is one line item of a new estimate
type CreateEstimateItemRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"max=20"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// EstimateItemResponse represents one line item in a response
type EstimateItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

// EstimateResponse represents the response data for an estimate
type EstimateResponse struct {
	ID          uuid.UUID              `json:"id"`
	CreatedByID uuid.UUID              `json:"created_by_id"`
	JobName     string                 `json:"job_name"`
	Source      string                 `json:"source"`
	Items       []EstimateItemResponse `json:"items,omitempty"`
	GrandTotal  float64                `json:"grand_total"`
	CreatedAt   string                 `json:"created_at"`
}

// ComparisonLine pairs a line item from each estimate, matched by
// description. Either side may be absent when the other has no counterpart.
type ComparisonLine struct {
	Description string                `json:"description"`
	Left        *EstimateItemResponse `json:"left,omitempty"`
	Right       *EstimateItemResponse `json:"right,omitempty"`
	Delta       float64               `json:"delta"`
	Similarity  float64               `json:"similarity"`
}

// EstimateComparisonResponse is a full line-by-line comparison of two
// estimates for the same job.
type EstimateComparisonResponse struct {
	LeftID     uuid.UUID        `json:"left_id"`
	RightID    uuid.UUID        `json:"right_id"`
	LeftTotal  float64          `json:"left_total"`
	RightTotal float64          `json:"right_total"`
	Delta      float64          `json:"delta"`
	Lines      []ComparisonLine `json:"lines"`
}

// CreateEstimate stores an estimate together with its line items
func (s *EstimateService) CreateEstimate(creatorID uuid.UUID, req *CreateEstimateRequest) (*EstimateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	estimate := &models.Estimate{
		CreatedByID: creatorID,
		JobName:     req.JobName,
		Source:      req.Source,
	}
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		estimate.Items = append(estimate.Items, models.EstimateItem{
			Description: item.Description,
			Quantity:    quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := s.repo.Create(estimate); err != nil {
		return nil, fmt.Errorf("failed to create estimate: %w", err)
	}

	return convertEstimate(estimate), nil
}

// GetEstimate retrieves an estimate with its line items
func (s *EstimateService) GetEstimate(id uuid.UUID) (*EstimateResponse, error) {
	estimate, err := s.repo.GetWithItems(id)
	if err != nil {
		return nil, apperrors.ErrEstimateNotFound
	}

	return convertEstimate(estimate), nil
}

// ListEstimates returns estimates created by users inside the requester's scope
func (s *EstimateService) ListEstimates(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]EstimateResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	ids, err := s.resolver.ForRequester(requesterID, role, scope.Filter{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	estimates, total, err := s.repo.GetByCreatorIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list estimates: %w", err)
	}

	responses := make([]EstimateResponse, len(estimates))
	for i := range estimates {
		responses[i] = *convertEstimate(&estimates[i])
	}
	return responses, total, nil
}

// CompareEstimates lines up two estimates item by item. Items pair on exact
// normalized description first, then on the closest remaining fuzzy match
// above the similarity threshold; leftovers appear one-sided.
func (s *EstimateService) CompareEstimates(leftID, rightID uuid.UUID) (*EstimateComparisonResponse, error) {
	left, err := s.repo.GetWithItems(leftID)
	if err != nil {
		return nil, apperrors.ErrEstimateNotFound
	}
	right, err := s.repo.GetWithItems(rightID)
	if err != nil {
		return nil, apperrors.ErrEstimateNotFound
	}
	if len(left.Items) == 0 || len(right.Items) == 0 {
		return nil, apperrors.ErrEstimateHasNoItems
	}

	resp := &EstimateComparisonResponse{
		LeftID:  left.ID,
		RightID: right.ID,
	}
	for i := range left.Items {
		resp.LeftTotal += left.Items[i].Total()
	}
	for i := range right.Items {
		resp.RightTotal += right.Items[i].Total()
	}
	resp.Delta = resp.RightTotal - resp.LeftTotal

	rightUsed := make([]bool, len(right.Items))

	for i := range left.Items {
		li := &left.Items[i]
		bestIdx := -1
		bestScore := 0.0
		for j := range right.Items {
			if rightUsed[j] {
				continue
			}
			score := similarity(li.Description, right.Items[j].Description)
			if score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}

		line := ComparisonLine{Description: li.Description, Left: convertItem(li)}
		if bestIdx >= 0 && bestScore >= matchThreshold {
			rightUsed[bestIdx] = true
			ri := &right.Items[bestIdx]
			line.Right = convertItem(ri)
			line.Delta = ri.Total() - li.Total()
			line.Similarity = bestScore
		} else {
			line.Delta = -li.Total()
		}
		resp.Lines = append(resp.Lines, line)
	}

	for j := range right.Items {
		if rightUsed[j] {
			continue
		}
		ri := &right.Items[j]
		resp.Lines = append(resp.Lines, ComparisonLine{
			Description: ri.Description,
			Right:       convertItem(ri),
			Delta:       ri.Total(),
		})
	}

	return resp, nil
}

// DeleteEstimate removes an estimate and its line items
func (s *EstimateService) DeleteEstimate(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrEstimateNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete estimate: %w", err)
	}
	return nil
}

// similarity scores two descriptions in [0,1] ignoring case and surrounding
// whitespace. Exact normalized matches score 1.
func similarity(a, b string) float64 {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == nb {
		return 1
	}
	return levenshtein.Similarity(na, nb, nil)
}

func convertItem(item *models.EstimateItem) *EstimateItemResponse {
	return &EstimateItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total(),
	}
}

func convertEstimate(e *models.Estimate) *EstimateResponse {
	resp := &EstimateResponse{
		ID:          e.ID,
		CreatedByID: e.CreatedByID,
		JobName:     e.JobName,
		Source:      e.Source,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	for i := range e.Items {
		item := convertItem(&e.Items[i])
		resp.Items = append(resp.Items, *item)
		resp.GrandTotal += item.Total
	}
	return resp
}
