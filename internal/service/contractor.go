package service

import (
	"fmt"
	"time"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/repository"
	"ops-portal-backend/internal/scope"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContractorService handles business logic for the subcontractor directory
type ContractorService struct {
	repo      repository.ContractorRepositoryInterface
	resolver  *scope.Resolver
	validator *validator.Validate
}

// NewContractorService creates a new contractor service
func NewContractorService(repo repository.ContractorRepositoryInterface, resolver *scope.Resolver, validator *validator.Validate) *ContractorService {
	return &ContractorService{
		repo:      repo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateContractorRequest represents the data needed to create a contractor
type CreateContractorRequest struct {
	CompanyName   string `json:"company_name" validate:"required,max=200"`
	ContactName   string `json:"contact_name" validate:"max=200"`
	Trade         string `json:"trade" validate:"max=100"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber   string `json:"phone_number" validate:"max=20"`
	LicenseNumber string `json:"license_number" validate:"max=50"`
	IsInsured     bool   `json:"is_insured"`
	Notes         string `json:"notes" validate:"max=2000"`
}

// UpdateContractorRequest represents the data needed to update a contractor
type UpdateContractorRequest struct {
	CompanyName   *string `json:"company_name" validate:"omitempty,max=200"`
	ContactName   *string `json:"contact_name" validate:"omitempty,max=200"`
	Trade         *string `json:"trade" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber   *string `json:"phone_number" validate:"omitempty,max=20"`
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=50"`
	IsInsured     *bool   `json:"is_insured"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}

// ContractorResponse represents the response data for a contractor
type ContractorResponse struct {
	ID            uuid.UUID `json:"id"`
	CreatedByID   uuid.UUID `json:"created_by_id"`
	CompanyName   string    `json:"company_name"`
	ContactName   string    `json:"contact_name"`
	Trade         string    `json:"trade"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phone_number"`
	LicenseNumber string    `json:"license_number"`
	IsInsured     bool      `json:"is_insured"`
	Notes         string    `json:"notes"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// CreateContractor adds a contractor owned by the creating user
func (s *ContractorService) CreateContractor(creatorID uuid.UUID, req *CreateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contractor := &models.Contractor{
		CreatedByID:   creatorID,
		CompanyName:   req.CompanyName,
		ContactName:   req.ContactName,
		Trade:         req.Trade,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		LicenseNumber: req.LicenseNumber,
		IsInsured:     req.IsInsured,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(contractor); err != nil {
		return nil, fmt.Errorf("failed to create contractor: %w", err)
	}

	return convertContractor(contractor), nil
}

// ListContractors returns contractors created by users inside the
// requester's scope
func (s *ContractorService) ListContractors(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]ContractorResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	ids, err := s.resolver.ForRequester(requesterID, role, scope.Filter{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	contractors, total, err := s.repo.GetByCreatorIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contractors: %w", err)
	}

	responses := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		responses[i] = *convertContractor(&contractors[i])
	}
	return responses, total, nil
}

// UpdateContractor updates an existing contractor
func (s *ContractorService) UpdateContractor(id uuid.UUID, req *UpdateContractorRequest) (*ContractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contractor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrContractorNotFound
	}

	if req.CompanyName != nil {
		contractor.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		contractor.ContactName = *req.ContactName
	}
	if req.Trade != nil {
		contractor.Trade = *req.Trade
	}
	if req.Email != nil {
		contractor.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		contractor.PhoneNumber = *req.PhoneNumber
	}
	if req.LicenseNumber != nil {
		contractor.LicenseNumber = *req.LicenseNumber
	}
	if req.IsInsured != nil {
		contractor.IsInsured = *req.IsInsured
	}
	if req.Notes != nil {
		contractor.Notes = *req.Notes
	}

	if err := s.repo.Update(contractor); err != nil {
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}

	return convertContractor(contractor), nil
}

// DeleteContractor soft-deletes a contractor
func (s *ContractorService) DeleteContractor(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrContractorNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contractor: %w", err)
	}
	return nil
}

func convertContractor(c *models.Contractor) *ContractorResponse {
	return &ContractorResponse{
		ID:            c.ID,
		CreatedByID:   c.CreatedByID,
		CompanyName:   c.CompanyName,
		ContactName:   c.ContactName,
		Trade:         c.Trade,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		LicenseNumber: c.LicenseNumber,
		IsInsured:     c.IsInsured,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}
