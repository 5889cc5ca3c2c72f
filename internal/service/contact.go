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

// ContactService handles business logic for the shared contact directory
type ContactService struct {
	repo      repository.ContactRepositoryInterface
	resolver  *scope.Resolver
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, resolver *scope.Resolver, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:      repo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateContactRequest represents the data needed to create a contact
type CreateContactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Company     string `json:"company" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// UpdateContactRequest represents the data needed to update a contact
type UpdateContactRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
}

// ContactResponse represents the response data for a contact
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedByID uuid.UUID `json:"created_by_id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Notes       string    `json:"notes"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateContact adds a contact owned by the creating user
func (s *ContactService) CreateContact(creatorID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact := &models.Contact{
		CreatedByID: creatorID,
		Name:        req.Name,
		Company:     req.Company,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return convertContact(contact), nil
}

// ListContacts returns contacts created by users inside the requester's
// scope. Directory visibility follows the creator, not the entry.
func (s *ContactService) ListContacts(requesterID uuid.UUID, role models.UserRole, limit, offset int) ([]ContactResponse, int64, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	ids, err := s.resolver.ForRequester(requesterID, role, scope.Filter{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve scope: %w", err)
	}

	contacts, total, err := s.repo.GetByCreatorIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *convertContact(&contacts[i])
	}
	return responses, total, nil
}

// UpdateContact updates an existing contact
func (s *ContactService) UpdateContact(id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrContactNotFound
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Company != nil {
		contact.Company = *req.Company
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		contact.PhoneNumber = *req.PhoneNumber
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return convertContact(contact), nil
}

// DeleteContact soft-deletes a contact
func (s *ContactService) DeleteContact(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrContactNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

func convertContact(c *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:          c.ID,
		CreatedByID: c.CreatedByID,
		Name:        c.Name,
		Company:     c.Company,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
