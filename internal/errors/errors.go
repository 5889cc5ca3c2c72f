package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound               = &NotFoundError{Entity: "user"}
	ErrDepartmentNotFound         = &NotFoundError{Entity: "department"}
	ErrTeamNotFound               = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound         = &NotFoundError{Entity: "team member"}
	ErrManagerAssignmentNotFound  = &NotFoundError{Entity: "manager assignment"}
	ErrAnnouncementNotFound       = &NotFoundError{Entity: "announcement"}
	ErrCheckinNotFound            = &NotFoundError{Entity: "check-in submission"}
	ErrContactNotFound            = &NotFoundError{Entity: "contact"}
	ErrContractorNotFound         = &NotFoundError{Entity: "contractor"}
	ErrTrainingNotFound           = &NotFoundError{Entity: "training"}
	ErrTrainingAssignmentNotFound = &NotFoundError{Entity: "training assignment"}
	ErrEstimateNotFound           = &NotFoundError{Entity: "estimate"}
	ErrAccessGrantNotFound        = &NotFoundError{Entity: "submission access grant"}
)

// Already Exists Errors
var (
	ErrUserExists               = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrDepartmentExists         = &AlreadyExistsError{Entity: "department", Context: "with this name"}
	ErrTeamExists               = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrTeamMemberExists         = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
	ErrManagerAssignmentExists  = &AlreadyExistsError{Entity: "manager assignment", Context: "for this pair"}
	ErrAccessGrantExists        = &AlreadyExistsError{Entity: "submission access grant", Context: "for this user"}
	ErrTrainingAssignmentExists = &AlreadyExistsError{Entity: "training assignment", Context: "for this user"}
)

// Business Logic Errors
var (
	ErrSelfManagerAssignment   = errors.New("a user cannot be their own manager")
	ErrCyclicManagerAssignment = errors.New("assignment would create a cycle in the manager hierarchy")
	ErrInvalidRole             = errors.New("invalid role")
	ErrCheckinAlreadyCompleted = errors.New("check-in submission is already completed")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrEstimateHasNoItems      = errors.New("estimate has no line items to compare")
)

// Authentication / Authorization Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountNotApproved  = &AuthenticationError{Message: "account is awaiting approval"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrForbidden           = &AuthorizationError{Message: "operation not permitted for this user"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
