package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"ops-portal-backend/internal/database/models"
	apperrors "ops-portal-backend/internal/errors"
	"ops-portal-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour

	tokenIssuer = "ops-portal-backend"
)

// refreshTokenData stores the server side of an issued refresh token
type refreshTokenData struct {
	UserID    uuid.UUID
	Email     string
	Role      models.UserRole
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthService issues and validates portal credentials. Access tokens are
// stateless JWTs; refresh tokens are opaque strings held in memory, so a
// restart signs everyone out of long-lived sessions.
type AuthService struct {
	jwtSecret     []byte
	users         service.UserServiceInterface
	refreshTokens map[string]*refreshTokenData
	tokenMutex    sync.RWMutex
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID       `json:"user_id"`
	Email  string          `json:"email" example:"jane.doe@example.com"`
	Role   models.UserRole `json:"role" example:"manager"`
	jwt.RegisteredClaims
}

// LoginRequest represents the credentials for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthTokenResponse represents the response for login and refresh endpoints
type AuthTokenResponse struct {
	AccessToken      string               `json:"accessToken"`
	TokenType        string               `json:"tokenType" example:"Bearer"`
	ExpiresInSeconds int64                `json:"expiresInSeconds" example:"3600"`
	RefreshToken     string               `json:"refreshToken"`
	User             service.UserResponse `json:"user"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, users service.UserServiceInterface) (*AuthService, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user service is required")
	}

	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		users:         users,
		refreshTokens: make(map[string]*refreshTokenData),
	}, nil
}

// Login verifies email/password credentials and issues a token pair.
// Unapproved owner and manager accounts are rejected even with a correct
// password.
func (s *AuthService) Login(email, password string) (*AuthTokenResponse, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Burn a hash comparison so missing accounts take as long
			// as wrong passwords.
			bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0xGmeGDCkkXMvDqJQsxRmPqVl3q"), []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, apperrors.ErrAccountNotApproved
	}

	return s.issueTokenPair(user)
}

// RefreshToken rotates a refresh token and issues a new token pair. The old
// refresh token is invalidated whether or not the rotation succeeds.
func (s *AuthService) RefreshToken(refreshToken string) (*AuthTokenResponse, error) {
	s.tokenMutex.Lock()
	tokenData, exists := s.refreshTokens[refreshToken]
	if exists {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Re-read the account so demotions and de-approvals take effect on the
	// next rotation rather than living for another 30 days.
	user, err := s.users.GetUserByEmail(tokenData.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsApproved {
		return nil, apperrors.ErrAccountNotApproved
	}

	return s.issueTokenPair(user)
}

// issueTokenPair generates a JWT access token plus a stored refresh token
func (s *AuthService) issueTokenPair(user *models.User) (*AuthTokenResponse, error) {
	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &refreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &AuthTokenResponse{
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		ExpiresInSeconds: int64(accessTokenTTL.Seconds()),
		RefreshToken:     refreshToken,
		User: service.UserResponse{
			ID:           user.ID,
			FullName:     user.FullName,
			Email:        user.Email,
			PhoneNumber:  user.PhoneNumber,
			Role:         user.Role,
			IsApproved:   user.IsApproved,
			DepartmentID: user.DepartmentID,
			CreatedAt:    user.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    user.UpdatedAt.Format(time.RFC3339),
		},
	}, nil
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Logout invalidates the given refresh token. The access token stays valid
// until it expires; clients are expected to discard it.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
