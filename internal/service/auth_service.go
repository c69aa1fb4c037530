package service

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/repforge/repforge/internal/domain"
)

// FirebaseAuthClient defines the interface for Firebase Auth operations
// This allows mocking for tests
type FirebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthService handles authentication and user registration
type AuthService struct {
	userRepo   domain.UserRepository
	authClient FirebaseAuthClient
	jwtSecret  string
	tokenTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	authClient FirebaseAuthClient,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		authClient: authClient,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

// LoginOrRegisterRequest contains the request params
type LoginOrRegisterRequest struct {
	FirebaseToken string
}

// LoginOrRegisterResponse contains the user and whether they were newly created
type LoginOrRegisterResponse struct {
	User      *domain.User
	Token     string
	IsNewUser bool
}

// LoginOrRegister verifies the Firebase token and either logs in an existing
// user or registers a new one on the fly.
func (s *AuthService) LoginOrRegister(ctx context.Context, req LoginOrRegisterRequest) (*LoginOrRegisterResponse, error) {
	token, err := s.authClient.VerifyIDToken(ctx, req.FirebaseToken)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	firebaseUID := token.UID
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	if name == "" {
		name = email
	}

	existingUser, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)

	// Pre-provisioned accounts exist by email only; link the Firebase UID on
	// first login
	if err == domain.ErrNotFound && email != "" {
		emailUser, emailErr := s.userRepo.GetByEmail(ctx, email)
		if emailErr == nil && emailUser != nil {
			if emailUser.FirebaseUID != "" {
				return nil, fmt.Errorf("email already linked to different account")
			}
			emailUser.FirebaseUID = firebaseUID
			existingUser = emailUser
			err = nil
		}
	}

	if err == nil && existingUser != nil {
		signed, err := s.GenerateRepForgeToken(existingUser)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		return &LoginOrRegisterResponse{
			User:      existingUser,
			Token:     signed,
			IsNewUser: false,
		}, nil
	}

	if err == domain.ErrNotFound {
		newUser := &domain.User{
			FirebaseUID: firebaseUID,
			Email:       email,
			Name:        name,
		}
		if err := s.userRepo.Create(ctx, newUser); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		signed, err := s.GenerateRepForgeToken(newUser)
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		return &LoginOrRegisterResponse{
			User:      newUser,
			Token:     signed,
			IsNewUser: true,
		}, nil
	}

	return nil, fmt.Errorf("failed to fetch user: %w", err)
}

// GenerateRepForgeToken creates a JWT token with custom claims
func (s *AuthService) GenerateRepForgeToken(user *domain.User) (string, error) {
	ttl := s.tokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.RepForgeClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
