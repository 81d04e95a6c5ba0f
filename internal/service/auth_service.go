package service

import (
	"context"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/repository"
	apperrors "tour-platform/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies admin bearer tokens.
type AuthService struct {
	repo   repository.AdminRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret), ttl: ttl}
}

// Login checks credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":  admin.Email,
		"role": admin.Role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify parses a bearer token and returns the admin email it was issued to.
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	return sub, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when the collection
// is empty, so a fresh deployment is reachable.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, &model.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}
