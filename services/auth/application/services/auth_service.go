package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/linentrack/pkg/auth"
	authdomain "github.com/ghuser/linentrack/services/auth/domain"
	"github.com/ghuser/linentrack/services/auth/domain/repositories"
)

// TokenPair is an access token plus the refresh token that can rotate it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService maps credentials to token pairs. Each employee holds at most
// one active refresh token; every login or refresh replaces it, so the
// prior token stops working immediately.
type AuthService struct {
	repo   repositories.EmployeeRepository
	tokens *auth.TokenIssuer
}

// NewAuthService returns an AuthService wired with the given repository and
// token issuer.
func NewAuthService(repo repositories.EmployeeRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login verifies email and password and issues a fresh token pair. Unknown
// email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	employee, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmployeeNotFound) {
			return nil, authdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	return s.issuePair(ctx, employee.ID, employee.Email)
}

// Refresh rotates both tokens for the employee holding the given refresh
// token. The presented token is invalidated even as its replacement is
// issued; an unknown token returns ErrInvalidCredentials.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	employee, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmployeeNotFound) {
			return nil, authdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	return s.issuePair(ctx, employee.ID, employee.Email)
}

// Logout revokes the given refresh token. Returns false when no employee
// holds it.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) (bool, error) {
	employee, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmployeeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load employee: %w", err)
	}

	if err := s.repo.SetRefreshToken(ctx, employee.ID, nil); err != nil {
		return false, fmt.Errorf("clear refresh token: %w", err)
	}
	return true, nil
}

func (s *AuthService) issuePair(ctx context.Context, employeeID int64, email string) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(employeeID, email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.repo.SetRefreshToken(ctx, employeeID, &refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
