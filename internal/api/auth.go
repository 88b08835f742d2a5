package api

import (
	"context"
	"net/http"

	"jobconnect-client/internal/domain"
)

// AuthService wraps the /auth and /account endpoints. It performs no
// persistence itself; the session store owns what happens to the returned
// token and user.
type AuthService struct {
	c *Client
}

// AuthResponse is what login and register return.
type AuthResponse struct {
	Token string              `json:"token"`
	User  *domain.UserSummary `json:"user"`
}

// ValidateResponse is what GET /account/validate returns for a live token.
type ValidateResponse struct {
	Valid bool                `json:"valid"`
	User  *domain.UserSummary `json:"user,omitempty"`
}

func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*AuthResponse, error) {
	body := map[string]any{"email": email, "password": password, "role": role}
	var out AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) ValidateToken(ctx context.Context) (*ValidateResponse, error) {
	var out ValidateResponse
	if err := s.c.do(ctx, http.MethodGet, "/account/validate", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) Profile(ctx context.Context) (*domain.UserSummary, error) {
	var out domain.UserSummary
	if err := s.c.do(ctx, http.MethodGet, "/account/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) UpdateApplicantProfile(ctx context.Context, p domain.ApplicantProfile) (*domain.UserSummary, error) {
	var out domain.UserSummary
	if err := s.c.do(ctx, http.MethodPut, "/account/applicant", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) UpdateEmployerProfile(ctx context.Context, p domain.EmployerProfile) (*domain.UserSummary, error) {
	var out domain.UserSummary
	if err := s.c.do(ctx, http.MethodPut, "/account/employer", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return s.c.do(ctx, http.MethodPost, "/account/change-password", nil, body, nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string, role domain.Role) error {
	body := map[string]any{"email": email, "role": role}
	return s.c.do(ctx, http.MethodPost, "/account/forgot-password", nil, body, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.c.do(ctx, http.MethodPost, "/account/reset-password", nil, body, nil)
}
