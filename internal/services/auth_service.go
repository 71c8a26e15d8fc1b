package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
)

const (
	RoleSubscriber = "subscriber"
	RoleAdmin      = "admin"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	cfg     *config.Config
	access  *AccessService
	devices *DeviceService
}

func NewAuthService(cfg *config.Config, accessService *AccessService, devices *DeviceService) *AuthService {
	return &AuthService{cfg: cfg, access: accessService, devices: devices}
}

// SubscriberLogin issues a token for an entitled email and registers the
// device it logs in from.
func (s *AuthService) SubscriberLogin(ctx context.Context, email, ip, ua string) (*dto.AuthResponse, error) {
	ent, err := s.access.Check(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ent.HasAccess {
		return nil, &DeniedError{Entitlement: ent}
	}

	email = access.NormalizeEmail(email)
	if _, err := s.devices.Register(ctx, email, ip, ua); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTAccessExpiry)
	if ent.ExpiresAt != nil && ent.ExpiresAt.Before(expiresAt) {
		expiresAt = *ent.ExpiresAt
	}
	token, err := s.generateAccessToken(email, RoleSubscriber, ent.PlanType, expiresAt)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC(),
		Email:       email,
		Role:        RoleSubscriber,
		Entitlement: &ent,
	}, nil
}

// AdminLogin checks the admin email list and the shared bcrypt hash.
func (s *AuthService) AdminLogin(req *dto.AdminLoginRequest) (*dto.AuthResponse, error) {
	email := access.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" || s.cfg.AdminPasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if !IsAdminEmail(s.cfg.AdminEmails, email) {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.cfg.JWTAdminExpiry)
	token, err := s.generateAccessToken(email, RoleAdmin, RoleAdmin, expiresAt)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC(),
		Email:       email,
		Role:        RoleAdmin,
	}, nil
}

// IsAdminEmail reports whether email is in the configured admin list.
func IsAdminEmail(admins []string, email string) bool {
	email = access.NormalizeEmail(email)
	for _, a := range admins {
		if access.NormalizeEmail(a) == email && email != "" {
			return true
		}
	}
	return false
}

func (s *AuthService) generateAccessToken(email, role, planType string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":       email,
		"email":     email,
		"role":      role,
		"plan_type": planType,
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
