package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/testutil"
)

type AuthServiceSuite struct {
	suite.Suite
	cfg    *config.Config
	access *AccessService
	svc    *AuthService
	ctx    context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTAccessExpiry:   168 * time.Hour,
		JWTAdminExpiry:    time.Hour,
		AdminEmails:       []string{"Admin@Example.com"},
		AdminPasswordHash: string(hash),
	}
	db := testutil.NewDB(s.T())
	s.access = NewAccessService(db, nil)
	s.svc = NewAuthService(s.cfg, s.access, NewDeviceService(db, 1))
	s.ctx = context.Background()
}

func (s *AuthServiceSuite) parse(token string) jwt.MapClaims {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	s.Require().NoError(err)
	return claims
}

func (s *AuthServiceSuite) TestSubscriberLogin() {
	_, err := s.access.Grant(s.ctx, "anna@example.com", "month", "admin")
	s.Require().NoError(err)

	resp, err := s.svc.SubscriberLogin(s.ctx, "Anna@Example.com", "10.0.0.1", uaDesktop)
	s.Require().NoError(err)
	s.Equal("anna@example.com", resp.Email)
	s.Equal(RoleSubscriber, resp.Role)
	s.Require().NotNil(resp.Entitlement)
	s.True(resp.Entitlement.HasAccess)
	s.True(resp.ExpiresAt.Before(time.Now().AddDate(0, 0, 31)))

	claims := s.parse(resp.AccessToken)
	s.Equal("anna@example.com", claims["email"])
	s.Equal(RoleSubscriber, claims["role"])
	s.Equal("month", claims["plan_type"])
}

func (s *AuthServiceSuite) TestSubscriberLoginWithoutAccess() {
	_, err := s.svc.SubscriberLogin(s.ctx, "anna@example.com", "10.0.0.1", uaDesktop)
	var denied *DeniedError
	s.Require().True(errors.As(err, &denied))
	s.Equal(MsgAccessNotFound, denied.Entitlement.Message)
}

func (s *AuthServiceSuite) TestSubscriberLoginDeviceLimit() {
	_, err := s.access.Grant(s.ctx, "anna@example.com", "year", "admin")
	s.Require().NoError(err)

	_, err = s.svc.SubscriberLogin(s.ctx, "anna@example.com", "10.0.0.1", uaDesktop)
	s.Require().NoError(err)
	_, err = s.svc.SubscriberLogin(s.ctx, "anna@example.com", "10.0.0.2", uaIPhone)
	s.ErrorIs(err, ErrDeviceLimit)
}

func (s *AuthServiceSuite) TestAdminLogin() {
	resp, err := s.svc.AdminLogin(&dto.AdminLoginRequest{Email: "admin@example.com", Password: "s3cret-pass"})
	s.Require().NoError(err)
	s.Equal(RoleAdmin, resp.Role)
	s.Equal(RoleAdmin, s.parse(resp.AccessToken)["role"])

	_, err = s.svc.AdminLogin(&dto.AdminLoginRequest{Email: "admin@example.com", Password: "wrong"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.svc.AdminLogin(&dto.AdminLoginRequest{Email: "other@example.com", Password: "s3cret-pass"})
	s.ErrorIs(err, ErrInvalidCredentials)
}
