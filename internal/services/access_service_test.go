package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/testutil"
)

type AccessServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	metrics *metrics.Metrics
	svc     *AccessService
	ctx     context.Context
}

func TestAccessServiceSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceSuite))
}

func (s *AccessServiceSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = NewAccessService(s.db, s.metrics)
	s.ctx = context.Background()
}

func (s *AccessServiceSuite) TestCheckWithoutGrant() {
	ent, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.False(ent.HasAccess)
	s.Equal(MsgAccessNotFound, ent.Message)
	s.Equal(float64(1), promtest.ToFloat64(s.metrics.AccessChecks.WithLabelValues("denied")))
}

func (s *AccessServiceSuite) TestCheckRequiresEmail() {
	_, err := s.svc.Check(s.ctx, "  ")
	s.ErrorIs(err, ErrEmailRequired)
}

func (s *AccessServiceSuite) TestPeriodGrant() {
	grant, err := s.svc.Grant(s.ctx, " Anna@Example.com", "month", "admin@example.com")
	s.Require().NoError(err)
	s.Equal("anna@example.com", grant.Email)
	s.Require().NotNil(grant.ExpiresAt)
	s.Nil(grant.DownloadsLeft)

	ent, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.True(ent.HasAccess)
	s.Equal("month", ent.PlanType)
	s.Require().NotNil(ent.ExpiresAt)
	s.WithinDuration(time.Now().AddDate(0, 0, 30), *ent.ExpiresAt, time.Minute)
	s.Equal(float64(1), promtest.ToFloat64(s.metrics.AccessChecks.WithLabelValues("granted")))
}

func (s *AccessServiceSuite) TestExpiredGrant() {
	_, err := s.svc.Grant(s.ctx, "anna@example.com", "month", "admin")
	s.Require().NoError(err)

	s.svc.now = func() time.Time { return time.Now().AddDate(0, 0, 31) }
	ent, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.False(ent.HasAccess)
	s.Equal(MsgAccessExpired, ent.Message)
	s.Equal("month", ent.PlanType)
}

func (s *AccessServiceSuite) TestRegrantReplacesPlan() {
	first, err := s.svc.Grant(s.ctx, "anna@example.com", "single", "admin")
	s.Require().NoError(err)
	renewed, err := s.svc.Grant(s.ctx, "anna@example.com", "year", "admin")
	s.Require().NoError(err)
	s.Equal(first.ID, renewed.ID)
	s.Equal("year", renewed.PlanType)

	var count int64
	s.Require().NoError(s.db.Model(&models.AccessGrant{}).Count(&count).Error)
	s.Equal(int64(1), count)

	ent, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.Equal("year", ent.PlanType)
	s.Nil(ent.DownloadsLeft)
}

func (s *AccessServiceSuite) TestGrantUnknownPlan() {
	_, err := s.svc.Grant(s.ctx, "anna@example.com", "forever", "admin")
	s.ErrorIs(err, ErrUnknownPlan)
}

func (s *AccessServiceSuite) TestConsumeSingleDownload() {
	_, err := s.svc.Grant(s.ctx, "anna@example.com", "single", "admin")
	s.Require().NoError(err)

	ent, err := s.svc.ConsumeDownload(s.ctx, "anna@example.com", map[string]int{"personal": 3})
	s.Require().NoError(err)
	s.True(ent.HasAccess)
	s.Require().NotNil(ent.DownloadsLeft)
	s.Equal(0, *ent.DownloadsLeft)

	var downloads []models.Download
	s.Require().NoError(s.db.Find(&downloads).Error)
	s.Require().Len(downloads, 1)
	s.JSONEq(`{"personal":3}`, string(downloads[0].CalculationData))

	check, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.False(check.HasAccess)
	s.Equal(MsgNoDownloadsLeft, check.Message)

	ent, err = s.svc.ConsumeDownload(s.ctx, "anna@example.com", nil)
	s.ErrorIs(err, ErrAccessDenied)
	var denied *DeniedError
	s.Require().True(errors.As(err, &denied))
	s.Equal(MsgNoDownloadsLeft, denied.Entitlement.Message)
	s.False(ent.HasAccess)
}

func (s *AccessServiceSuite) TestConsumeUnlimited() {
	_, err := s.svc.Grant(s.ctx, "anna@example.com", "half_year", "admin")
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		ent, err := s.svc.ConsumeDownload(s.ctx, "anna@example.com", map[string]int{"n": i})
		s.Require().NoError(err)
		s.True(ent.HasAccess)
		s.Nil(ent.DownloadsLeft)
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Download{}).Count(&count).Error)
	s.Equal(int64(3), count)
}

func (s *AccessServiceSuite) TestConsumeWithoutGrant() {
	_, err := s.svc.ConsumeDownload(s.ctx, "anna@example.com", nil)
	var denied *DeniedError
	s.Require().True(errors.As(err, &denied))
	s.Equal(MsgAccessNotFound, denied.Entitlement.Message)
}

func (s *AccessServiceSuite) TestRevoke() {
	_, err := s.svc.Grant(s.ctx, "anna@example.com", "admin", "root")
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Revoke(s.ctx, "ANNA@example.com"))
	s.ErrorIs(s.svc.Revoke(s.ctx, "anna@example.com"), ErrGrantNotFound)

	ent, err := s.svc.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.False(ent.HasAccess)
}
