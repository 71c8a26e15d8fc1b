package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/testutil"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.PaymentRequest
	err  error
}

func (f *fakeNotifier) NotifyPaymentRequest(_ context.Context, req *models.PaymentRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, *req)
	return f.err
}

type fakeScreenshots struct {
	keys []string
	data [][]byte
	err  error
}

func (f *fakeScreenshots) Save(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	f.data = append(f.data, data)
	return "https://cdn.example.org/" + key, nil
}

type PaymentServiceSuite struct {
	suite.Suite
	db          *gorm.DB
	access      *AccessService
	notifier    *fakeNotifier
	screenshots *fakeScreenshots
	svc         *PaymentService
	ctx         context.Context
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.access = NewAccessService(s.db, nil)
	s.notifier = &fakeNotifier{}
	s.screenshots = &fakeScreenshots{}
	s.svc = NewPaymentService(s.db, s.access, s.notifier, s.screenshots, nil)
	s.ctx = context.Background()
}

func (s *PaymentServiceSuite) submit(email, plan string) *models.PaymentRequest {
	req, err := s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{Email: email, PlanType: plan})
	s.Require().NoError(err)
	return req
}

func (s *PaymentServiceSuite) TestSubmit() {
	shot := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))
	req, err := s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{
		Email:      " Anna@Example.com ",
		Phone:      "+7 900 000-00-00",
		PlanType:   "month",
		Screenshot: shot,
	})
	s.Require().NoError(err)

	s.NotZero(req.ID)
	s.Equal("anna@example.com", req.Email)
	s.Equal(models.PaymentPending, req.Status)
	s.Equal(1000, req.Amount)
	s.Require().Len(s.screenshots.keys, 1)
	s.True(strings.HasPrefix(s.screenshots.keys[0], "payment-screenshots/anna_example_com_"))
	s.True(strings.HasSuffix(s.screenshots.keys[0], ".jpg"))
	s.Equal([]byte("jpeg-bytes"), s.screenshots.data[0])
	s.Equal("https://cdn.example.org/"+s.screenshots.keys[0], req.ScreenshotURL)

	s.Require().Len(s.notifier.sent, 1)
	s.Equal(req.ID, s.notifier.sent[0].ID)
}

func (s *PaymentServiceSuite) TestSubmitDefaultsToSinglePlan() {
	req := s.submit("anna@example.com", "")
	s.Equal("single", req.PlanType)
	s.Equal(200, req.Amount)
}

func (s *PaymentServiceSuite) TestSubmitValidation() {
	_, err := s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{})
	s.ErrorIs(err, ErrEmailRequired)

	_, err = s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{Email: "a@b.c", PlanType: "admin"})
	s.ErrorIs(err, ErrUnknownPlan)

	_, err = s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{Email: "a@b.c", Screenshot: "data:image/png;base64,%%%"})
	s.ErrorIs(err, ErrInvalidScreenshot)
}

func (s *PaymentServiceSuite) TestNotificationAndUploadFailuresAreNotFatal() {
	s.notifier.err = errors.New("telegram down")
	s.screenshots.err = errors.New("bucket down")

	req, err := s.svc.Submit(s.ctx, &dto.SubmitPaymentRequest{
		Email:      "anna@example.com",
		Screenshot: base64.StdEncoding.EncodeToString([]byte("x")),
	})
	s.Require().NoError(err)
	s.Empty(req.ScreenshotURL)
	s.Len(s.notifier.sent, 1)
}

func (s *PaymentServiceSuite) TestListNewestFirst() {
	first := s.submit("a@example.com", "single")
	second := s.submit("b@example.com", "year")
	_, err := s.svc.Reject(s.ctx, first.ID, "admin")
	s.Require().NoError(err)

	all, err := s.svc.List(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID)

	pending, err := s.svc.List(s.ctx, models.PaymentPending)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(second.ID, pending[0].ID)

	_, err = s.svc.List(s.ctx, "bogus")
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *PaymentServiceSuite) TestApproveGrantsAccess() {
	req := s.submit("anna@example.com", "single")

	approved, grant, err := s.svc.Approve(s.ctx, req.ID, "telegram")
	s.Require().NoError(err)
	s.Equal(models.PaymentApproved, approved.Status)
	s.NotNil(approved.ApprovedAt)
	s.Equal("single", grant.PlanType)
	s.Require().NotNil(grant.DownloadsLeft)
	s.Equal(1, *grant.DownloadsLeft)

	ent, err := s.access.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.True(ent.HasAccess)

	stored, err := s.svc.Get(s.ctx, req.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentApproved, stored.Status)
	s.Equal("telegram", stored.ProcessedBy)
}

func (s *PaymentServiceSuite) TestApproveRenewsExistingGrant() {
	first := s.submit("anna@example.com", "single")
	_, _, err := s.svc.Approve(s.ctx, first.ID, "telegram")
	s.Require().NoError(err)

	second := s.submit("anna@example.com", "year")
	approved, grant, err := s.svc.Approve(s.ctx, second.ID, "admin")
	s.Require().NoError(err)
	s.Equal(models.PaymentApproved, approved.Status)
	s.Equal("year", grant.PlanType)
	s.Nil(grant.DownloadsLeft)

	stored, err := s.svc.Get(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Equal(models.PaymentApproved, stored.Status)

	ent, err := s.access.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.Equal("year", ent.PlanType)

	var count int64
	s.Require().NoError(s.db.Model(&models.AccessGrant{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PaymentServiceSuite) TestModerationIsOneShot() {
	req := s.submit("anna@example.com", "month")
	_, err := s.svc.Reject(s.ctx, req.ID, "admin")
	s.Require().NoError(err)

	_, _, err = s.svc.Approve(s.ctx, req.ID, "admin")
	s.ErrorIs(err, ErrAlreadyProcessed)
	_, err = s.svc.Reject(s.ctx, req.ID, "admin")
	s.ErrorIs(err, ErrAlreadyProcessed)

	ent, err := s.access.Check(s.ctx, "anna@example.com")
	s.Require().NoError(err)
	s.False(ent.HasAccess)
}

func (s *PaymentServiceSuite) TestUnknownRequest() {
	_, _, err := s.svc.Approve(s.ctx, 999, "admin")
	s.ErrorIs(err, ErrPaymentNotFound)
	_, err = s.svc.Get(s.ctx, 999)
	s.ErrorIs(err, ErrPaymentNotFound)
}

func TestScreenshotKey(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, "payment-screenshots/anna_example_com_00000000-0000-0000-0000-000000000001.jpg", ScreenshotKey("anna@example.com", id))
}

func TestDecodeScreenshot(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("img"))

	data, err := decodeScreenshot(raw)
	assert.NoError(t, err)
	assert.Equal(t, []byte("img"), data)

	data, err = decodeScreenshot("data:image/jpeg;base64," + raw)
	assert.NoError(t, err)
	assert.Equal(t, []byte("img"), data)

	_, err = decodeScreenshot("data:image/jpeg;base64,")
	assert.ErrorIs(t, err, ErrInvalidScreenshot)
}
