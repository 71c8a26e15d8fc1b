package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/plans"
)

var (
	ErrEmailRequired     = access.ErrEmailRequired
	ErrPaymentNotFound   = errors.New("payment request not found")
	ErrAlreadyProcessed  = errors.New("payment request already processed")
	ErrInvalidScreenshot = errors.New("invalid screenshot encoding")
	ErrInvalidStatus     = errors.New("invalid status filter")
)

const screenshotPrefix = "payment-screenshots/"

// Notifier tells moderators about a new payment request.
type Notifier interface {
	NotifyPaymentRequest(ctx context.Context, req *models.PaymentRequest) error
}

type PaymentService struct {
	db          *gorm.DB
	access      *AccessService
	notifier    Notifier
	screenshots ScreenshotStore
	metrics     *metrics.Metrics
}

// NewPaymentService wires the moderation flow. notifier and screenshots may
// be nil.
func NewPaymentService(db *gorm.DB, accessService *AccessService, notifier Notifier, screenshots ScreenshotStore, m *metrics.Metrics) *PaymentService {
	return &PaymentService{
		db:          db,
		access:      accessService,
		notifier:    notifier,
		screenshots: screenshots,
		metrics:     m,
	}
}

func (s *PaymentService) Submit(ctx context.Context, req *dto.SubmitPaymentRequest) (*models.PaymentRequest, error) {
	email := access.NormalizeEmail(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	planType := req.PlanType
	if planType == "" {
		planType = string(plans.Single)
	}
	plan, ok := plans.Lookup(planType)
	if !ok || !plan.Public {
		return nil, ErrUnknownPlan
	}

	var screenshotURL string
	if req.Screenshot != "" {
		data, err := decodeScreenshot(req.Screenshot)
		if err != nil {
			return nil, err
		}
		screenshotURL = s.uploadScreenshot(ctx, email, data)
	}

	payment := models.PaymentRequest{
		Email:         email,
		Phone:         strings.TrimSpace(req.Phone),
		PlanType:      string(plan.Type),
		Amount:        plan.Price,
		ScreenshotURL: screenshotURL,
		Status:        models.PaymentPending,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}
	s.metrics.ObservePaymentRequest(models.PaymentPending)
	slog.Info("payment request submitted", "email", email, "plan_type", payment.PlanType, "action", "payment_submit", "request_id", payment.ID)

	if s.notifier != nil {
		if err := s.notifier.NotifyPaymentRequest(ctx, &payment); err != nil {
			slog.Error("payment notification failed", "email", email, "action", "payment_notify", "request_id", payment.ID, "error", err)
		}
	}
	return &payment, nil
}

func (s *PaymentService) uploadScreenshot(ctx context.Context, email string, data []byte) string {
	if s.screenshots == nil {
		return ""
	}
	key := ScreenshotKey(email, uuid.New())
	url, err := s.screenshots.Save(ctx, key, data, "image/jpeg")
	if err != nil {
		slog.Warn("screenshot upload failed", "email", email, "action", "screenshot_upload", "error", err)
		return ""
	}
	return url
}

// ScreenshotKey is the object key of a screenshot uploaded by email.
func ScreenshotKey(email string, id uuid.UUID) string {
	safe := strings.NewReplacer("@", "_", ".", "_").Replace(email)
	return screenshotPrefix + safe + "_" + id.String() + ".jpg"
}

// decodeScreenshot accepts raw base64 or a data URL.
func decodeScreenshot(s string) ([]byte, error) {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidScreenshot
	}
	return data, nil
}

// List returns requests newest first. An empty status returns all.
func (s *PaymentService) List(ctx context.Context, status string) ([]models.PaymentRequest, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	switch status {
	case "":
	case models.PaymentPending, models.PaymentApproved, models.PaymentRejected:
		q = q.Where("status = ?", status)
	default:
		return nil, ErrInvalidStatus
	}

	var out []models.PaymentRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment requests: %w", err)
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.PaymentRequest, error) {
	var payment models.PaymentRequest
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Approve marks a pending request approved and grants access per its plan.
func (s *PaymentService) Approve(ctx context.Context, id uint, by string) (*models.PaymentRequest, *models.AccessGrant, error) {
	var (
		payment models.PaymentRequest
		grant   *models.AccessGrant
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockPending(tx, id, &payment); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":       models.PaymentApproved,
			"approved_at":  now,
			"processed_by": by,
		}).Error; err != nil {
			return err
		}
		payment.Status = models.PaymentApproved
		payment.ApprovedAt = &now
		payment.ProcessedBy = by

		var err error
		grant, err = s.access.grant(tx, payment.Email, payment.PlanType, by)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.ObservePaymentRequest(models.PaymentApproved)
	slog.Info("payment request approved", "email", payment.Email, "plan_type", payment.PlanType, "action", "payment_approve", "request_id", id, "by", by)
	return &payment, grant, nil
}

func (s *PaymentService) Reject(ctx context.Context, id uint, by string) (*models.PaymentRequest, error) {
	var payment models.PaymentRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lockPending(tx, id, &payment); err != nil {
			return err
		}
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":       models.PaymentRejected,
			"processed_by": by,
		}).Error; err != nil {
			return err
		}
		payment.Status = models.PaymentRejected
		payment.ProcessedBy = by
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObservePaymentRequest(models.PaymentRejected)
	slog.Info("payment request rejected", "email", payment.Email, "action", "payment_reject", "request_id", id, "by", by)
	return &payment, nil
}

func (s *PaymentService) lockPending(tx *gorm.DB, id uint, payment *models.PaymentRequest) error {
	if err := tx.First(payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	if payment.Status != models.PaymentPending {
		return ErrAlreadyProcessed
	}
	return nil
}
