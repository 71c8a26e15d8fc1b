package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/plans"
)

const (
	MsgAccessNotFound  = "Доступ не найден. Возможно, заявка ещё не одобрена."
	MsgAccessExpired   = "Срок действия подписки истёк"
	MsgNoDownloadsLeft = "Использованы все доступные скачивания"
)

var (
	ErrAccessDenied  = errors.New("access denied")
	ErrUnknownPlan   = errors.New("unknown plan")
	ErrGrantNotFound = errors.New("access grant not found")
)

// DeniedError carries the entitlement that failed a check.
type DeniedError struct {
	Entitlement access.Entitlement
}

func (e *DeniedError) Error() string {
	if e.Entitlement.Message != "" {
		return e.Entitlement.Message
	}
	return ErrAccessDenied.Error()
}

func (e *DeniedError) Unwrap() error {
	return ErrAccessDenied
}

type AccessService struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewAccessService(db *gorm.DB, m *metrics.Metrics) *AccessService {
	return &AccessService{db: db, metrics: m, now: time.Now}
}

// Check resolves the entitlement of email. A missing, expired or exhausted
// grant is a denied entitlement with an explanatory message, not an error.
func (s *AccessService) Check(ctx context.Context, email string) (access.Entitlement, error) {
	email = access.NormalizeEmail(email)
	if email == "" {
		return access.Entitlement{}, access.ErrEmailRequired
	}

	var grant models.AccessGrant
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.metrics.ObserveAccessCheck("denied")
		return access.Entitlement{HasAccess: false, Message: MsgAccessNotFound}, nil
	}
	if err != nil {
		s.metrics.ObserveAccessCheck("error")
		return access.Entitlement{}, fmt.Errorf("load access grant: %w", err)
	}

	ent := entitlementOf(&grant)
	switch {
	case grant.ExpiresAt != nil && s.now().After(*grant.ExpiresAt):
		ent.HasAccess = false
		ent.Message = MsgAccessExpired
	case grant.DownloadsLeft != nil && *grant.DownloadsLeft <= 0:
		ent.HasAccess = false
		ent.Message = MsgNoDownloadsLeft
	default:
		ent.HasAccess = true
	}

	if ent.HasAccess {
		s.metrics.ObserveAccessCheck("granted")
	} else {
		s.metrics.ObserveAccessCheck("denied")
	}
	return ent, nil
}

// Grant issues or replaces the grant of email for the given plan.
func (s *AccessService) Grant(ctx context.Context, email, planType, grantedBy string) (*models.AccessGrant, error) {
	return s.grant(s.db.WithContext(ctx), email, planType, grantedBy)
}

func (s *AccessService) grant(tx *gorm.DB, email, planType, grantedBy string) (*models.AccessGrant, error) {
	email = access.NormalizeEmail(email)
	if email == "" {
		return nil, access.ErrEmailRequired
	}
	plan, ok := plans.Lookup(planType)
	if !ok {
		return nil, ErrUnknownPlan
	}

	now := s.now().UTC()
	expiresAt, downloadsLeft := plan.Apply(now)
	grant := models.AccessGrant{
		Email:         email,
		PlanType:      string(plan.Type),
		ExpiresAt:     expiresAt,
		DownloadsLeft: downloadsLeft,
		GrantedAt:     now,
		GrantedBy:     grantedBy,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan_type", "expires_at", "downloads_left", "granted_at", "granted_by", "updated_at"}),
	}).Create(&grant).Error
	if err != nil {
		return nil, fmt.Errorf("save access grant: %w", err)
	}
	// On conflict the stored row keeps its id, so reload by email only.
	var saved models.AccessGrant
	if err := tx.Where("email = ?", email).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload access grant: %w", err)
	}

	slog.Info("access granted", "email", email, "plan_type", saved.PlanType, "action", "grant", "granted_by", grantedBy)
	return &saved, nil
}

func (s *AccessService) Revoke(ctx context.Context, email string) error {
	email = access.NormalizeEmail(email)
	res := s.db.WithContext(ctx).Where("email = ?", email).Delete(&models.AccessGrant{})
	if res.Error != nil {
		return fmt.Errorf("revoke access: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGrantNotFound
	}
	slog.Info("access revoked", "email", email, "action", "revoke")
	return nil
}

// ConsumeDownload records an export of payload for email. Per-download
// plans lose one download; unlimited plans are only recorded.
func (s *AccessService) ConsumeDownload(ctx context.Context, email string, payload interface{}) (access.Entitlement, error) {
	email = access.NormalizeEmail(email)
	if email == "" {
		return access.Entitlement{}, access.ErrEmailRequired
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return access.Entitlement{}, fmt.Errorf("encode calculation data: %w", err)
	}

	var ent access.Entitlement
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var grant models.AccessGrant
		if err := tx.Where("email = ?", email).First(&grant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ent = access.Entitlement{Message: MsgAccessNotFound}
				return ErrAccessDenied
			}
			return err
		}

		ent = entitlementOf(&grant)
		if grant.ExpiresAt != nil && s.now().After(*grant.ExpiresAt) {
			ent.Message = MsgAccessExpired
			return ErrAccessDenied
		}
		if grant.DownloadsLeft != nil {
			if *grant.DownloadsLeft <= 0 {
				ent.Message = MsgNoDownloadsLeft
				return ErrAccessDenied
			}
			res := tx.Model(&models.AccessGrant{}).
				Where("id = ? AND downloads_left > 0", grant.ID).
				Update("downloads_left", gorm.Expr("downloads_left - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				ent.Message = MsgNoDownloadsLeft
				return ErrAccessDenied
			}
			left := *grant.DownloadsLeft - 1
			ent.DownloadsLeft = &left
		}

		ent.HasAccess = true
		return tx.Create(&models.Download{Email: email, CalculationData: datatypes.JSON(raw)}).Error
	})
	if errors.Is(err, ErrAccessDenied) {
		ent.HasAccess = false
		return ent, &DeniedError{Entitlement: ent}
	}
	if err != nil {
		return access.Entitlement{}, fmt.Errorf("consume download: %w", err)
	}
	return ent, nil
}

func entitlementOf(g *models.AccessGrant) access.Entitlement {
	granted := g.GrantedAt
	return access.Entitlement{
		PlanType:      g.PlanType,
		ExpiresAt:     g.ExpiresAt,
		DownloadsLeft: g.DownloadsLeft,
		GrantedAt:     &granted,
	}
}
