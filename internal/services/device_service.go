package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mssola/useragent"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
)

const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
)

var ErrDeviceLimit = errors.New("device limit reached")

type DeviceService struct {
	db         *gorm.DB
	maxDevices int
}

func NewDeviceService(db *gorm.DB, maxDevices int) *DeviceService {
	if maxDevices <= 0 {
		maxDevices = 3
	}
	return &DeviceService{db: db, maxDevices: maxDevices}
}

func (s *DeviceService) MaxDevices() int {
	return s.maxDevices
}

// Register records a login from ip+ua. A known device is refreshed; a new
// one is rejected once the email has maxDevices sessions.
func (s *DeviceService) Register(ctx context.Context, email, ip, ua string) (*models.DeviceSession, error) {
	email = access.NormalizeEmail(email)
	if email == "" {
		return nil, access.ErrEmailRequired
	}
	now := time.Now().UTC()

	var session models.DeviceSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ? AND ip_address = ? AND user_agent = ?", email, ip, ua).First(&session).Error
		if err == nil {
			session.LastActivity = now
			return tx.Model(&session).Update("last_activity", now).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		if err := tx.Model(&models.DeviceSession{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if int(count) >= s.maxDevices {
			return ErrDeviceLimit
		}

		session = models.DeviceSession{
			Email:        email,
			IPAddress:    ip,
			DeviceType:   ClassifyDevice(ua),
			UserAgent:    ua,
			LastActivity: now,
		}
		return tx.Create(&session).Error
	})
	if errors.Is(err, ErrDeviceLimit) {
		slog.Warn("device limit reached", "email", email, "action", "device_register", "max_devices", s.maxDevices)
		return nil, ErrDeviceLimit
	}
	if err != nil {
		return nil, fmt.Errorf("register device: %w", err)
	}
	return &session, nil
}

// List returns the sessions of email, most recently active first, marking
// the one matching currentIP and currentUA.
func (s *DeviceService) List(ctx context.Context, email, currentIP, currentUA string) ([]dto.DeviceResponse, error) {
	var sessions []models.DeviceSession
	if err := s.db.WithContext(ctx).
		Where("email = ?", access.NormalizeEmail(email)).
		Order("last_activity DESC").
		Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	out := make([]dto.DeviceResponse, 0, len(sessions))
	for _, d := range sessions {
		out = append(out, dto.DeviceResponse{
			ID:           d.ID.String(),
			IPAddress:    d.IPAddress,
			DeviceType:   d.DeviceType,
			UserAgent:    d.UserAgent,
			Description:  DescribeUserAgent(d.UserAgent),
			LastActivity: d.LastActivity,
			IsCurrent:    d.IPAddress == currentIP && d.UserAgent == currentUA,
		})
	}
	return out, nil
}

func (s *DeviceService) Logout(ctx context.Context, email, ip, ua string) error {
	return s.db.WithContext(ctx).
		Where("email = ? AND ip_address = ? AND user_agent = ?", access.NormalizeEmail(email), ip, ua).
		Delete(&models.DeviceSession{}).Error
}

// ClassifyDevice buckets a user agent into Mobile, Tablet or Desktop.
func ClassifyDevice(raw string) string {
	ua := useragent.New(raw)
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "ipad"), strings.Contains(lower, "tablet"),
		strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"):
		return DeviceTablet
	case ua.Mobile():
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// DescribeUserAgent renders "Browser on OS" for display.
func DescribeUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown Device"
	}
	ua := useragent.New(raw)
	browser, _ := ua.Browser()
	os := ua.OS()
	if os == "" {
		os = ua.Platform()
	}
	return strings.TrimSpace(fmt.Sprintf("%s on %s", browser, os))
}
