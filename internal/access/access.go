// Package access checks whether an email is entitled to the detailed
// interpretation.
package access

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Entitlement is the access state of one email.
type Entitlement struct {
	HasAccess     bool       `json:"has_access"`
	PlanType      string     `json:"plan_type,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	DownloadsLeft *int       `json:"downloads_left,omitempty"`
	GrantedAt     *time.Time `json:"granted_at,omitempty"`
	Message       string     `json:"message,omitempty"`
}

//go:generate mockgen -source=access.go -destination=mocks/mocks.go -package=mocks Checker

// Checker resolves the entitlement of an email.
type Checker interface {
	Check(ctx context.Context, email string) (Entitlement, error)
}

var ErrEmailRequired = errors.New("email is required")

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NoticeCheckFailed is shown when the entitlement could not be fetched.
const NoticeCheckFailed = "Не удалось проверить доступ. Попробуйте позже."

// Gate turns checker failures into a denied entitlement plus a notice.
// It never retries.
type Gate struct {
	checker Checker
	logger  *slog.Logger
}

func NewGate(checker Checker, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{checker: checker, logger: logger}
}

// Resolve returns the entitlement of email. Notice is empty on success.
func (g *Gate) Resolve(ctx context.Context, email string) (Entitlement, string) {
	email = NormalizeEmail(email)
	if email == "" {
		return Entitlement{}, ""
	}
	ent, err := g.checker.Check(ctx, email)
	if err != nil {
		g.logger.Warn("access check failed", "email", email, "action", "access_check", "error", err)
		return Entitlement{HasAccess: false}, NoticeCheckFailed
	}
	return ent, ""
}
