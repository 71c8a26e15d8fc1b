package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
)

// SubscriberLoginRequest unlocks the interpretation for a paid email.
type SubscriberLoginRequest struct {
	Email string `json:"email"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string              `json:"access_token"`
	ExpiresAt   time.Time           `json:"expires_at"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	Entitlement *access.Entitlement `json:"entitlement,omitempty"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Cache     string `json:"cache"`
	Arcana    int    `json:"arcana"`
}
