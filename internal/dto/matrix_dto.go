package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
)

// CalculateRequest carries the birth date as YYYY-MM-DD or DD.MM.YYYY.
type CalculateRequest struct {
	BirthDate string   `json:"birth_date"`
	Name      string   `json:"name"`
	Expanded  []string `json:"expanded,omitempty"`
}

type ShareRequest struct {
	BirthDate        string `json:"birth_date"`
	Name             string `json:"name"`
	OmitProfessional bool   `json:"omit_professional,omitempty"`
}

type ShareResponse struct {
	Text string `json:"text"`
}

type ExportResponse struct {
	Document    interface{}        `json:"document"`
	Entitlement access.Entitlement `json:"entitlement"`
}

type DeviceResponse struct {
	ID           string    `json:"id"`
	IPAddress    string    `json:"ip_address"`
	DeviceType   string    `json:"device_type"`
	UserAgent    string    `json:"user_agent"`
	Description  string    `json:"description"`
	LastActivity time.Time `json:"last_activity"`
	IsCurrent    bool      `json:"is_current"`
}

type DevicesResponse struct {
	access.Entitlement
	Devices     []DeviceResponse `json:"devices"`
	ActiveCount int              `json:"active_count"`
	MaxDevices  int              `json:"max_devices"`
}
