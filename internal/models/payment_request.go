package models

import "time"

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// PaymentRequest is a manual payment awaiting moderation. The numeric ID is
// what moderators see in Telegram callbacks.
type PaymentRequest struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email         string     `gorm:"size:255;not null;index" json:"email"`
	Phone         string     `gorm:"size:50" json:"phone,omitempty"`
	PlanType      string     `gorm:"size:20;not null" json:"plan_type"`
	Amount        int        `gorm:"not null" json:"amount"`
	ScreenshotURL string     `gorm:"size:1000" json:"screenshot_url,omitempty"`
	Status        string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ProcessedBy   string     `gorm:"size:255" json:"processed_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
}

func (PaymentRequest) TableName() string {
	return "payment_requests"
}
