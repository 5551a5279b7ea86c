package models

import (
	"time"
)

type CheckoutKind string

const (
	CheckoutCreditPackage CheckoutKind = "credit_package"
	CheckoutSubscription  CheckoutKind = "subscription"
)

type CheckoutStatus string

const (
	CheckoutPending   CheckoutStatus = "PENDING"
	CheckoutCompleted CheckoutStatus = "COMPLETED"
	CheckoutExpired   CheckoutStatus = "EXPIRED"
)

// CheckoutSession records a payment started on the gateway. Credits are only
// granted when the gateway confirms it, and only once per session.
type CheckoutSession struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"userId" gorm:"type:uuid;index;not null"`
	Kind        CheckoutKind   `json:"kind" gorm:"type:varchar(20)"`
	ReferenceID string         `json:"referenceId"`
	Status      CheckoutStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	URL         string         `json:"url"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (CheckoutSession) TableName() string {
	return "checkout_sessions"
}
