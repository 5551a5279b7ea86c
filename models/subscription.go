package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SubscriptionPlan is a purchasable plan of the catalog.
type SubscriptionPlan struct {
	ID              string                      `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" gorm:"not null"`
	Price           decimal.Decimal             `json:"price" gorm:"type:numeric(12,2);not null"`
	Currency        string                      `json:"currency" gorm:"type:varchar(3);default:'USD'"`
	Credits         int64                       `json:"credits"`
	Features        datatypes.JSONSlice[string] `json:"features" gorm:"type:jsonb"`
	StripeProductID string                      `json:"stripeProductId,omitempty"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// IsFree plans are applied without going through the payment gateway.
func (p SubscriptionPlan) IsFree() bool {
	return !p.Price.IsPositive()
}

// UserSubscription is the snapshot of the plan a user holds. There is at most
// one row per user; a later write replaces an earlier one.
type UserSubscription struct {
	UserID               string                      `json:"userId" gorm:"primaryKey;type:uuid"`
	PlanID               string                      `json:"planId"`
	Name                 string                      `json:"name"`
	Price                decimal.Decimal             `json:"price" gorm:"type:numeric(12,2)"`
	Currency             string                      `json:"currency" gorm:"type:varchar(3)"`
	Credits              int64                       `json:"credits"`
	Features             datatypes.JSONSlice[string] `json:"features" gorm:"type:jsonb"`
	RenewsOn             time.Time                   `json:"renewsOn"`
	PaymentMethod        string                      `json:"paymentMethod"`
	StripeSubscriptionID string                      `json:"-"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}

// SnapshotOf copies the plan into a subscription renewing one month after now.
func SnapshotOf(userID string, plan SubscriptionPlan, paymentMethod string, now time.Time) UserSubscription {
	features := make([]string, len(plan.Features))
	copy(features, plan.Features)
	return UserSubscription{
		UserID:        userID,
		PlanID:        plan.ID,
		Name:          plan.Name,
		Price:         plan.Price,
		Currency:      plan.Currency,
		Credits:       plan.Credits,
		Features:      features,
		RenewsOn:      now.AddDate(0, 1, 0),
		PaymentMethod: paymentMethod,
	}
}

// CreditPackage is a bundle of credits sold for real money.
type CreditPackage struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Credits         int64           `json:"credits"`
	Price           decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Bonus           int64           `json:"bonus"`
	BestValue       bool            `json:"bestValue"`
	StripeProductID string          `json:"stripeProductId,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (CreditPackage) TableName() string {
	return "credit_packages"
}

// TotalCredits is what a completed checkout grants.
func (p CreditPackage) TotalCredits() int64 {
	return p.Credits + p.Bonus
}

type PlanUpdate struct {
	Name            *string          `json:"name"`
	Price           *decimal.Decimal `json:"price"`
	Credits         *int64           `json:"credits" binding:"omitempty,min=0"`
	Features        []string         `json:"features"`
	StripeProductID *string          `json:"stripeProductId"`
}

type PackageUpdate struct {
	Credits         *int64           `json:"credits" binding:"omitempty,min=1"`
	Price           *decimal.Decimal `json:"price"`
	Bonus           *int64           `json:"bonus" binding:"omitempty,min=0"`
	BestValue       *bool            `json:"bestValue"`
	StripeProductID *string          `json:"stripeProductId"`
}

type AssignPlan struct {
	PlanID string `json:"planId" binding:"required" example:"plan_basic"`
}
