// Package payments sells credit packages and subscription plans through an
// external checkout and applies the confirmed payments to the ledger.
package payments

import (
	"context"
	"errors"

	"funfans-backend/models"

	"github.com/shopspring/decimal"
)

var (
	ErrDisabled         = errors.New("payments: gateway not configured")
	ErrInvalidSignature = errors.New("payments: webhook signature verification failed")
	ErrAlreadyProcessed = errors.New("payments: checkout already processed")
	ErrNoSubscription   = errors.New("payments: no active subscription")
)

// CheckoutRequest is a single line checkout for one user.
type CheckoutRequest struct {
	UserID     string
	Email      string
	CustomerID string
	Kind       models.CheckoutKind
	Reference  string
	Name       string
	ProductID  string
	Price      decimal.Decimal
	Currency   string
	// Recurring bills the price monthly.
	Recurring  bool
	SuccessURL string
	CancelURL  string
}

type CheckoutResult struct {
	SessionID  string
	URL        string
	CustomerID string
}

type EventKind string

const (
	EventCheckoutCompleted EventKind = "checkout.session.completed"
	EventCheckoutExpired   EventKind = "checkout.session.expired"
	EventIgnored           EventKind = "ignored"
)

// WebhookEvent is a verified gateway notification reduced to what the ledger
// needs.
type WebhookEvent struct {
	Kind           EventKind
	Type           string
	SessionID      string
	SubscriptionID string
	Paid           bool
}

// Gateway is the payment provider.
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
