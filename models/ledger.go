package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and commissions are sent as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type TransactionType string

const (
	TransactionPurchase       TransactionType = "purchase"
	TransactionReward         TransactionType = "reward"
	TransactionSubscription   TransactionType = "subscription"
	TransactionRefund         TransactionType = "refund"
	TransactionCreditPurchase TransactionType = "credit_purchase"
)

// Transaction is an immutable balance change of one user.
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string          `json:"userId" gorm:"type:uuid;index;not null"`
	Type        TransactionType `json:"type" gorm:"type:varchar(20);not null"`
	Amount      int64           `json:"amount" gorm:"not null"`
	Description string          `json:"description"`
	ContentID   string          `json:"contentId,omitempty"`
	ExternalRef *string         `json:"-" gorm:"uniqueIndex"`
	CreatedAt   time.Time       `json:"timestamp" gorm:"index"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// CreatorTransaction is a sale seen from the seller's side. AmountReceived is
// frozen at sale time; later commission changes never rewrite it.
type CreatorTransaction struct {
	ID             string          `json:"id" gorm:"primaryKey;type:uuid"`
	CreatorID      string          `json:"creatorId" gorm:"type:uuid;index;not null"`
	CardID         string          `json:"cardId" gorm:"type:uuid;not null"`
	CardTitle      string          `json:"cardTitle"`
	BuyerID        string          `json:"buyerId" gorm:"type:uuid;not null"`
	OriginalPrice  int64           `json:"originalPrice"`
	AmountReceived decimal.Decimal `json:"amountReceived" gorm:"type:numeric(24,4);not null"`
	Commission     decimal.Decimal `json:"commission" gorm:"type:numeric(5,4);not null"`
	MediaCount     MediaCount      `json:"mediaCount" gorm:"embedded;embeddedPrefix:media_"`
	CreatedAt      time.Time       `json:"timestamp" gorm:"index"`
}

func (CreatorTransaction) TableName() string {
	return "creator_transactions"
}

// CreatorEarnings is the running total a creator has accrued from sales.
type CreatorEarnings struct {
	CreatorID             string          `json:"creatorId" gorm:"primaryKey;type:uuid"`
	Earned                decimal.Decimal `json:"earned" gorm:"type:numeric(24,4);not null;default:0"`
	WithdrawalAvailableAt time.Time       `json:"withdrawalAvailableAt"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func (CreatorEarnings) TableName() string {
	return "creator_earnings"
}

// Unlock grants UserID permanent access to ContentID.
type Unlock struct {
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	ContentID string    `json:"contentId" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Unlock) TableName() string {
	return "unlocks"
}

type CreditGrant struct {
	Amount int64 `json:"amount" binding:"required,min=1" example:"500"`
}
