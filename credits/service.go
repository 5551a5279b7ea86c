// Package credits owns every balance change: credit grants, the purchase of
// content and the creator earnings that purchases accrue.
package credits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"funfans-backend/models"
	"funfans-backend/realtime"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/shopspring/decimal"
)

// RewardAmount is credited for each completed ad reward.
const RewardAmount int64 = 100

const (
	EventCreditGranted     = "credit.granted"
	EventPurchaseCommitted = "purchase.committed"
	EventPurchaseRejected  = "purchase.rejected"
)

// Publisher receives ledger events once they are durable.
type Publisher interface {
	Publish(userID string, ev realtime.Event)
}

type Service struct {
	store store.Store
	pub   Publisher
	guard Guard
	now   func() time.Time
}

func NewService(s store.Store, pub Publisher) *Service {
	return &Service{store: s, pub: pub, now: time.Now}
}

func (s *Service) publish(userID, kind string, payload interface{}) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(userID, realtime.Event{Type: kind, Payload: payload, At: s.now()})
}

// Receipt describes a committed purchase.
type Receipt struct {
	ItemID      string             `json:"itemId"`
	Price       int64              `json:"price"`
	Balance     int64              `json:"balance"`
	Commission  decimal.Decimal    `json:"commission"`
	Earnings    decimal.Decimal    `json:"creatorEarnings"`
	Transaction models.Transaction `json:"transaction"`
}

// Purchase debits buyerID by the item price, credits the creator with the
// commission-adjusted earnings and unlocks the item, all in one transaction.
// Nothing is written when any step fails.
func (s *Service) Purchase(ctx context.Context, buyerID, itemID string) (*Receipt, error) {
	release, ok := s.guard.Acquire(buyerID, itemID)
	if !ok {
		s.publish(buyerID, EventPurchaseRejected, rejection(itemID, Unlocking, ErrPurchaseInFlight))
		return nil, ErrPurchaseInFlight
	}
	defer release()

	var (
		receipt *Receipt
		wallet  Wallet
	)
	err := s.store.InTx(ctx, func(tx store.Store) error {
		r, err := s.purchase(ctx, tx, buyerID, itemID, &wallet)
		receipt = r
		return err
	})
	if err != nil {
		s.publish(buyerID, EventPurchaseRejected, rejection(itemID, s.reject(buyerID, itemID, wallet), err))
		return nil, err
	}

	s.publish(buyerID, EventPurchaseCommitted, receipt)
	return receipt, nil
}

// reject rolls an in-flight item back to Locked after the transaction failed
// and returns the state the item ends in.
func (s *Service) reject(buyerID, itemID string, w Wallet) ItemState {
	if w.State(itemID) != Unlocking {
		return w.State(itemID)
	}
	next, err := w.Apply(PurchaseRejected(itemID))
	if err != nil {
		utils.LogErrorWithUser(buyerID, err, "Error rejecting purchase of "+itemID)
		return w.State(itemID)
	}
	return next.State(itemID)
}

func rejection(itemID string, state ItemState, err error) map[string]string {
	return map[string]string{"itemId": itemID, "state": string(state), "reason": err.Error()}
}

// purchase runs the purchase steps inside tx. w tracks the buyer's wallet so
// the caller can settle the item state when the transaction fails.
func (s *Service) purchase(ctx context.Context, tx store.Store, buyerID, itemID string, w *Wallet) (*Receipt, error) {
	buyer, err := tx.GetUser(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("load buyer: %w", err)
	}
	item, err := tx.GetContent(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item.IsHidden {
		return nil, ErrItemUnavailable
	}
	if item.CreatorID == buyerID {
		return nil, ErrOwnItem
	}
	settings, err := tx.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	unlocked, err := tx.IsUnlocked(ctx, buyerID, itemID)
	if err != nil {
		return nil, fmt.Errorf("check unlock: %w", err)
	}
	wallet := NewWallet(buyer.Balance)
	if unlocked {
		wallet = NewWallet(buyer.Balance, itemID)
	}
	*w = wallet
	wallet, err = wallet.Apply(PurchaseRequested(itemID, item.Price))
	if err != nil {
		return nil, err
	}
	*w = wallet

	commission := settings.PlatformCommission
	earnings := Earnings(item.Price, commission)

	balance, err := tx.AdjustBalance(ctx, buyerID, -item.Price)
	if errors.Is(err, store.ErrInsufficientBalance) {
		return nil, ErrInsufficientBalance
	}
	if err != nil {
		return nil, fmt.Errorf("debit buyer: %w", err)
	}

	record := models.Transaction{
		UserID:      buyerID,
		Type:        models.TransactionPurchase,
		Amount:      -item.Price,
		Description: "Purchase of " + item.Title,
		ContentID:   item.ID,
		CreatedAt:   s.now(),
	}
	if err := tx.AppendTransaction(ctx, &record); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}

	if _, err := tx.AccrueEarnings(ctx, item.CreatorID, earnings, settings.WithdrawalCooldown()); err != nil {
		return nil, fmt.Errorf("accrue earnings: %w", err)
	}
	sale := models.CreatorTransaction{
		CreatorID:      item.CreatorID,
		CardID:         item.ID,
		CardTitle:      item.Title,
		BuyerID:        buyerID,
		OriginalPrice:  item.Price,
		AmountReceived: earnings,
		Commission:     commission,
		MediaCount:     item.MediaCount,
		CreatedAt:      record.CreatedAt,
	}
	if err := tx.AppendCreatorTransaction(ctx, &sale); err != nil {
		return nil, fmt.Errorf("append creator transaction: %w", err)
	}

	if err := tx.GrantUnlock(ctx, buyerID, itemID); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyUnlocked
		}
		return nil, fmt.Errorf("grant unlock: %w", err)
	}

	wallet, err = wallet.Apply(PurchaseCommitted(itemID, item.Price))
	if err != nil {
		return nil, err
	}
	if wallet.Balance != balance {
		return nil, fmt.Errorf("%w: balance drifted to %d, expected %d", ErrInvalidTransition, balance, wallet.Balance)
	}
	*w = wallet

	utils.LogSuccessWithUser(buyerID, fmt.Sprintf("Purchased %s for %d credits", itemID, item.Price))
	return &Receipt{
		ItemID:      itemID,
		Price:       item.Price,
		Balance:     balance,
		Commission:  commission,
		Earnings:    earnings,
		Transaction: record,
	}, nil
}

// CreditRequest describes a balance increase. ExternalRef, when set, makes
// the grant idempotent: a second credit with the same ref is refused.
type CreditRequest struct {
	UserID      string
	Amount      int64
	Type        models.TransactionType
	Description string
	ExternalRef string
}

// Grant is a committed credit and the balance it produced.
type Grant struct {
	Transaction models.Transaction `json:"transaction"`
	Balance     int64              `json:"balance"`
}

// Credit adds credits to a user and records the transaction.
func (s *Service) Credit(ctx context.Context, req CreditRequest) (*Grant, error) {
	var grant *Grant
	err := s.store.InTx(ctx, func(tx store.Store) error {
		g, err := s.CreditTx(ctx, tx, req)
		grant = g
		return err
	})
	if err != nil {
		return nil, err
	}
	s.PublishGrant(req.UserID, grant)
	return grant, nil
}

// PublishGrant announces a committed grant on the user's realtime channel.
func (s *Service) PublishGrant(userID string, g *Grant) {
	s.publish(userID, EventCreditGranted, g)
}

// CreditTx is Credit inside a transaction owned by the caller, who must call
// PublishGrant once the transaction has committed.
func (s *Service) CreditTx(ctx context.Context, tx store.Store, req CreditRequest) (*Grant, error) {
	user, err := tx.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	wallet, err := NewWallet(user.Balance).Apply(CreditGranted(req.Amount))
	if err != nil {
		return nil, err
	}

	balance, err := tx.AdjustBalance(ctx, req.UserID, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("credit user: %w", err)
	}
	if balance != wallet.Balance {
		return nil, fmt.Errorf("%w: balance drifted to %d, expected %d", ErrInvalidTransition, balance, wallet.Balance)
	}

	record := models.Transaction{
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	if req.ExternalRef != "" {
		ref := req.ExternalRef
		record.ExternalRef = &ref
	}
	if err := tx.AppendTransaction(ctx, &record); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrDuplicateCredit
		}
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	return &Grant{Transaction: record, Balance: balance}, nil
}

// Record appends a zero-amount entry to the log, used for events such as a
// subscription cancellation that do not move credits.
func (s *Service) Record(ctx context.Context, tx store.Store, userID string, kind models.TransactionType, description string) (*models.Transaction, error) {
	record := &models.Transaction{
		UserID:      userID,
		Type:        kind,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := tx.AppendTransaction(ctx, record); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	return record, nil
}

func (s *Service) Reward(ctx context.Context, userID string) (*Grant, error) {
	return s.Credit(ctx, CreditRequest{
		UserID:      userID,
		Amount:      RewardAmount,
		Type:        models.TransactionReward,
		Description: "Ad reward",
	})
}

func (s *Service) AdminGrant(ctx context.Context, userID string, amount int64) (*Grant, error) {
	return s.Credit(ctx, CreditRequest{
		UserID:      userID,
		Amount:      amount,
		Type:        models.TransactionCreditPurchase,
		Description: "Admin grant for user " + userID,
	})
}

// Wallet loads the current wallet of userID.
func (s *Service) Wallet(ctx context.Context, userID string) (Wallet, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return Wallet{}, err
	}
	unlocked, err := s.store.ListUnlocked(ctx, userID)
	if err != nil {
		return Wallet{}, err
	}
	return NewWallet(user.Balance, unlocked...), nil
}

// PayoutSummary is what a creator sees on the payouts page.
type PayoutSummary struct {
	Earned                decimal.Decimal             `json:"earned"`
	EarnedUSD             decimal.Decimal             `json:"earnedUSD"`
	Commission            decimal.Decimal             `json:"commission"`
	CreditValueUSD        decimal.Decimal             `json:"creditValueUSD"`
	WithdrawalAvailableAt *time.Time                  `json:"withdrawalAvailableAt"`
	CanWithdraw           bool                        `json:"canWithdraw"`
	Transactions          []models.CreatorTransaction `json:"transactions"`
}

func (s *Service) Payouts(ctx context.Context, creatorID string) (*PayoutSummary, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	txs, err := s.store.ListCreatorTransactions(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("load creator transactions: %w", err)
	}

	summary := &PayoutSummary{
		Earned:         decimal.Zero,
		EarnedUSD:      decimal.Zero,
		Commission:     settings.PlatformCommission,
		CreditValueUSD: settings.CreditValueUSD,
		Transactions:   txs,
	}
	earnings, err := s.store.GetEarnings(ctx, creatorID)
	if errors.Is(err, store.ErrNotFound) {
		return summary, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load earnings: %w", err)
	}

	summary.Earned = earnings.Earned
	summary.EarnedUSD = earnings.Earned.Mul(settings.CreditValueUSD)
	available := earnings.WithdrawalAvailableAt
	summary.WithdrawalAvailableAt = &available
	summary.CanWithdraw = earnings.Earned.IsPositive() && !s.now().Before(available)
	return summary, nil
}
