package credits

import "fmt"

type ActionType string

const (
	ActionCreditGranted     ActionType = "CREDIT_GRANTED"
	ActionPurchaseRequested ActionType = "PURCHASE_REQUESTED"
	ActionPurchaseCommitted ActionType = "PURCHASE_COMMITTED"
	ActionPurchaseRejected  ActionType = "PURCHASE_REJECTED"
)

// Action is an input to Wallet.Apply. ItemID and Price are set for purchase
// actions, Amount for credit grants.
type Action struct {
	Type   ActionType
	ItemID string
	Price  int64
	Amount int64
}

func CreditGranted(amount int64) Action {
	return Action{Type: ActionCreditGranted, Amount: amount}
}

func PurchaseRequested(itemID string, price int64) Action {
	return Action{Type: ActionPurchaseRequested, ItemID: itemID, Price: price}
}

func PurchaseCommitted(itemID string, price int64) Action {
	return Action{Type: ActionPurchaseCommitted, ItemID: itemID, Price: price}
}

func PurchaseRejected(itemID string) Action {
	return Action{Type: ActionPurchaseRejected, ItemID: itemID}
}

type ItemState string

const (
	Locked    ItemState = "locked"
	Unlocking ItemState = "unlocking"
	Unlocked  ItemState = "unlocked"
)

// Wallet is the credit state of one user. It is a value: Apply never mutates
// the receiver and returns the next state instead.
type Wallet struct {
	Balance int64
	items   map[string]ItemState
}

func NewWallet(balance int64, unlocked ...string) Wallet {
	w := Wallet{Balance: balance, items: make(map[string]ItemState, len(unlocked))}
	for _, id := range unlocked {
		w.items[id] = Unlocked
	}
	return w
}

// State reports where itemID stands for this wallet. Unknown items are Locked.
func (w Wallet) State(itemID string) ItemState {
	if s, ok := w.items[itemID]; ok {
		return s
	}
	return Locked
}

// Unlocked lists the items the wallet owns, in no particular order.
func (w Wallet) Unlocked() []string {
	out := make([]string, 0, len(w.items))
	for id, s := range w.items {
		if s == Unlocked {
			out = append(out, id)
		}
	}
	return out
}

func (w Wallet) clone() Wallet {
	items := make(map[string]ItemState, len(w.items)+1)
	for id, st := range w.items {
		items[id] = st
	}
	return Wallet{Balance: w.Balance, items: items}
}

func (w Wallet) with(itemID string, s ItemState) Wallet {
	next := w.clone()
	if s == Locked {
		delete(next.items, itemID)
	} else {
		next.items[itemID] = s
	}
	return next
}

// Apply returns the wallet after a. On error the receiver is returned
// unchanged together with the reason.
func (w Wallet) Apply(a Action) (Wallet, error) {
	switch a.Type {
	case ActionCreditGranted:
		if a.Amount <= 0 {
			return w, ErrInvalidAmount
		}
		next := w.clone()
		next.Balance += a.Amount
		return next, nil

	case ActionPurchaseRequested:
		if a.Price < 0 {
			return w, ErrInvalidAmount
		}
		switch w.State(a.ItemID) {
		case Unlocked:
			return w, ErrAlreadyUnlocked
		case Unlocking:
			return w, ErrPurchaseInFlight
		}
		if w.Balance < a.Price {
			return w, ErrInsufficientBalance
		}
		return w.with(a.ItemID, Unlocking), nil

	case ActionPurchaseCommitted:
		if w.State(a.ItemID) != Unlocking {
			return w, fmt.Errorf("%w: commit of %s item %s", ErrInvalidTransition, w.State(a.ItemID), a.ItemID)
		}
		if w.Balance < a.Price {
			return w, ErrInsufficientBalance
		}
		next := w.with(a.ItemID, Unlocked)
		next.Balance -= a.Price
		return next, nil

	case ActionPurchaseRejected:
		if w.State(a.ItemID) != Unlocking {
			return w, fmt.Errorf("%w: reject of %s item %s", ErrInvalidTransition, w.State(a.ItemID), a.ItemID)
		}
		return w.with(a.ItemID, Locked), nil
	}
	return w, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, a.Type)
}
