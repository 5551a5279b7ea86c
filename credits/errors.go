package credits

import "errors"

var (
	ErrInvalidAmount       = errors.New("credits: amount must be positive")
	ErrInsufficientBalance = errors.New("credits: insufficient balance")
	ErrAlreadyUnlocked     = errors.New("credits: item already unlocked")
	ErrPurchaseInFlight    = errors.New("credits: purchase already in progress")
	ErrItemUnavailable     = errors.New("credits: item not found or hidden")
	ErrOwnItem             = errors.New("credits: creators cannot buy their own items")
	ErrInvalidTransition   = errors.New("credits: invalid wallet transition")
	ErrDuplicateCredit     = errors.New("credits: payment already credited")
	ErrInvalidCommission   = errors.New("credits: commission must be between 0 and 1")
)
