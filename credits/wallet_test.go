package credits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_PurchaseLifecycle(t *testing.T) {
	w := NewWallet(500)
	assert.Equal(t, Locked, w.State("item"))

	requested, err := w.Apply(PurchaseRequested("item", 200))
	require.NoError(t, err)
	assert.Equal(t, Unlocking, requested.State("item"))
	assert.Equal(t, int64(500), requested.Balance)
	assert.Equal(t, Locked, w.State("item"), "Apply must not mutate the receiver")

	committed, err := requested.Apply(PurchaseCommitted("item", 200))
	require.NoError(t, err)
	assert.Equal(t, Unlocked, committed.State("item"))
	assert.Equal(t, int64(300), committed.Balance)
	assert.Equal(t, []string{"item"}, committed.Unlocked())
}

func TestWallet_InsufficientBalanceStaysLocked(t *testing.T) {
	w := NewWallet(100)

	next, err := w.Apply(PurchaseRequested("item", 150))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, Locked, next.State("item"))
	assert.Equal(t, int64(100), next.Balance)
}

func TestWallet_UnlockedIsTerminal(t *testing.T) {
	w := NewWallet(1000, "item")

	_, err := w.Apply(PurchaseRequested("item", 10))
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)

	_, err = w.Apply(PurchaseRejected("item"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, Unlocked, w.State("item"))
}

func TestWallet_SecondRequestWhileUnlocking(t *testing.T) {
	w, err := NewWallet(1000).Apply(PurchaseRequested("item", 10))
	require.NoError(t, err)

	_, err = w.Apply(PurchaseRequested("item", 10))
	assert.ErrorIs(t, err, ErrPurchaseInFlight)
}

func TestWallet_RejectReturnsToLocked(t *testing.T) {
	w, err := NewWallet(1000).Apply(PurchaseRequested("item", 10))
	require.NoError(t, err)

	w, err = w.Apply(PurchaseRejected("item"))
	require.NoError(t, err)
	assert.Equal(t, Locked, w.State("item"))
	assert.Equal(t, int64(1000), w.Balance)
}

func TestWallet_CommitWithoutRequest(t *testing.T) {
	_, err := NewWallet(1000).Apply(PurchaseCommitted("item", 10))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWallet_FreeItem(t *testing.T) {
	w, err := NewWallet(0).Apply(PurchaseRequested("free", 0))
	require.NoError(t, err)
	w, err = w.Apply(PurchaseCommitted("free", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Balance)
	assert.Equal(t, Unlocked, w.State("free"))
}

func TestWallet_CreditGranted(t *testing.T) {
	w, err := NewWallet(10).Apply(CreditGranted(90))
	require.NoError(t, err)
	assert.Equal(t, int64(100), w.Balance)

	for _, amount := range []int64{0, -5} {
		_, err := w.Apply(CreditGranted(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestWallet_UnknownAction(t *testing.T) {
	_, err := NewWallet(0).Apply(Action{Type: "REFUND_ISSUED"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
