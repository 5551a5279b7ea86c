package credits

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"funfans-backend/models"
	"funfans-backend/realtime"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.Logger.SetOutput(io.Discard)
	m.Run()
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (p *recordingPublisher) Publish(userID string, ev realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ev.UserID = userID
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

type fixture struct {
	ctx     context.Context
	store   *store.MemoryStore
	svc     *Service
	pub     *recordingPublisher
	buyer   *models.User
	creator *models.User
}

func newFixture(t *testing.T, balance int64) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	pub := &recordingPublisher{}

	buyer := &models.User{Email: "fan@example.com", Role: models.RoleUser, Balance: balance}
	creator := &models.User{Email: "creator@example.com", Role: models.RoleCreator}
	require.NoError(t, s.CreateUser(ctx, buyer))
	require.NoError(t, s.CreateUser(ctx, creator))

	return &fixture{ctx: ctx, store: s, svc: NewService(s, pub), pub: pub, buyer: buyer, creator: creator}
}

func (f *fixture) item(t *testing.T, title string, price int64) *models.ContentItem {
	t.Helper()
	item := &models.ContentItem{
		CreatorID:  f.creator.ID,
		Title:      title,
		Price:      price,
		MediaCount: models.MediaCount{Images: 3, Videos: 1},
	}
	require.NoError(t, f.store.CreateContent(f.ctx, item))
	return item
}

func (f *fixture) balance(t *testing.T, userID string) int64 {
	t.Helper()
	u, err := f.store.GetUser(f.ctx, userID)
	require.NoError(t, err)
	return u.Balance
}

func (f *fixture) setCommission(t *testing.T, c string) {
	t.Helper()
	settings, err := f.store.GetSettings(f.ctx)
	require.NoError(t, err)
	settings.PlatformCommission = decimal.RequireFromString(c)
	require.NoError(t, f.store.SaveSettings(f.ctx, settings))
}

func TestPurchase_InsufficientBalanceMutatesNothing(t *testing.T) {
	f := newFixture(t, 100)
	item := f.item(t, "Sunset set", 150)

	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	assert.Equal(t, int64(100), f.balance(t, f.buyer.ID))
	unlocked, _ := f.store.IsUnlocked(f.ctx, f.buyer.ID, item.ID)
	assert.False(t, unlocked)
	_, err = f.store.GetEarnings(f.ctx, f.creator.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	txs, _ := f.store.ListTransactions(f.ctx, f.buyer.ID)
	assert.Empty(t, txs)
	sales, _ := f.store.ListCreatorTransactions(f.ctx, f.creator.ID)
	assert.Empty(t, sales)
	assert.Equal(t, []string{EventPurchaseRejected}, f.pub.types())
}

func TestPurchase_Success(t *testing.T) {
	f := newFixture(t, 500)
	item := f.item(t, "Sunset set", 200)

	receipt, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), receipt.Balance)
	assert.True(t, receipt.Earnings.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, int64(300), f.balance(t, f.buyer.ID))
	unlocked, _ := f.store.IsUnlocked(f.ctx, f.buyer.ID, item.ID)
	assert.True(t, unlocked)

	earnings, err := f.store.GetEarnings(f.ctx, f.creator.ID)
	require.NoError(t, err)
	assert.True(t, earnings.Earned.Equal(decimal.NewFromInt(100)))

	txs, _ := f.store.ListTransactions(f.ctx, f.buyer.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionPurchase, txs[0].Type)
	assert.Equal(t, int64(-200), txs[0].Amount)
	assert.Equal(t, "Purchase of Sunset set", txs[0].Description)

	sales, _ := f.store.ListCreatorTransactions(f.ctx, f.creator.ID)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(200), sales[0].OriginalPrice)
	assert.True(t, sales[0].AmountReceived.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, f.buyer.ID, sales[0].BuyerID)
	assert.Equal(t, models.MediaCount{Images: 3, Videos: 1}, sales[0].MediaCount)

	assert.Equal(t, []string{EventPurchaseCommitted}, f.pub.types())
}

func TestPurchase_CommissionChangeKeepsHistory(t *testing.T) {
	f := newFixture(t, 1000)
	first := f.item(t, "First", 200)
	second := f.item(t, "Second", 200)

	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, first.ID)
	require.NoError(t, err)

	f.setCommission(t, "0.3")
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, second.ID)
	require.NoError(t, err)

	sales, _ := f.store.ListCreatorTransactions(f.ctx, f.creator.ID)
	require.Len(t, sales, 2)
	byCard := map[string]models.CreatorTransaction{}
	for _, s := range sales {
		byCard[s.CardID] = s
	}
	assert.True(t, byCard[first.ID].AmountReceived.Equal(decimal.NewFromInt(100)))
	assert.True(t, byCard[first.ID].Commission.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, byCard[second.ID].AmountReceived.Equal(decimal.NewFromInt(140)))

	earnings, _ := f.store.GetEarnings(f.ctx, f.creator.ID)
	assert.True(t, earnings.Earned.Equal(decimal.NewFromInt(240)))
}

func TestPurchase_RepeatIsRefused(t *testing.T) {
	f := newFixture(t, 500)
	item := f.item(t, "Card", 200)

	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)

	assert.Equal(t, int64(300), f.balance(t, f.buyer.ID))
	txs, _ := f.store.ListTransactions(f.ctx, f.buyer.ID)
	assert.Len(t, txs, 1)
}

func TestPurchase_ConcurrentDuplicatesChargeOnce(t *testing.T) {
	f := newFixture(t, 1000)
	item := f.item(t, "Card", 100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var successes int
	start := make(chan struct{})
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			assert.True(t, errors.Is(err, ErrPurchaseInFlight) || errors.Is(err, ErrAlreadyUnlocked), err.Error())
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, int64(900), f.balance(t, f.buyer.ID))
}

func TestPurchase_FreeItem(t *testing.T) {
	f := newFixture(t, 0)
	item := f.item(t, "Teaser", 0)

	receipt, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), receipt.Balance)
	assert.True(t, receipt.Earnings.IsZero())

	unlocked, _ := f.store.IsUnlocked(f.ctx, f.buyer.ID, item.ID)
	assert.True(t, unlocked)
	txs, _ := f.store.ListTransactions(f.ctx, f.buyer.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(0), txs[0].Amount)
}

func TestPurchase_Refusals(t *testing.T) {
	f := newFixture(t, 1000)
	hidden := f.item(t, "Hidden", 10)
	require.NoError(t, f.store.SetContentHidden(f.ctx, hidden.ID, true))
	own := &models.ContentItem{CreatorID: f.buyer.ID, Title: "Mine", Price: 10}
	require.NoError(t, f.store.CreateContent(f.ctx, own))

	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, hidden.ID)
	assert.ErrorIs(t, err, ErrItemUnavailable)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, "missing")
	assert.ErrorIs(t, err, ErrItemUnavailable)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, own.ID)
	assert.ErrorIs(t, err, ErrOwnItem)

	assert.Equal(t, int64(1000), f.balance(t, f.buyer.ID))
}

func TestBalanceEqualsSumOfTransactions(t *testing.T) {
	f := newFixture(t, 0)
	a := f.item(t, "A", 120)
	b := f.item(t, "B", 75)

	_, err := f.svc.Reward(f.ctx, f.buyer.ID)
	require.NoError(t, err)
	_, err = f.svc.AdminGrant(f.ctx, f.buyer.ID, 250)
	require.NoError(t, err)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, a.ID)
	require.NoError(t, err)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, b.ID)
	require.NoError(t, err)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, b.ID)
	require.Error(t, err)

	txs, err := f.store.ListTransactions(f.ctx, f.buyer.ID)
	require.NoError(t, err)
	var sum int64
	for _, tx := range txs {
		sum += tx.Amount
	}
	assert.Equal(t, f.balance(t, f.buyer.ID), sum)
	assert.Equal(t, int64(155), sum)
}

func TestCredit_ExternalRefIsIdempotent(t *testing.T) {
	f := newFixture(t, 0)
	req := CreditRequest{
		UserID:      f.buyer.ID,
		Amount:      500,
		Type:        models.TransactionCreditPurchase,
		Description: "Purchase of 500 credits",
		ExternalRef: "cs_test_123",
	}

	grant, err := f.svc.Credit(f.ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(500), grant.Balance)

	_, err = f.svc.Credit(f.ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateCredit)
	assert.Equal(t, int64(500), f.balance(t, f.buyer.ID))
	assert.Equal(t, []string{EventCreditGranted}, f.pub.types())
}

func TestCredit_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.svc.Credit(f.ctx, CreditRequest{UserID: f.buyer.ID, Amount: 0, Type: models.TransactionReward})
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = f.svc.AdminGrant(f.ctx, f.buyer.ID, -20)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, int64(10), f.balance(t, f.buyer.ID))
}

func TestAdminGrantDescription(t *testing.T) {
	f := newFixture(t, 0)

	grant, err := f.svc.AdminGrant(f.ctx, f.buyer.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCreditPurchase, grant.Transaction.Type)
	assert.Equal(t, "Admin grant for user "+f.buyer.ID, grant.Transaction.Description)
}

func TestPayouts(t *testing.T) {
	f := newFixture(t, 1000)
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	f.store.SetClock(func() time.Time { return start })
	f.svc.now = func() time.Time { return start }

	summary, err := f.svc.Payouts(f.ctx, f.creator.ID)
	require.NoError(t, err)
	assert.True(t, summary.Earned.IsZero())
	assert.Nil(t, summary.WithdrawalAvailableAt)
	assert.False(t, summary.CanWithdraw)

	item := f.item(t, "Card", 400)
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)

	summary, err = f.svc.Payouts(f.ctx, f.creator.ID)
	require.NoError(t, err)
	assert.True(t, summary.Earned.Equal(decimal.NewFromInt(200)))
	assert.True(t, summary.EarnedUSD.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, summary.WithdrawalAvailableAt)
	assert.Equal(t, start.Add(24*time.Hour), *summary.WithdrawalAvailableAt)
	assert.False(t, summary.CanWithdraw)
	assert.Len(t, summary.Transactions, 1)

	f.svc.now = func() time.Time { return start.Add(25 * time.Hour) }
	summary, err = f.svc.Payouts(f.ctx, f.creator.ID)
	require.NoError(t, err)
	assert.True(t, summary.CanWithdraw)
}

func TestWallet_Loaded(t *testing.T) {
	f := newFixture(t, 500)
	item := f.item(t, "Card", 200)
	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)

	w, err := f.svc.Wallet(f.ctx, f.buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), w.Balance)
	assert.Equal(t, Unlocked, w.State(item.ID))
}

// unlockFailingStore fails every GrantUnlock, including inside transactions.
type unlockFailingStore struct {
	store.Store
}

func (f unlockFailingStore) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.InTx(ctx, func(tx store.Store) error {
		return fn(unlockFailingStore{tx})
	})
}

func (unlockFailingStore) GrantUnlock(context.Context, string, string) error {
	return errors.New("unlocks table unavailable")
}

func TestPurchase_FailureAfterDebitRollsBackAndRejects(t *testing.T) {
	f := newFixture(t, 500)
	item := f.item(t, "Sunset set", 200)
	svc := NewService(unlockFailingStore{f.store}, f.pub)

	_, err := svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.Error(t, err)

	assert.Equal(t, int64(500), f.balance(t, f.buyer.ID))
	txs, _ := f.store.ListTransactions(f.ctx, f.buyer.ID)
	assert.Empty(t, txs)
	sales, _ := f.store.ListCreatorTransactions(f.ctx, f.creator.ID)
	assert.Empty(t, sales)
	_, err = f.store.GetEarnings(f.ctx, f.creator.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.Equal(t, []string{EventPurchaseRejected}, f.pub.types())
	payload, ok := f.pub.events[0].Payload.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, string(Locked), payload["state"])
	assert.Equal(t, item.ID, payload["itemId"])

	// The item can be bought once the store recovers.
	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)
}

func TestPurchase_RejectionReportsItemState(t *testing.T) {
	f := newFixture(t, 500)
	item := f.item(t, "Sunset set", 200)
	_, err := f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	require.NoError(t, err)

	_, err = f.svc.Purchase(f.ctx, f.buyer.ID, item.ID)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)

	require.Len(t, f.pub.events, 2)
	payload := f.pub.events[1].Payload.(map[string]string)
	assert.Equal(t, string(Unlocked), payload["state"])
}
