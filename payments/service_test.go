package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"funfans-backend/credits"
	"funfans-backend/db"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.Logger.SetOutput(io.Discard)
	m.Run()
}

type fixture struct {
	ctx     context.Context
	store   *store.MemoryStore
	gateway *FakeGateway
	svc     *Service
	user    *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	for _, p := range db.DefaultPlans() {
		p := p
		require.NoError(t, s.SavePlan(ctx, &p))
	}
	for _, p := range db.DefaultPackages() {
		p := p
		require.NoError(t, s.SavePackage(ctx, &p))
	}
	user := &models.User{Email: "fan@example.com", Role: models.RoleUser}
	require.NoError(t, s.CreateUser(ctx, user))

	gw := &FakeGateway{Secret: "whsec_test"}
	svc := NewService(s, credits.NewService(s, nil), gw, "https://app/success", "https://app/cancel")
	return &fixture{ctx: ctx, store: s, gateway: gw, svc: svc, user: user}
}

func (f *fixture) webhook(t *testing.T, ev WebhookEvent) error {
	t.Helper()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	_, err = f.svc.HandleWebhook(f.ctx, payload, f.gateway.Secret)
	return err
}

func (f *fixture) balance(t *testing.T) int64 {
	t.Helper()
	u, err := f.store.GetUser(f.ctx, f.user.ID)
	require.NoError(t, err)
	return u.Balance
}

func TestCheckoutPackage_CreditsOnlyAfterWebhook(t *testing.T) {
	f := newFixture(t)

	cs, err := f.svc.CheckoutPackage(f.ctx, f.user.ID, "pkg2")
	require.NoError(t, err)
	assert.Equal(t, models.CheckoutPending, cs.Status)
	assert.Equal(t, int64(0), f.balance(t))
	require.Len(t, f.gateway.Checkouts, 1)
	assert.False(t, f.gateway.Checkouts[0].Recurring)
	assert.Equal(t, "prod_SyYeStqRDuWGFF", f.gateway.Checkouts[0].ProductID)

	u, _ := f.store.GetUser(f.ctx, f.user.ID)
	assert.Equal(t, "cus_"+f.user.ID, u.StripeCustomerID)

	require.NoError(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutCompleted, SessionID: cs.ID, Paid: true}))
	assert.Equal(t, int64(500), f.balance(t))

	txs, _ := f.store.ListTransactions(f.ctx, f.user.ID)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionCreditPurchase, txs[0].Type)
	assert.Equal(t, "Purchase of 500 credits", txs[0].Description)
}

func TestWebhook_ReplayDoesNotCreditTwice(t *testing.T) {
	f := newFixture(t)
	cs, err := f.svc.CheckoutPackage(f.ctx, f.user.ID, "pkg1")
	require.NoError(t, err)

	ev := WebhookEvent{Kind: EventCheckoutCompleted, SessionID: cs.ID, Paid: true}
	require.NoError(t, f.webhook(t, ev))
	assert.ErrorIs(t, f.webhook(t, ev), ErrAlreadyProcessed)
	assert.Equal(t, int64(200), f.balance(t))
}

func TestWebhook_BadSignature(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.HandleWebhook(f.ctx, []byte(`{}`), "forged")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestWebhook_UnpaidCompletionWaits(t *testing.T) {
	f := newFixture(t)
	cs, err := f.svc.CheckoutPackage(f.ctx, f.user.ID, "pkg1")
	require.NoError(t, err)

	require.NoError(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutCompleted, SessionID: cs.ID}))
	assert.Equal(t, int64(0), f.balance(t))
	stored, _ := f.store.GetCheckoutSession(f.ctx, cs.ID)
	assert.Equal(t, models.CheckoutPending, stored.Status)
}

func TestWebhook_ExpiredSession(t *testing.T) {
	f := newFixture(t)
	cs, err := f.svc.CheckoutPackage(f.ctx, f.user.ID, "pkg1")
	require.NoError(t, err)

	require.NoError(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutExpired, SessionID: cs.ID}))
	stored, _ := f.store.GetCheckoutSession(f.ctx, cs.ID)
	assert.Equal(t, models.CheckoutExpired, stored.Status)

	assert.ErrorIs(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutCompleted, SessionID: cs.ID, Paid: true}), ErrAlreadyProcessed)
	assert.Equal(t, int64(0), f.balance(t))
}

func TestSubscribe_FreePlanAppliesDirectly(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Subscribe(f.ctx, f.user.ID, "plan_free")
	require.NoError(t, err)
	require.NotNil(t, res.Subscription)
	assert.Nil(t, res.Checkout)
	assert.Empty(t, f.gateway.Checkouts)

	sub, err := f.store.GetUserSubscription(f.ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "plan_free", sub.PlanID)
	assert.Equal(t, []string{"Access to public content", "Follow creators"}, []string(sub.Features))
}

func TestSubscribe_PaidPlanThroughCheckout(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Subscribe(f.ctx, f.user.ID, "plan_basic")
	require.NoError(t, err)
	require.NotNil(t, res.Checkout)
	assert.True(t, f.gateway.Checkouts[0].Recurring)

	_, err = f.store.GetUserSubscription(f.ctx, f.user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutCompleted, SessionID: res.Checkout.ID, SubscriptionID: "sub_123", Paid: true}))

	sub, err := f.store.GetUserSubscription(f.ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "plan_basic", sub.PlanID)
	assert.Equal(t, "sub_123", sub.StripeSubscriptionID)
	assert.Equal(t, int64(1000), f.balance(t))
}

func TestCancel_CancelsOnGatewayFirst(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.Subscribe(f.ctx, f.user.ID, "plan_pro")
	require.NoError(t, err)
	require.NoError(t, f.webhook(t, WebhookEvent{Kind: EventCheckoutCompleted, SessionID: res.Checkout.ID, SubscriptionID: "sub_pro", Paid: true}))

	f.gateway.Err = errors.New("stripe down")
	assert.Error(t, f.svc.Cancel(f.ctx, f.user.ID))
	_, err = f.store.GetUserSubscription(f.ctx, f.user.ID)
	require.NoError(t, err, "subscription must survive a gateway failure")

	f.gateway.Err = nil
	require.NoError(t, f.svc.Cancel(f.ctx, f.user.ID))
	assert.Equal(t, []string{"sub_pro"}, f.gateway.Cancelled)
	_, err = f.store.GetUserSubscription(f.ctx, f.user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	txs, _ := f.store.ListTransactions(f.ctx, f.user.ID)
	assert.Equal(t, "Cancelled Pro plan", txs[0].Description)
	assert.Equal(t, int64(0), txs[0].Amount)

	assert.ErrorIs(t, f.svc.Cancel(f.ctx, f.user.ID), ErrNoSubscription)
}

func TestAssignPlan_LastWriterWins(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AssignPlan(f.ctx, f.user.ID, "plan_basic")
	require.NoError(t, err)
	_, err = f.svc.AssignPlan(f.ctx, f.user.ID, "plan_vip")
	require.NoError(t, err)

	sub, err := f.store.GetUserSubscription(f.ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "plan_vip", sub.PlanID)
	assert.Equal(t, "admin", sub.PaymentMethod)
	assert.Equal(t, int64(0), f.balance(t))

	_, err = f.svc.AssignPlan(f.ctx, "ghost", "plan_vip")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDisabledGateway(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.store, credits.NewService(f.store, nil), nil, "", "")

	_, err := svc.CheckoutPackage(f.ctx, f.user.ID, "pkg1")
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = svc.HandleWebhook(f.ctx, nil, "")
	assert.ErrorIs(t, err, ErrDisabled)

	res, err := svc.Subscribe(f.ctx, f.user.ID, "plan_free")
	require.NoError(t, err)
	assert.NotNil(t, res.Subscription)
}
