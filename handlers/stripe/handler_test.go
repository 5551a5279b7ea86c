package stripe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"funfans-backend/credits"
	"funfans-backend/db"
	"funfans-backend/middleware"
	"funfans-backend/models"
	"funfans-backend/payments"
	"funfans-backend/store"
	"funfans-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

type fixture struct {
	store   *store.MemoryStore
	gateway *payments.FakeGateway
	router  *gin.Engine
	user    models.User
}

func setup(t *testing.T) fixture {
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
	user := models.User{Email: "fan@example.com", Role: models.RoleUser}
	require.NoError(t, s.CreateUser(ctx, &user))

	gw := &payments.FakeGateway{Secret: "whsec_test"}
	svc := payments.NewService(s, credits.NewService(s, nil), gw, "https://app/success", "https://app/cancel")
	h := New(s, svc)

	r := testutils.SetupTestRouter()
	r.GET("/store/packages", h.ListPackages)
	r.GET("/subscriptions/plans", h.ListPlans)
	r.POST("/stripe/webhook", h.Webhook)
	g := r.Group("", middleware.JWTAuth(s))
	g.POST("/store/packages/:id/checkout", h.CheckoutPackage)
	g.POST("/subscriptions", h.Subscribe)
	g.GET("/subscriptions/me", h.CurrentSubscription)
	g.DELETE("/subscriptions/me", h.CancelSubscription)
	return fixture{store: s, gateway: gw, router: r, user: user}
}

func (f fixture) call(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", testutils.AuthHeader(t, f.user))
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func (f fixture) webhook(t *testing.T, ev payments.WebhookEvent, signature string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func TestListCatalog(t *testing.T) {
	f := setup(t)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/packages", nil)
	f.router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	var packages []models.CreditPackage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &packages))
	assert.Len(t, packages, len(db.DefaultPackages()))

	resp = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/subscriptions/plans", nil)
	f.router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "plan_basic")
}

func TestCheckoutPackageThenWebhook(t *testing.T) {
	f := setup(t)
	pkg := db.DefaultPackages()[0]

	resp := f.call(t, http.MethodPost, "/store/packages/"+pkg.ID+"/checkout", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	sessionID := body["sessionId"]
	require.NotEmpty(t, sessionID)
	assert.NotEmpty(t, body["url"])

	user, err := f.store.GetUser(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), user.Balance)

	ev := payments.WebhookEvent{Kind: payments.EventCheckoutCompleted, Type: "checkout.session.completed", SessionID: sessionID, Paid: true}
	assert.Equal(t, http.StatusBadRequest, f.webhook(t, ev, "forged").Code)

	resp = f.webhook(t, ev, f.gateway.Secret)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	resp = f.webhook(t, ev, f.gateway.Secret)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Already processed")

	user, err = f.store.GetUser(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.TotalCredits(), user.Balance)

	assert.Equal(t, http.StatusNotFound, f.call(t, http.MethodPost, "/store/packages/missing/checkout", nil).Code)
}

func TestSubscriptionFlow(t *testing.T) {
	f := setup(t)

	resp := f.call(t, http.MethodGet, "/subscriptions/me", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = f.call(t, http.MethodPost, "/subscriptions", map[string]string{"planId": "plan_free"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"subscription"`)

	resp = f.call(t, http.MethodPost, "/subscriptions", map[string]string{"planId": "plan_basic"})
	require.Equal(t, http.StatusOK, resp.Code)
	var result payments.SubscribeResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotNil(t, result.Checkout)
	assert.Nil(t, result.Subscription)

	resp = f.webhook(t, payments.WebhookEvent{
		Kind: payments.EventCheckoutCompleted, SessionID: result.Checkout.ID, SubscriptionID: "sub_1", Paid: true,
	}, f.gateway.Secret)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = f.call(t, http.MethodGet, "/subscriptions/me", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"planId":"plan_basic"`)

	resp = f.call(t, http.MethodDelete, "/subscriptions/me", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"sub_1"}, f.gateway.Cancelled)

	assert.Equal(t, http.StatusNotFound, f.call(t, http.MethodDelete, "/subscriptions/me", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.call(t, http.MethodPost, "/subscriptions", map[string]string{}).Code)
}
