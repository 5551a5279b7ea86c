package purchases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"funfans-backend/access"
	"funfans-backend/credits"
	"funfans-backend/middleware"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func setup(t *testing.T) (*store.MemoryStore, *gin.Engine) {
	t.Helper()
	s := store.NewMemoryStore()
	h := New(s, credits.NewService(s, nil))

	r := testutils.SetupTestRouter()
	g := r.Group("", middleware.JWTAuth(s))
	g.POST("/content/:id/purchase", h.Purchase)
	g.GET("/wallet", h.Wallet)
	g.GET("/transactions", h.Transactions)
	g.GET("/purchases", h.MyPurchases)
	g.POST("/rewards", middleware.RequireCapability(s, access.EarnCredits), h.Reward)
	g.GET("/payouts", middleware.RequireCapability(s, access.CreatorPayouts), h.Payouts)
	g.GET("/capabilities", h.Capabilities)
	return s, r
}

func seed(t *testing.T, s store.Store, email string, role models.Role, balance int64) models.User {
	t.Helper()
	u := models.User{Email: email, Role: role}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	if balance > 0 {
		_, err := s.AdjustBalance(context.Background(), u.ID, balance)
		require.NoError(t, err)
	}
	return u
}

func call(t *testing.T, r *gin.Engine, method, path string, user models.User) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("Authorization", testutils.AuthHeader(t, user))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPurchase(t *testing.T) {
	s, r := setup(t)
	creator := seed(t, s, "creator@example.com", models.RoleCreator, 0)
	fan := seed(t, s, "fan@example.com", models.RoleUser, 500)
	poor := seed(t, s, "poor@example.com", models.RoleUser, 100)
	item := models.ContentItem{CreatorID: creator.ID, Title: "Set", Price: 200}
	require.NoError(t, s.CreateContent(context.Background(), &item))
	expensive := models.ContentItem{CreatorID: creator.ID, Title: "Gold", Price: 150}
	require.NoError(t, s.CreateContent(context.Background(), &expensive))

	resp := call(t, r, http.MethodPost, "/content/"+item.ID+"/purchase", fan)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var receipt credits.Receipt
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &receipt))
	assert.Equal(t, int64(300), receipt.Balance)
	assert.True(t, decimal.NewFromInt(100).Equal(receipt.Earnings))

	assert.Equal(t, http.StatusConflict, call(t, r, http.MethodPost, "/content/"+item.ID+"/purchase", fan).Code)
	assert.Equal(t, http.StatusPaymentRequired, call(t, r, http.MethodPost, "/content/"+expensive.ID+"/purchase", poor).Code)
	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodPost, "/content/"+item.ID+"/purchase", creator).Code)
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodPost, "/content/missing/purchase", fan).Code)

	resp = call(t, r, http.MethodGet, "/wallet", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"balance":300,"unlockedContent":["`+item.ID+`"]}`, resp.Body.String())

	resp = call(t, r, http.MethodGet, "/purchases", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"title":"Set"`)

	resp = call(t, r, http.MethodGet, "/transactions", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Purchase of Set")

	resp = call(t, r, http.MethodGet, "/payouts", creator)
	require.Equal(t, http.StatusOK, resp.Code)
	var summary credits.PayoutSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summary))
	assert.True(t, decimal.NewFromInt(100).Equal(summary.Earned))
	assert.True(t, decimal.NewFromInt(1).Equal(summary.EarnedUSD))
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, int64(200), summary.Transactions[0].OriginalPrice)

	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodGet, "/payouts", fan).Code)
}

func TestReward(t *testing.T) {
	s, r := setup(t)
	fan := seed(t, s, "fan@example.com", models.RoleUser, 0)

	resp := call(t, r, http.MethodPost, "/rewards", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"balance":100`)

	settings, err := s.GetSettings(context.Background())
	require.NoError(t, err)
	settings.Sidebar.EarnCredits = false
	require.NoError(t, s.SaveSettings(context.Background(), settings))

	assert.Equal(t, http.StatusForbidden, call(t, r, http.MethodPost, "/rewards", fan).Code)
}

func TestCapabilities(t *testing.T) {
	s, r := setup(t)
	fan := seed(t, s, "fan@example.com", models.RoleUser, 0)
	admin := seed(t, s, "admin@example.com", models.RoleDeveloper, 0)

	resp := call(t, r, http.MethodGet, "/capabilities", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"store"`)
	assert.NotContains(t, resp.Body.String(), `"adminPanel"`)
	assert.NotContains(t, resp.Body.String(), `"createContent"`)

	resp = call(t, r, http.MethodGet, "/capabilities", admin)
	assert.Contains(t, resp.Body.String(), `"adminPanel"`)
}

func TestMyPurchasesSkipsHiddenItems(t *testing.T) {
	s, r := setup(t)
	creator := seed(t, s, "creator@example.com", models.RoleCreator, 0)
	fan := seed(t, s, "fan@example.com", models.RoleUser, 500)
	admin := seed(t, s, "admin@example.com", models.RoleDeveloper, 0)
	item := models.ContentItem{CreatorID: creator.ID, Title: "Set", Price: 200}
	require.NoError(t, s.CreateContent(context.Background(), &item))

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/content/"+item.ID+"/purchase", fan).Code)
	require.NoError(t, s.GrantUnlock(context.Background(), admin.ID, item.ID))
	require.NoError(t, s.SetContentHidden(context.Background(), item.ID, true))

	resp := call(t, r, http.MethodGet, "/purchases", fan)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	// The unlock itself survives the hide.
	resp = call(t, r, http.MethodGet, "/wallet", fan)
	assert.Contains(t, resp.Body.String(), item.ID)

	resp = call(t, r, http.MethodGet, "/purchases", admin)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"title":"Set"`)
}
