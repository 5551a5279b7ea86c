package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"funfans-backend/credits"
	"funfans-backend/media"
	"funfans-backend/models"
	"funfans-backend/payments"
	"funfans-backend/realtime"
	"funfans-backend/store"
	"funfans-backend/testutils"
	"funfans-backend/utils"

	"github.com/gin-gonic/gin"
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
	hub := realtime.NewHub()
	c := credits.NewService(s, hub)
	r := SetupRouter(Deps{
		Store:          s,
		Credits:        c,
		Payments:       payments.NewService(s, c, &payments.FakeGateway{}, "http://ok", "http://cancel"),
		Hub:            hub,
		Uploader:       &media.FakeUploader{},
		Mailer:         utils.LogMailer{},
		CORSOrigins:    []string{"*"},
		TokenTTL:       time.Hour,
		SignupBonus:    100,
		VitrineBaseURL: "http://localhost:3000/vitrine",
	})
	return s, r
}

func seed(t *testing.T, s store.Store, email string, role models.Role) models.User {
	t.Helper()
	u := models.User{Email: email, Role: role}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	return u
}

func call(r *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPublicRoutes(t *testing.T) {
	_, r := setup(t)

	for _, path := range []string{"/ping", "/tags", "/showcase", "/store/packages", "/subscriptions/plans"} {
		resp := call(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	_, r := setup(t)

	for _, path := range []string{"/wallet", "/users/me", "/content", "/admin/settings"} {
		resp := call(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code, path)
	}
}

func TestAdminRoutesRequireDeveloper(t *testing.T) {
	s, r := setup(t)
	fan := seed(t, s, "fan@example.com", models.RoleUser)
	dev := seed(t, s, "dev@example.com", models.RoleDeveloper)

	resp := call(r, http.MethodGet, "/admin/settings", testutils.AuthHeader(t, fan))
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = call(r, http.MethodGet, "/admin/settings", testutils.AuthHeader(t, dev))
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestCreatorToolsAreGated(t *testing.T) {
	s, r := setup(t)
	fan := seed(t, s, "fan@example.com", models.RoleUser)
	creator := seed(t, s, "creator@example.com", models.RoleCreator)

	resp := call(r, http.MethodGet, "/content/mine", testutils.AuthHeader(t, fan))
	assert.Equal(t, http.StatusForbidden, resp.Code)
	resp = call(r, http.MethodGet, "/payouts", testutils.AuthHeader(t, fan))
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = call(r, http.MethodGet, "/content/mine", testutils.AuthHeader(t, creator))
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestTimedOutUserCanStillLogOut(t *testing.T) {
	s, r := setup(t)
	fan := seed(t, s, "fan@example.com", models.RoleUser)
	require.NoError(t, s.SaveTimeout(context.Background(), &models.UserTimeout{
		UserID:  fan.ID,
		EndTime: time.Now().Add(time.Hour),
		Message: "cool down",
	}))
	auth := testutils.AuthHeader(t, fan)

	resp := call(r, http.MethodGet, "/wallet", auth)
	assert.Equal(t, http.StatusLocked, resp.Code)

	resp = call(r, http.MethodPost, "/logout", auth)
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	resp = call(r, http.MethodGet, "/wallet", auth)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestTimedOutDeveloperLosesAdminPanel(t *testing.T) {
	s, r := setup(t)
	dev := seed(t, s, "dev@example.com", models.RoleDeveloper)
	require.NoError(t, s.SaveTimeout(context.Background(), &models.UserTimeout{
		UserID:  dev.ID,
		EndTime: time.Now().Add(time.Hour),
		Message: "cool down",
	}))
	auth := testutils.AuthHeader(t, dev)

	resp := call(r, http.MethodGet, "/admin/settings", auth)
	assert.Equal(t, http.StatusLocked, resp.Code)
	assert.Contains(t, resp.Body.String(), "cool down")

	resp = call(r, http.MethodDelete, "/admin/users/"+dev.ID+"/timeout", auth)
	assert.Equal(t, http.StatusLocked, resp.Code)

	timeout, err := s.GetTimeout(context.Background(), dev.ID)
	require.NoError(t, err)
	assert.True(t, timeout.Active(time.Now()))
}
