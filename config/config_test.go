package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	assert.EqualError(t, err, "DB_URL is required")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/funfans")
	t.Setenv("JWT_SECRET", " ")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/funfans")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_HOURS", "nope")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SIGNUP_BONUS_CREDITS", "")
	t.Setenv("VITRINE_BASE_URL", "https://funfans.app/v/")
	t.Setenv("STRIPE_SECRET_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, int64(0), cfg.SignupBonusCredits)
	assert.Equal(t, "https://funfans.app/v", cfg.VitrineBaseURL)
	assert.False(t, cfg.StripeEnabled())
}

func TestLoad_ParsesValues(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/funfans")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SIGNUP_BONUS_CREDITS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, int64(50), cfg.SignupBonusCredits)
}

func TestLoad_RejectsNegativeBonus(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/funfans")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SIGNUP_BONUS_CREDITS", "-5")

	_, err := Load()
	assert.Error(t, err)
}
