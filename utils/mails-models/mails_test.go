package mailsmodels

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordReset(t *testing.T) {
	msg := string(PasswordReset("123456"))

	assert.True(t, strings.HasPrefix(msg, "Subject: FunFans password reset\r\n"))
	assert.Contains(t, msg, "123456")
	assert.Contains(t, msg, "text/html")
}

func TestTimeoutNotice(t *testing.T) {
	end := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
	msg := string(TimeoutNotice("Spam in comments", end))

	assert.Contains(t, msg, "Spam in comments")
	assert.Contains(t, msg, "01 Mar 2025 18:30 UTC")
}
