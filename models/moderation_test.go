package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutCreateDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, TimeoutCreate{DurationHours: 1.5}.Duration())
	assert.Equal(t, MaxTimeoutHours*time.Hour, TimeoutCreate{DurationHours: MaxTimeoutHours}.Duration())

	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	huge := TimeoutCreate{DurationHours: 3e6}
	timeout := UserTimeout{EndTime: now.Add(huge.Duration())}
	assert.True(t, timeout.EndTime.After(now))
	assert.True(t, timeout.Active(now))
}
