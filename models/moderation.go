package models

import (
	"math"
	"time"
)

// UserTimeout blocks every authenticated route of a user until EndTime.
type UserTimeout struct {
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	EndTime   time.Time `json:"endTime"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserTimeout) TableName() string {
	return "user_timeouts"
}

// Active reports whether the timeout still applies at now.
func (t UserTimeout) Active(now time.Time) bool {
	return now.Before(t.EndTime)
}

// MaxTimeoutHours is ten years; longer timeouts would overflow time.Duration.
const MaxTimeoutHours = 87600

type TimeoutCreate struct {
	DurationHours float64 `json:"durationHours" binding:"required,gt=0,lte=87600" example:"24"`
	Message       string  `json:"message" binding:"required" example:"Please review the community rules."`
}

// Duration returns the timeout length, capped at MaxTimeoutHours.
func (t TimeoutCreate) Duration() time.Duration {
	return time.Duration(math.Min(t.DurationHours, MaxTimeoutHours) * float64(time.Hour))
}

// ShowcaseEntry is one creator highlighted on the home feed.
type ShowcaseEntry struct {
	UserID   string `json:"userId" gorm:"primaryKey;type:uuid"`
	Position int    `json:"position"`
}

func (ShowcaseEntry) TableName() string {
	return "showcase_entries"
}

type ShowcaseUpdate struct {
	UserIDs []string `json:"userIds"`
}
