// Package admin serves the developer-only back office.
package admin

import (
	"time"

	"funfans-backend/credits"
	"funfans-backend/payments"
	"funfans-backend/store"
	"funfans-backend/utils"
)

type Handler struct {
	store    store.Store
	credits  *credits.Service
	payments *payments.Service
	mailer   utils.Mailer
	now      func() time.Time
}

func New(s store.Store, c *credits.Service, p *payments.Service, mailer utils.Mailer) *Handler {
	return &Handler{store: s, credits: c, payments: p, mailer: mailer, now: time.Now}
}
