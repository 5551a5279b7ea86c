package stripe

import (
	"funfans-backend/payments"
	"funfans-backend/store"
)

type Handler struct {
	store    store.Store
	payments *payments.Service
}

func New(s store.Store, p *payments.Service) *Handler {
	return &Handler{store: s, payments: p}
}
