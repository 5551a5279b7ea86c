package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// FakeGateway is an in-memory Gateway. Webhook payloads are the JSON encoding
// of a WebhookEvent and the signature must equal Secret.
type FakeGateway struct {
	Secret string
	// Err, when set, is returned by CreateCheckout and CancelSubscription.
	Err error

	mu        sync.Mutex
	seq       int
	Checkouts []CheckoutRequest
	Cancelled []string
}

func (g *FakeGateway) CreateCheckout(_ context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	g.seq++
	g.Checkouts = append(g.Checkouts, req)
	id := fmt.Sprintf("cs_test_%d", g.seq)
	customerID := req.CustomerID
	if customerID == "" {
		customerID = "cus_" + req.UserID
	}
	return &CheckoutResult{SessionID: id, URL: "https://checkout.test/" + id, CustomerID: customerID}, nil
}

func (g *FakeGateway) CancelSubscription(_ context.Context, subscriptionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return g.Err
	}
	g.Cancelled = append(g.Cancelled, subscriptionID)
	return nil
}

func (g *FakeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if signature != g.Secret {
		return nil, ErrInvalidSignature
	}
	var ev WebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
