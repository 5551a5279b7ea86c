package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"funfans-backend/credits"
	"funfans-backend/models"
	"funfans-backend/store"
	"funfans-backend/utils"
)

// Service turns gateway confirmations into ledger entries. Credits are only
// granted from a verified webhook, never from the client redirect.
type Service struct {
	store      store.Store
	credits    *credits.Service
	gateway    Gateway
	successURL string
	cancelURL  string
	now        func() time.Time
}

// NewService builds the payment flows. gateway may be nil, in which case only
// free plans and admin assignments are available.
func NewService(s store.Store, c *credits.Service, gateway Gateway, successURL, cancelURL string) *Service {
	return &Service{
		store:      s,
		credits:    c,
		gateway:    gateway,
		successURL: successURL,
		cancelURL:  cancelURL,
		now:        time.Now,
	}
}

func (s *Service) startCheckout(ctx context.Context, user *models.User, req CheckoutRequest) (*models.CheckoutSession, error) {
	if s.gateway == nil {
		return nil, ErrDisabled
	}
	req.UserID = user.ID
	req.Email = user.Email
	req.CustomerID = user.StripeCustomerID
	req.SuccessURL = s.successURL
	req.CancelURL = s.cancelURL

	res, err := s.gateway.CreateCheckout(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.CustomerID != "" && res.CustomerID != user.StripeCustomerID {
		user.StripeCustomerID = res.CustomerID
		if err := s.store.UpdateUser(ctx, user); err != nil {
			utils.LogErrorWithUser(user.ID, err, "Error saving the Stripe customer id")
		}
	}

	cs := &models.CheckoutSession{
		ID:          res.SessionID,
		UserID:      user.ID,
		Kind:        req.Kind,
		ReferenceID: req.Reference,
		Status:      models.CheckoutPending,
		URL:         res.URL,
	}
	if err := s.store.CreateCheckoutSession(ctx, cs); err != nil {
		return nil, fmt.Errorf("save checkout session: %w", err)
	}
	return cs, nil
}

// CheckoutPackage opens a payment for a credit package.
func (s *Service) CheckoutPackage(ctx context.Context, userID, packageID string) (*models.CheckoutSession, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.store.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}
	return s.startCheckout(ctx, user, CheckoutRequest{
		Kind:      models.CheckoutCreditPackage,
		Reference: pkg.ID,
		Name:      fmt.Sprintf("%d FunFans credits", pkg.TotalCredits()),
		ProductID: pkg.StripeProductID,
		Price:     pkg.Price,
		Currency:  "USD",
	})
}

// SubscribeResult holds either the applied subscription (free plans) or the
// checkout the user must complete (paid plans).
type SubscribeResult struct {
	Subscription *models.UserSubscription `json:"subscription,omitempty"`
	Checkout     *models.CheckoutSession  `json:"checkout,omitempty"`
}

func (s *Service) Subscribe(ctx context.Context, userID, planID string) (*SubscribeResult, error) {
	plan, err := s.store.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.IsFree() {
		sub, err := s.apply(ctx, userID, *plan, "free", "")
		if err != nil {
			return nil, err
		}
		return &SubscribeResult{Subscription: sub}, nil
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cs, err := s.startCheckout(ctx, user, CheckoutRequest{
		Kind:      models.CheckoutSubscription,
		Reference: plan.ID,
		Name:      "FunFans " + plan.Name,
		ProductID: plan.StripeProductID,
		Price:     plan.Price,
		Currency:  plan.Currency,
		Recurring: true,
	})
	if err != nil {
		return nil, err
	}
	return &SubscribeResult{Checkout: cs}, nil
}

// AssignPlan applies a plan to a user without payment.
func (s *Service) AssignPlan(ctx context.Context, userID, planID string) (*models.UserSubscription, error) {
	plan, err := s.store.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, *plan, "admin", "")
}

func (s *Service) apply(ctx context.Context, userID string, plan models.SubscriptionPlan, method, stripeSubID string) (*models.UserSubscription, error) {
	sub := models.SnapshotOf(userID, plan, method, s.now())
	sub.StripeSubscriptionID = stripeSubID
	err := s.store.InTx(ctx, func(tx store.Store) error {
		if err := tx.SaveUserSubscription(ctx, &sub); err != nil {
			return err
		}
		_, err := s.credits.Record(ctx, tx, userID, models.TransactionSubscription, "Subscribed to "+plan.Name+" plan")
		return err
	})
	if err != nil {
		return nil, err
	}
	utils.LogSuccessWithUser(userID, "Plan "+plan.ID+" applied")
	return &sub, nil
}

// Cancel removes the user's subscription, cancelling it on the gateway
// first. Nothing changes locally when the gateway refuses.
func (s *Service) Cancel(ctx context.Context, userID string) error {
	sub, err := s.store.GetUserSubscription(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNoSubscription
	}
	if err != nil {
		return err
	}

	if sub.StripeSubscriptionID != "" {
		if s.gateway == nil {
			return ErrDisabled
		}
		if err := s.gateway.CancelSubscription(ctx, sub.StripeSubscriptionID); err != nil {
			return err
		}
	}

	return s.store.InTx(ctx, func(tx store.Store) error {
		if err := tx.DeleteUserSubscription(ctx, userID); err != nil {
			return err
		}
		_, err := s.credits.Record(ctx, tx, userID, models.TransactionSubscription, "Cancelled "+sub.Name+" plan")
		return err
	})
}

// HandleWebhook verifies and applies a gateway notification.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error) {
	if s.gateway == nil {
		return nil, ErrDisabled
	}
	ev, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return nil, err
	}

	switch ev.Kind {
	case EventCheckoutCompleted:
		if !ev.Paid {
			utils.LogInfo("Checkout " + ev.SessionID + " completed without payment, waiting")
			return ev, nil
		}
		return ev, s.Complete(ctx, ev.SessionID, ev.SubscriptionID)
	case EventCheckoutExpired:
		err := s.store.UpdateCheckoutStatus(ctx, ev.SessionID, models.CheckoutPending, models.CheckoutExpired)
		if errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrNotFound) {
			return ev, nil
		}
		return ev, err
	}
	return ev, nil
}

// Complete grants what checkout sessionID paid for. A session is applied at
// most once; later calls return ErrAlreadyProcessed.
func (s *Service) Complete(ctx context.Context, sessionID, stripeSubID string) error {
	var grant *credits.Grant
	var userID string
	err := s.store.InTx(ctx, func(tx store.Store) error {
		cs, err := tx.GetCheckoutSession(ctx, sessionID)
		if err != nil {
			return err
		}
		userID = cs.UserID
		err = tx.UpdateCheckoutStatus(ctx, sessionID, models.CheckoutPending, models.CheckoutCompleted)
		if errors.Is(err, store.ErrConflict) {
			return ErrAlreadyProcessed
		}
		if err != nil {
			return err
		}

		switch cs.Kind {
		case models.CheckoutCreditPackage:
			pkg, err := tx.GetPackage(ctx, cs.ReferenceID)
			if err != nil {
				return err
			}
			grant, err = s.credits.CreditTx(ctx, tx, credits.CreditRequest{
				UserID:      cs.UserID,
				Amount:      pkg.TotalCredits(),
				Type:        models.TransactionCreditPurchase,
				Description: fmt.Sprintf("Purchase of %d credits", pkg.TotalCredits()),
				ExternalRef: cs.ID,
			})
			return err

		case models.CheckoutSubscription:
			plan, err := tx.GetPlan(ctx, cs.ReferenceID)
			if err != nil {
				return err
			}
			sub := models.SnapshotOf(cs.UserID, *plan, "card", s.now())
			sub.StripeSubscriptionID = stripeSubID
			if err := tx.SaveUserSubscription(ctx, &sub); err != nil {
				return err
			}
			if plan.Credits <= 0 {
				_, err := s.credits.Record(ctx, tx, cs.UserID, models.TransactionSubscription, "Subscribed to "+plan.Name+" plan")
				return err
			}
			grant, err = s.credits.CreditTx(ctx, tx, credits.CreditRequest{
				UserID:      cs.UserID,
				Amount:      plan.Credits,
				Type:        models.TransactionSubscription,
				Description: "Subscription credits: " + plan.Name,
				ExternalRef: cs.ID,
			})
			return err
		}
		return fmt.Errorf("unknown checkout kind %q", cs.Kind)
	})
	if err != nil {
		return err
	}

	if grant != nil {
		s.credits.PublishGrant(userID, grant)
	}
	utils.LogSuccessWithUser(userID, "Checkout "+sessionID+" completed")
	return nil
}
