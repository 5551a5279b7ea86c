// Package store persists the platform state. GormStore is the production
// implementation on postgres; MemoryStore backs tests and local demos.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"funfans-backend/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("store: record not found")
	ErrAlreadyExists       = errors.New("store: record already exists")
	ErrInsufficientBalance = errors.New("store: insufficient balance")
	ErrConflict            = errors.New("store: record changed state")
)

// Store is the persistence boundary used by services and handlers.
type Store interface {
	// InTx runs fn against a Store bound to a single transaction. Any error
	// returned by fn rolls back every write made through tx.
	InTx(ctx context.Context, fn func(tx Store) error) error

	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserBySlug(ctx context.Context, slug string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	SetUserRole(ctx context.Context, id string, role models.Role) error
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	Followers(ctx context.Context, userID string) ([]string, error)
	Following(ctx context.Context, userID string) ([]string, error)

	// Ledger
	AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error)
	AppendTransaction(ctx context.Context, t *models.Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	AccrueEarnings(ctx context.Context, creatorID string, amount decimal.Decimal, cooldown time.Duration) (*models.CreatorEarnings, error)
	GetEarnings(ctx context.Context, creatorID string) (*models.CreatorEarnings, error)
	AppendCreatorTransaction(ctx context.Context, t *models.CreatorTransaction) error
	ListCreatorTransactions(ctx context.Context, creatorID string) ([]models.CreatorTransaction, error)
	GrantUnlock(ctx context.Context, userID, contentID string) error
	IsUnlocked(ctx context.Context, userID, contentID string) (bool, error)
	ListUnlocked(ctx context.Context, userID string) ([]string, error)

	// Content
	CreateContent(ctx context.Context, item *models.ContentItem) error
	GetContent(ctx context.Context, id string) (*models.ContentItem, error)
	// LockContent reads the bare item row and holds it until the surrounding
	// InTx ends.
	LockContent(ctx context.Context, id string) (*models.ContentItem, error)
	ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error)
	SetContentHidden(ctx context.Context, id string, hidden bool) error
	HideCreatorContent(ctx context.Context, creatorID string) (int64, error)
	DeleteContent(ctx context.Context, id string) error
	DeleteCreatorContent(ctx context.Context, creatorID string) (int64, error)
	ToggleLike(ctx context.Context, contentID, userID string) (bool, error)
	ToggleReaction(ctx context.Context, contentID, userID, emoji string) (string, error)
	AddShare(ctx context.Context, contentID, userID string) error
	ListTags(ctx context.Context) ([]models.TagCount, error)
	AddComment(ctx context.Context, c *models.Comment) error
	ListComments(ctx context.Context, contentID string) ([]models.Comment, error)
	CreateReport(ctx context.Context, r *models.Report) error
	ListReports(ctx context.Context) ([]models.Report, error)

	// Settings
	GetSettings(ctx context.Context) (*models.PlatformSettings, error)
	// LockSettings is GetSettings holding the row until the surrounding InTx
	// ends. Read-modify-write callers use it to avoid lost updates.
	LockSettings(ctx context.Context) (*models.PlatformSettings, error)
	SaveSettings(ctx context.Context, s *models.PlatformSettings) error

	// Catalog and subscriptions
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	SavePlan(ctx context.Context, p *models.SubscriptionPlan) error
	ListPackages(ctx context.Context) ([]models.CreditPackage, error)
	GetPackage(ctx context.Context, id string) (*models.CreditPackage, error)
	SavePackage(ctx context.Context, p *models.CreditPackage) error
	GetUserSubscription(ctx context.Context, userID string) (*models.UserSubscription, error)
	SaveUserSubscription(ctx context.Context, s *models.UserSubscription) error
	DeleteUserSubscription(ctx context.Context, userID string) error
	CreateCheckoutSession(ctx context.Context, s *models.CheckoutSession) error
	GetCheckoutSession(ctx context.Context, id string) (*models.CheckoutSession, error)
	UpdateCheckoutStatus(ctx context.Context, id string, from, to models.CheckoutStatus) error

	// Moderation
	SaveTimeout(ctx context.Context, t *models.UserTimeout) error
	GetTimeout(ctx context.Context, userID string) (*models.UserTimeout, error)
	SetShowcase(ctx context.Context, userIDs []string) error
	GetShowcase(ctx context.Context) ([]string, error)

	// Auth
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// NormalizeTags trims, lowercases and de-duplicates tag names, dropping empty ones.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = normalizeTag(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
