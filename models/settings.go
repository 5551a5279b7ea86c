package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the primary key of the single platform settings row.
const SettingsID = 1

// SidebarVisibility toggles optional sections of the client.
type SidebarVisibility struct {
	Store              bool `json:"store"`
	OutfitGenerator    bool `json:"outfitGenerator"`
	ThemeGenerator     bool `json:"themeGenerator"`
	ManageSubscription bool `json:"manageSubscription"`
	EarnCredits        bool `json:"earnCredits"`
	CreateContent      bool `json:"createContent"`
	MyCreations        bool `json:"myCreations"`
	CreatorPayouts     bool `json:"creatorPayouts"`
}

// PlatformSettings are the admin tunables read by purchase and content flows.
type PlatformSettings struct {
	ID                      uint              `json:"-" gorm:"primaryKey"`
	PlatformCommission      decimal.Decimal   `json:"platformCommission" gorm:"type:numeric(5,4);not null"`
	CreditValueUSD          decimal.Decimal   `json:"creditValueUSD" gorm:"column:credit_value_usd;type:numeric(12,6);not null"`
	WithdrawalCooldownHours int               `json:"withdrawalCooldownHours"`
	MaxImagesPerCard        int               `json:"maxImagesPerCard"`
	MaxVideosPerCard        int               `json:"maxVideosPerCard"`
	CommentsEnabled         bool              `json:"commentsEnabled"`
	Sidebar                 SidebarVisibility `json:"sidebarVisibility" gorm:"embedded;embeddedPrefix:sidebar_"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

func (PlatformSettings) TableName() string {
	return "platform_settings"
}

// DefaultSettings mirrors the values the platform launched with.
func DefaultSettings() PlatformSettings {
	return PlatformSettings{
		ID:                      SettingsID,
		PlatformCommission:      decimal.RequireFromString("0.50"),
		CreditValueUSD:          decimal.RequireFromString("0.01"),
		WithdrawalCooldownHours: 24,
		MaxImagesPerCard:        5,
		MaxVideosPerCard:        2,
		CommentsEnabled:         false,
		Sidebar: SidebarVisibility{
			Store:              true,
			OutfitGenerator:    true,
			ThemeGenerator:     true,
			ManageSubscription: true,
			EarnCredits:        true,
		},
	}
}

// WithdrawalCooldown returns the configured cooldown as a duration.
func (s PlatformSettings) WithdrawalCooldown() time.Duration {
	return time.Duration(s.WithdrawalCooldownHours) * time.Hour
}

// SettingsUpdate is a partial update of PlatformSettings.
type SettingsUpdate struct {
	PlatformCommission      *decimal.Decimal `json:"platformCommission"`
	CreditValueUSD          *decimal.Decimal `json:"creditValueUSD"`
	WithdrawalCooldownHours *int             `json:"withdrawalCooldownHours"`
	MaxImagesPerCard        *int             `json:"maxImagesPerCard"`
	MaxVideosPerCard        *int             `json:"maxVideosPerCard"`
	CommentsEnabled         *bool            `json:"commentsEnabled"`
}

// SidebarUpdate is a partial update of SidebarVisibility.
type SidebarUpdate struct {
	Store              *bool `json:"store"`
	OutfitGenerator    *bool `json:"outfitGenerator"`
	ThemeGenerator     *bool `json:"themeGenerator"`
	ManageSubscription *bool `json:"manageSubscription"`
	EarnCredits        *bool `json:"earnCredits"`
	CreateContent      *bool `json:"createContent"`
	MyCreations        *bool `json:"myCreations"`
	CreatorPayouts     *bool `json:"creatorPayouts"`
}

// Apply merges the non-nil fields of u into v.
func (u SidebarUpdate) Apply(v SidebarVisibility) SidebarVisibility {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&v.Store, u.Store)
	set(&v.OutfitGenerator, u.OutfitGenerator)
	set(&v.ThemeGenerator, u.ThemeGenerator)
	set(&v.ManageSubscription, u.ManageSubscription)
	set(&v.EarnCredits, u.EarnCredits)
	set(&v.CreateContent, u.CreateContent)
	set(&v.MyCreations, u.MyCreations)
	set(&v.CreatorPayouts, u.CreatorPayouts)
	return v
}
