package models

import (
	"time"

	"gorm.io/gorm"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaCount is stored inline on the content row (media_images, media_videos).
type MediaCount struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
}

// ContentItem is a sellable media card.
type ContentItem struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	CreatorID    string         `json:"creatorId" gorm:"type:uuid;index;not null"`
	Title        string         `json:"title" gorm:"not null"`
	Price        int64          `json:"price" gorm:"not null;default:0"`
	ImageURL     string         `json:"imageUrl"`
	OfferText    string         `json:"offerText,omitempty"`
	MediaType    MediaKind      `json:"mediaType,omitempty" gorm:"type:varchar(10)"`
	MediaCount   MediaCount     `json:"mediaCount" gorm:"embedded;embeddedPrefix:media_"`
	IsHidden     bool           `json:"isHidden" gorm:"default:false"`
	BlurLevel    int            `json:"blurLevel" gorm:"default:0"`
	ExternalLink string         `json:"externalLink,omitempty"`
	Tags         []Tag          `json:"-" gorm:"many2many:content_tags;"`
	Media        []ContentMedia `json:"media" gorm:"foreignKey:ContentID"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	TagNames      []string          `json:"tags" gorm:"-"`
	LikedBy       []string          `json:"likedBy" gorm:"-"`
	SharedBy      []string          `json:"sharedBy" gorm:"-"`
	UserReactions map[string]string `json:"userReactions" gorm:"-"`
}

func (ContentItem) TableName() string {
	return "content_items"
}

// ContentMedia is one uploaded file belonging to a content item.
type ContentMedia struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ContentID string    `json:"contentId" gorm:"type:uuid;index;not null"`
	URL       string    `json:"url"`
	Kind      MediaKind `json:"kind" gorm:"type:varchar(10)"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContentMedia) TableName() string {
	return "content_media"
}

// ContentFilter narrows a content listing. Hidden items are only returned
// when IncludeHidden is set, which is reserved to admins.
type ContentFilter struct {
	IncludeHidden bool
	Tag           string
	CreatorID     string
}

// Like marks that UserID liked ContentID.
type Like struct {
	ContentID string    `json:"contentId" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

type Share struct {
	ContentID string    `json:"contentId" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Share) TableName() string {
	return "shares"
}

// Reaction holds the single emoji a user currently has on an item.
type Reaction struct {
	ContentID string    `json:"contentId" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"userId" gorm:"primaryKey;type:uuid"`
	Emoji     string    `json:"emoji" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Reaction) TableName() string {
	return "reactions"
}

type ReactionCreate struct {
	Emoji string `json:"emoji" binding:"required" example:"😍"`
}
