package models

import (
	"time"
)

type Tag struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagCount is a tag with the number of visible items carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
