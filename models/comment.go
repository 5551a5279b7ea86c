package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ContentID string    `json:"contentId" gorm:"column:content_id;type:uuid;index"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:uuid"`
	Content   string    `json:"content" binding:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentCreate struct {
	Content string `json:"content" binding:"required,max=2000" example:"Amazing work!"`
}
