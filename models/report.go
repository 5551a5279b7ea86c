package models

import "time"

type ReportReason string

const (
	DISLIKE          ReportReason = "DISLIKE"
	HARASSMENT       ReportReason = "HARASSMENT"
	SELF_HARM        ReportReason = "SELF_HARM"
	VIOLENCE         ReportReason = "VIOLENCE"
	RESTRICTED_ITEMS ReportReason = "RESTRICTED_ITEMS"
	NUDITY           ReportReason = "NUDITY"
	SCAM             ReportReason = "SCAM"
	MISINFORMATION   ReportReason = "MISINFORMATION"
	ILLEGAL_CONTENT  ReportReason = "ILLEGAL_CONTENT"
)

func (r ReportReason) Valid() bool {
	switch r {
	case DISLIKE, HARASSMENT, SELF_HARM, VIOLENCE, RESTRICTED_ITEMS, NUDITY, SCAM, MISINFORMATION, ILLEGAL_CONTENT:
		return true
	}
	return false
}

type Report struct {
	ID         string       `json:"id" gorm:"primaryKey;type:uuid"`
	ContentID  string       `json:"contentId" gorm:"column:content_id;type:uuid;index"`
	ReportedBy string       `json:"reportedBy" gorm:"column:reported_by;type:uuid"`
	Reason     ReportReason `json:"reason" gorm:"column:reason"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type ReportCreate struct {
	Reason ReportReason `json:"reason" binding:"required"`
}

func (Report) TableName() string {
	return "reports"
}
