package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`
	CommentID string    `gorm:"column:comment;type:varchar(50);not null;index"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null;default:false"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id, owner, commentID string, r domain.NewReply, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		Content:   r.Content,
		Date:      date,
		CommentID: commentID,
		Owner:     owner,
	}
}

// ReplyRow is a reply joined with its owner's username.
type ReplyRow struct {
	ID        string
	CommentID string
	Username  string
	Content   string
	Date      time.Time
	IsDelete  bool
}

func (m *ReplyRow) ToRecord() domain.ReplyRecord {
	return domain.ReplyRecord{
		ID:        m.ID,
		CommentID: m.CommentID,
		Username:  m.Username,
		Content:   m.Content,
		Date:      m.Date,
		IsDelete:  m.IsDelete,
	}
}
