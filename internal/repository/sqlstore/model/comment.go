package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	Content  string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null"`
	ThreadID string    `gorm:"column:thread;type:varchar(50);not null;index"`
	Owner    string    `gorm:"type:varchar(50);not null"`
	IsDelete bool      `gorm:"column:is_delete;not null;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id, owner, threadID string, c domain.NewComment, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		Content:  c.Content,
		Date:     date,
		ThreadID: threadID,
		Owner:    owner,
	}
}

// CommentRow is a comment joined with its owner's username.
type CommentRow struct {
	ID       string
	Username string
	Content  string
	Date     time.Time
	IsDelete bool
}

func (m *CommentRow) ToRecord() domain.CommentRecord {
	return domain.CommentRecord{
		ID:       m.ID,
		Username: m.Username,
		Content:  m.Content,
		Date:     m.Date,
		IsDelete: m.IsDelete,
	}
}
