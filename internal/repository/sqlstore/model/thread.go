package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Date  time.Time `gorm:"not null"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id, owner string, t domain.NewThread, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Title: t.Title,
		Body:  t.Body,
		Date:  date,
		Owner: owner,
	}
}

// ThreadRow is a thread joined with its owner's username.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (m *ThreadRow) ToRecord() domain.ThreadRecord {
	return domain.ThreadRecord{
		ID:       m.ID,
		Title:    m.Title,
		Body:     m.Body,
		Date:     m.Date,
		Username: m.Username,
	}
}
