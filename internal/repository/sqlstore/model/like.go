package model

import "github.com/Guyuepp/go-clean-forum/domain"

type CommentLike struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	CommentID string `gorm:"column:comment;type:varchar(50);not null;uniqueIndex:unique_comment_and_owner"`
	Owner     string `gorm:"type:varchar(50);not null;uniqueIndex:unique_comment_and_owner"`
}

func (CommentLike) TableName() string {
	return "user_comment_likes"
}

func NewCommentLikeFromDomain(id string, l domain.Like) *CommentLike {
	return &CommentLike{
		ID:        id,
		CommentID: l.CommentID,
		Owner:     l.Owner,
	}
}

func (m *CommentLike) ToRecord() domain.LikeRecord {
	return domain.LikeRecord{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.Owner,
	}
}

// All lists every table in creation order. Tests use it with AutoMigrate.
func All() []any {
	return []any{&User{}, &Thread{}, &Comment{}, &Reply{}, &CommentLike{}}
}
