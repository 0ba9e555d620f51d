package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	"github.com/Guyuepp/go-clean-forum/internal/repository/sqlstore/model"
)

type commentLikeRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB, gen repository.IDGenerator) *commentLikeRepository {
	return &commentLikeRepository{
		DB:    db,
		newID: gen,
	}
}

// AddLike relies on the unique (comment, owner) index. The *gorm.DB must be
// opened with TranslateError so the driver error becomes gorm.ErrDuplicatedKey.
func (l *commentLikeRepository) AddLike(ctx context.Context, like domain.Like) error {
	row := model.NewCommentLikeFromDomain(repository.NewID("like", l.newID), like)
	err := l.DB.WithContext(ctx).Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrLikeConflict
	}
	return err
}

func (l *commentLikeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	return l.DB.WithContext(ctx).
		Where("comment = ? AND owner = ?", like.CommentID, like.Owner).
		Delete(&model.CommentLike{}).Error
}

func (l *commentLikeRepository) VerifyUserCommentLike(ctx context.Context, like domain.Like) (bool, error) {
	var n int64
	err := l.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment = ? AND owner = ?", like.CommentID, like.Owner).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (l *commentLikeRepository) GetLikesByThreadID(ctx context.Context, threadID string) ([]domain.LikeRecord, error) {
	var rows []model.CommentLike
	err := l.DB.WithContext(ctx).
		Select("user_comment_likes.id, user_comment_likes.comment, user_comment_likes.owner").
		Joins("JOIN comments ON comments.id = user_comment_likes.comment").
		Where("comments.thread = ?", threadID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.LikeRecord, len(rows))
	for i := range rows {
		res[i] = rows[i].ToRecord()
	}
	return res, nil
}
