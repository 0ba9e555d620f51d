package sqlstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	"github.com/Guyuepp/go-clean-forum/internal/repository/sqlstore/model"
)

const replyColumns = "replies.id, replies.comment AS comment_id, COALESCE(users.username, '') AS username, replies.date, replies.content, replies.is_delete"

type replyRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, gen repository.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, owner, commentID string, nr domain.NewReply) (domain.AddedReply, error) {
	row := model.NewReplyFromDomain(repository.NewID("reply", r.newID), owner, commentID, nr, time.Now())
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.ParseAddedReply(row.ID, row.Content, row.Owner)
}

func (r *replyRepository) CheckReplyAvailability(ctx context.Context, replyID, commentID string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).
		Select("id", "comment", "is_delete").
		Take(&row, "id = ?", replyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReplyNotFound
	}
	if err != nil {
		return err
	}
	switch {
	case row.IsDelete:
		return domain.ErrReplyInvalid
	case row.CommentID != commentID:
		return domain.ErrReplyNotInComment
	}
	return nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, replyID, owner string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).
		Select("id", "owner").
		Take(&row, "id = ?", replyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReplyNotFound
	}
	if err != nil {
		return err
	}
	if row.Owner != owner {
		return domain.ErrAccessForbidden
	}
	return nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", replyID).
		Update("is_delete", true).Error
}

func (r *replyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]domain.ReplyRecord, error) {
	return fetchReplies(r.joined(ctx).
		Joins("JOIN comments ON comments.id = replies.comment").
		Where("comments.thread = ?", threadID))
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	return fetchReplies(r.joined(ctx).Where("replies.comment = ?", commentID))
}

func (r *replyRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("replies").
		Select(replyColumns).
		Joins("LEFT JOIN users ON users.id = replies.owner")
}

func fetchReplies(q *gorm.DB) ([]domain.ReplyRecord, error) {
	var rows []model.ReplyRow
	if err := q.Order("replies.date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRecord, len(rows))
	for i := range rows {
		res[i] = rows[i].ToRecord()
	}
	return res, nil
}
