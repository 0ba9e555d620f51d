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

type commentRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, gen repository.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: gen,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, owner, threadID string, nc domain.NewComment) (domain.AddedComment, error) {
	row := model.NewCommentFromDomain(repository.NewID("comment", c.newID), owner, threadID, nc, time.Now())
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.ParseAddedComment(row.ID, row.Content, row.Owner)
}

func (c *commentRepository) CheckCommentAvailability(ctx context.Context, commentID, threadID string) error {
	var row model.Comment
	err := c.DB.WithContext(ctx).
		Select("id", "thread", "is_delete").
		Take(&row, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	switch {
	case row.IsDelete:
		return domain.ErrCommentInvalid
	case row.ThreadID != threadID:
		return domain.ErrCommentNotInThread
	}
	return nil
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, owner string) error {
	var row model.Comment
	err := c.DB.WithContext(ctx).
		Select("id", "owner").
		Take(&row, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if row.Owner != owner {
		return domain.ErrAccessForbidden
	}
	return nil
}

func (c *commentRepository) DeleteCommentByID(ctx context.Context, commentID string) error {
	return c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_delete", true).Error
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, COALESCE(users.username, '') AS username, comments.date, comments.content, comments.is_delete").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRecord, len(rows))
	for i := range rows {
		res[i] = rows[i].ToRecord()
	}
	return res, nil
}
