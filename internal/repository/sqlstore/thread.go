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

type threadRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ThreadDBRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadDBRepository
func NewThreadRepository(db *gorm.DB, gen repository.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: gen,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, owner string, t domain.NewThread) (domain.AddedThread, error) {
	row := model.NewThreadFromDomain(repository.NewID("thread", m.newID), owner, t, time.Now())
	if err := m.DB.WithContext(ctx).Create(row).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return domain.ParseAddedThread(row.ID, row.Title, row.Owner)
}

func (m *threadRepository) CheckThreadAvailability(ctx context.Context, threadID string) error {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ?", threadID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (m *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRecord, error) {
	var row model.ThreadRow
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, COALESCE(users.username, '') AS username").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ThreadRecord{}, domain.ErrThreadNotFound
	}
	if err != nil {
		return domain.ThreadRecord{}, err
	}
	return row.ToRecord(), nil
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	return
}
