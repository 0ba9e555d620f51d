package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// ThreadRepository is a mock type for the ThreadRepository type
type ThreadRepository struct {
	mock.Mock
}

func (_m *ThreadRepository) AddThread(ctx context.Context, owner string, t domain.NewThread) (domain.AddedThread, error) {
	ret := _m.Called(ctx, owner, t)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadRepository) CheckThreadAvailability(ctx context.Context, threadID string) error {
	ret := _m.Called(ctx, threadID)
	return ret.Error(0)
}

func (_m *ThreadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ThreadRecord, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadRecord), ret.Error(1)
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)

// ThreadDBRepository is a mock type for the ThreadDBRepository type
type ThreadDBRepository struct {
	ThreadRepository
}

func (_m *ThreadDBRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	ret := _m.Called(ctx, cursor, limit)
	ids, _ := ret.Get(0).([]string)
	return ids, ret.Error(1)
}

var _ domain.ThreadDBRepository = (*ThreadDBRepository)(nil)

// ThreadCache is a mock type for the ThreadCache type
type ThreadCache struct {
	mock.Mock
}

func (_m *ThreadCache) GetThread(ctx context.Context, threadID string) (domain.ThreadRecord, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadRecord), ret.Error(1)
}

func (_m *ThreadCache) SetThread(ctx context.Context, rec domain.ThreadRecord) error {
	ret := _m.Called(ctx, rec)
	return ret.Error(0)
}

var _ domain.ThreadCache = (*ThreadCache)(nil)
