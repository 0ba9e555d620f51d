package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// CommentLikeRepository is a mock type for the CommentLikeRepository type
type CommentLikeRepository struct {
	mock.Mock
}

func (_m *CommentLikeRepository) AddLike(ctx context.Context, l domain.Like) error {
	ret := _m.Called(ctx, l)
	return ret.Error(0)
}

func (_m *CommentLikeRepository) DeleteLike(ctx context.Context, l domain.Like) error {
	ret := _m.Called(ctx, l)
	return ret.Error(0)
}

func (_m *CommentLikeRepository) VerifyUserCommentLike(ctx context.Context, l domain.Like) (bool, error) {
	ret := _m.Called(ctx, l)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CommentLikeRepository) GetLikesByThreadID(ctx context.Context, threadID string) ([]domain.LikeRecord, error) {
	ret := _m.Called(ctx, threadID)
	recs, _ := ret.Get(0).([]domain.LikeRecord)
	return recs, ret.Error(1)
}

var _ domain.CommentLikeRepository = (*CommentLikeRepository)(nil)
