package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// ThreadUsecase is a mock type for the ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

func (_m *ThreadUsecase) AddThread(ctx context.Context, userID string, payload domain.AddThreadPayload) (domain.AddedThread, error) {
	ret := _m.Called(ctx, userID, payload)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadDetail), ret.Error(1)
}

func (_m *ThreadUsecase) InitThreadIndex(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

var _ domain.ThreadUsecase = (*ThreadUsecase)(nil)

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

func (_m *CommentUsecase) AddComment(ctx context.Context, userID, threadID string, content string) (domain.AddedComment, error) {
	ret := _m.Called(ctx, userID, threadID, content)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentUsecase) DeleteComment(ctx context.Context, userID string, params domain.CommentParams) error {
	ret := _m.Called(ctx, userID, params)
	return ret.Error(0)
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)

// ReplyUsecase is a mock type for the ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

func (_m *ReplyUsecase) AddReply(ctx context.Context, userID string, params domain.CommentParams, content string) (domain.AddedReply, error) {
	ret := _m.Called(ctx, userID, params, content)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyUsecase) DeleteReply(ctx context.Context, userID string, params domain.ReplyParams) error {
	ret := _m.Called(ctx, userID, params)
	return ret.Error(0)
}

var _ domain.ReplyUsecase = (*ReplyUsecase)(nil)

// LikeUsecase is a mock type for the LikeUsecase type
type LikeUsecase struct {
	mock.Mock
}

func (_m *LikeUsecase) LikeOrDislikeComment(ctx context.Context, userID string, params domain.CommentParams) (bool, error) {
	ret := _m.Called(ctx, userID, params)
	return ret.Bool(0), ret.Error(1)
}

var _ domain.LikeUsecase = (*LikeUsecase)(nil)
