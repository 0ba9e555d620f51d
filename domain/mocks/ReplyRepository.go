package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// ReplyRepository is a mock type for the ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

func (_m *ReplyRepository) AddReply(ctx context.Context, owner, commentID string, r domain.NewReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, owner, commentID, r)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyRepository) CheckReplyAvailability(ctx context.Context, replyID, commentID string) error {
	ret := _m.Called(ctx, replyID, commentID)
	return ret.Error(0)
}

func (_m *ReplyRepository) VerifyReplyOwner(ctx context.Context, replyID, owner string) error {
	ret := _m.Called(ctx, replyID, owner)
	return ret.Error(0)
}

func (_m *ReplyRepository) DeleteReplyByID(ctx context.Context, replyID string) error {
	ret := _m.Called(ctx, replyID)
	return ret.Error(0)
}

func (_m *ReplyRepository) GetRepliesByThreadID(ctx context.Context, threadID string) ([]domain.ReplyRecord, error) {
	ret := _m.Called(ctx, threadID)
	recs, _ := ret.Get(0).([]domain.ReplyRecord)
	return recs, ret.Error(1)
}

func (_m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	ret := _m.Called(ctx, commentID)
	recs, _ := ret.Get(0).([]domain.ReplyRecord)
	return recs, ret.Error(1)
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)
