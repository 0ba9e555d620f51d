package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) AddComment(ctx context.Context, owner, threadID string, c domain.NewComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, owner, threadID, c)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentRepository) CheckCommentAvailability(ctx context.Context, commentID, threadID string) error {
	ret := _m.Called(ctx, commentID, threadID)
	return ret.Error(0)
}

func (_m *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, owner string) error {
	ret := _m.Called(ctx, commentID, owner)
	return ret.Error(0)
}

func (_m *CommentRepository) DeleteCommentByID(ctx context.Context, commentID string) error {
	ret := _m.Called(ctx, commentID)
	return ret.Error(0)
}

func (_m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	ret := _m.Called(ctx, threadID)
	recs, _ := ret.Get(0).([]domain.CommentRecord)
	return recs, ret.Error(1)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
