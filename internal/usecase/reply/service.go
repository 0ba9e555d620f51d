package reply

import (
	"context"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

func (s *service) AddReply(ctx context.Context, userID string, params domain.CommentParams, content string) (domain.AddedReply, error) {
	if err := s.threadRepo.CheckThreadAvailability(ctx, params.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.CheckCommentAvailability(ctx, params.CommentID, params.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	newReply, err := domain.ParseNewReply(content)
	if err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.AddReply(ctx, userID, params.CommentID, newReply)
}

// DeleteReply walks thread, comment, reply and ownership checks in that
// order and stops at the first failure.
func (s *service) DeleteReply(ctx context.Context, userID string, params domain.ReplyParams) error {
	if err := s.threadRepo.CheckThreadAvailability(ctx, params.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentAvailability(ctx, params.CommentID, params.ThreadID); err != nil {
		return err
	}
	if err := s.replyRepo.CheckReplyAvailability(ctx, params.ReplyID, params.CommentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, params.ReplyID, userID); err != nil {
		return err
	}
	return s.replyRepo.DeleteReplyByID(ctx, params.ReplyID)
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}
