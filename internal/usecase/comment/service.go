package comment

import (
	"context"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

func (s *service) AddComment(ctx context.Context, userID, threadID string, content string) (domain.AddedComment, error) {
	if err := s.threadRepo.CheckThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}
	newComment, err := domain.ParseNewComment(content)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.AddComment(ctx, userID, threadID, newComment)
}

// DeleteComment checks, in order, that the thread exists, that the comment
// lives in it, and that userID owns it before soft-deleting the comment.
func (s *service) DeleteComment(ctx context.Context, userID string, params domain.CommentParams) error {
	if err := s.threadRepo.CheckThreadAvailability(ctx, params.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckCommentAvailability(ctx, params.CommentID, params.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, params.CommentID, userID); err != nil {
		return err
	}
	return s.commentRepo.DeleteCommentByID(ctx, params.CommentID)
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}
