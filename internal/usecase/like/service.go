package like

import (
	"context"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type service struct {
	likeRepo    domain.CommentLikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

// LikeOrDislikeComment removes the caller's like if present and adds it
// otherwise. The read and the write are separate statements; the unique
// (comment, owner) index rejects a racing duplicate insert.
func (s *service) LikeOrDislikeComment(ctx context.Context, userID string, params domain.CommentParams) (bool, error) {
	if err := s.threadRepo.CheckThreadAvailability(ctx, params.ThreadID); err != nil {
		return false, err
	}
	if err := s.commentRepo.CheckCommentAvailability(ctx, params.CommentID, params.ThreadID); err != nil {
		return false, err
	}

	like, err := domain.ParseLike(params.CommentID, userID)
	if err != nil {
		return false, err
	}

	liked, err := s.likeRepo.VerifyUserCommentLike(ctx, like)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.likeRepo.DeleteLike(ctx, like)
	}
	if err := s.likeRepo.AddLike(ctx, like); err != nil {
		return false, err
	}
	return true, nil
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.CommentLikeRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}
