package domain

import "context"

// Like is one user's like on one comment. (CommentID, Owner) is its identity.
type Like struct {
	CommentID string `json:"commentId" validate:"required"`
	Owner     string `json:"owner" validate:"required"`
}

func ParseLike(commentID, owner string) (Like, error) {
	l := Like{CommentID: commentID, Owner: owner}
	if err := check(l, ErrLikeMissingProperty); err != nil {
		return Like{}, err
	}
	return l, nil
}

// LikeRecord is a stored like row.
type LikeRecord struct {
	ID        string
	CommentID string
	Owner     string
}

// CommentLikeRepository defines the contract for like persistence.
type CommentLikeRepository interface {
	// AddLike returns ErrLikeConflict if the pair is already stored.
	AddLike(ctx context.Context, l Like) error
	DeleteLike(ctx context.Context, l Like) error
	VerifyUserCommentLike(ctx context.Context, l Like) (bool, error)
	GetLikesByThreadID(ctx context.Context, threadID string) ([]LikeRecord, error)
}

type LikeUsecase interface {
	// LikeOrDislikeComment toggles the caller's like and reports whether
	// the comment is liked afterwards.
	LikeOrDislikeComment(ctx context.Context, userID string, params CommentParams) (bool, error)
}
