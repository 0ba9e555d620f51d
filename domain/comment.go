package domain

import (
	"context"
	"time"
)

// NewComment is the validated payload of a comment about to be created.
type NewComment struct {
	Content string `json:"content" validate:"required"`
}

func ParseNewComment(content string) (NewComment, error) {
	c := NewComment{Content: content}
	if err := check(c, ErrNewCommentMissingProperty); err != nil {
		return NewComment{}, err
	}
	return c, nil
}

// AddedComment is what the store hands back after persisting a NewComment.
type AddedComment struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

func ParseAddedComment(id, content, owner string) (AddedComment, error) {
	c := AddedComment{ID: id, Content: content, Owner: owner}
	if err := check(c, ErrAddedCommentMissingProperty); err != nil {
		return AddedComment{}, err
	}
	return c, nil
}

// CommentRecord is a comment row joined with its owner's username.
type CommentRecord struct {
	ID       string
	Username string
	Content  string
	Date     time.Time
	IsDelete bool
}

// CommentDetail is a comment as shown inside a ThreadDetail.
type CommentDetail struct {
	ID        string        `json:"id" validate:"required"`
	Username  string        `json:"username" validate:"required"`
	Date      time.Time     `json:"date" validate:"required"`
	Content   string        `json:"content" validate:"required"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int           `json:"likeCount" validate:"gte=0"`
}

// ParseCommentDetail builds a CommentDetail. The content of a deleted
// comment is always replaced with CommentDeletedMask.
func ParseCommentDetail(rec CommentRecord, replies []ReplyDetail, likeCount int) (CommentDetail, error) {
	if replies == nil {
		replies = []ReplyDetail{}
	}
	c := CommentDetail{
		ID:        rec.ID,
		Username:  rec.Username,
		Date:      rec.Date,
		Content:   rec.Content,
		Replies:   replies,
		LikeCount: likeCount,
	}
	if err := checkTyped(c, ErrCommentDetailMissingProperty, ErrCommentDetailInvalidType); err != nil {
		return CommentDetail{}, err
	}
	c.Content = maskDeleted(c.Content, rec.IsDelete, CommentDeletedMask)
	return c, nil
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	AddComment(ctx context.Context, owner, threadID string, c NewComment) (AddedComment, error)

	// CheckCommentAvailability returns ErrCommentNotFound when the comment
	// doesn't exist, ErrCommentInvalid when it was deleted and
	// ErrCommentNotInThread when it belongs to another thread.
	CheckCommentAvailability(ctx context.Context, commentID, threadID string) error

	// VerifyCommentOwner returns ErrAccessForbidden if owner didn't write the comment.
	VerifyCommentOwner(ctx context.Context, commentID, owner string) error

	// DeleteCommentByID marks the comment deleted. Rows are never removed.
	DeleteCommentByID(ctx context.Context, commentID string) error

	// GetCommentsByThreadID returns every comment of the thread, deleted
	// ones included, oldest first.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRecord, error)
}

// CommentParams addresses a comment inside a thread.
type CommentParams struct {
	ThreadID  string
	CommentID string
}

type CommentUsecase interface {
	AddComment(ctx context.Context, userID, threadID string, content string) (AddedComment, error)
	DeleteComment(ctx context.Context, userID string, params CommentParams) error
}
