package domain

import (
	"context"
	"time"
)

// NewReply is the validated payload of a reply about to be created.
type NewReply struct {
	Content string `json:"content" validate:"required"`
}

func ParseNewReply(content string) (NewReply, error) {
	r := NewReply{Content: content}
	if err := check(r, ErrNewReplyMissingProperty); err != nil {
		return NewReply{}, err
	}
	return r, nil
}

// AddedReply is what the store hands back after persisting a NewReply.
type AddedReply struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

func ParseAddedReply(id, content, owner string) (AddedReply, error) {
	r := AddedReply{ID: id, Content: content, Owner: owner}
	if err := check(r, ErrAddedReplyMissingProperty); err != nil {
		return AddedReply{}, err
	}
	return r, nil
}

// ReplyRecord is a reply row joined with its owner's username.
type ReplyRecord struct {
	ID        string
	CommentID string
	Username  string
	Content   string
	Date      time.Time
	IsDelete  bool
}

// ReplyDetail is a reply as shown under a CommentDetail.
type ReplyDetail struct {
	ID       string    `json:"id" validate:"required"`
	Username string    `json:"username" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Content  string    `json:"content" validate:"required"`
}

// ParseReplyDetail builds a ReplyDetail. The content of a deleted reply is
// always replaced with ReplyDeletedMask.
func ParseReplyDetail(rec ReplyRecord) (ReplyDetail, error) {
	r := ReplyDetail{
		ID:       rec.ID,
		Username: rec.Username,
		Date:     rec.Date,
		Content:  rec.Content,
	}
	if err := check(r, ErrReplyDetailMissingProperty); err != nil {
		return ReplyDetail{}, err
	}
	r.Content = maskDeleted(r.Content, rec.IsDelete, ReplyDeletedMask)
	return r, nil
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	AddReply(ctx context.Context, owner, commentID string, r NewReply) (AddedReply, error)

	// CheckReplyAvailability returns ErrReplyNotFound when the reply doesn't
	// exist, ErrReplyInvalid when it was deleted and ErrReplyNotInComment
	// when it belongs to another comment.
	CheckReplyAvailability(ctx context.Context, replyID, commentID string) error

	// VerifyReplyOwner returns ErrAccessForbidden if owner didn't write the reply.
	VerifyReplyOwner(ctx context.Context, replyID, owner string) error

	// DeleteReplyByID marks the reply deleted. Rows are never removed.
	DeleteReplyByID(ctx context.Context, replyID string) error

	// GetRepliesByThreadID returns every reply under every comment of the
	// thread, deleted ones included, oldest first.
	GetRepliesByThreadID(ctx context.Context, threadID string) ([]ReplyRecord, error)

	// GetRepliesByCommentID returns the replies of one comment, oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRecord, error)
}

// ReplyParams addresses a reply inside a comment inside a thread.
type ReplyParams struct {
	ThreadID  string
	CommentID string
	ReplyID   string
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, userID string, params CommentParams, content string) (AddedReply, error)
	DeleteReply(ctx context.Context, userID string, params ReplyParams) error
}
