package domain

import (
	"context"
	"time"
)

// NewThread is the validated payload of a thread about to be created.
type NewThread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// ParseNewThread validates a raw thread payload.
func ParseNewThread(title, body string) (NewThread, error) {
	t := NewThread{Title: title, Body: body}
	if err := check(t, ErrNewThreadMissingProperty); err != nil {
		return NewThread{}, err
	}
	return t, nil
}

// AddedThread is what the store hands back after persisting a NewThread.
type AddedThread struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Owner string `json:"owner" validate:"required"`
}

func ParseAddedThread(id, title, owner string) (AddedThread, error) {
	t := AddedThread{ID: id, Title: title, Owner: owner}
	if err := check(t, ErrAddedThreadMissingProperty); err != nil {
		return AddedThread{}, err
	}
	return t, nil
}

// ThreadRecord is a thread header row joined with its owner's username.
type ThreadRecord struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// ThreadDetail is the fully assembled view of a thread.
type ThreadDetail struct {
	ID       string          `json:"id" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Body     string          `json:"body" validate:"required"`
	Date     time.Time       `json:"date" validate:"required"`
	Username string          `json:"username" validate:"required"`
	Comments []CommentDetail `json:"comments"`
}

// ParseThreadDetail builds a ThreadDetail from a header record and its
// already assembled comments. A nil comment list becomes an empty one.
func ParseThreadDetail(rec ThreadRecord, comments []CommentDetail) (ThreadDetail, error) {
	if comments == nil {
		comments = []CommentDetail{}
	}
	t := ThreadDetail{
		ID:       rec.ID,
		Title:    rec.Title,
		Body:     rec.Body,
		Date:     rec.Date,
		Username: rec.Username,
		Comments: comments,
	}
	if err := check(t, ErrThreadDetailMissingProperty); err != nil {
		return ThreadDetail{}, err
	}
	return t, nil
}

// ThreadRepository defines the contract for thread persistence used by the use cases.
type ThreadRepository interface {
	// AddThread persists a thread owned by owner.
	AddThread(ctx context.Context, owner string, t NewThread) (AddedThread, error)

	// CheckThreadAvailability returns ErrThreadNotFound if the thread doesn't exist.
	CheckThreadAvailability(ctx context.Context, threadID string) error

	// GetThreadByID returns ErrThreadNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (ThreadRecord, error)
}

// ThreadDBRepository is the storage-only half of ThreadRepository.
type ThreadDBRepository interface {
	ThreadRepository

	// FetchIDs returns up to limit thread ids greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

// ThreadCache keeps thread headers. Headers never change once written.
type ThreadCache interface {
	// GetThread returns ErrCacheMiss when the header isn't cached.
	GetThread(ctx context.Context, threadID string) (ThreadRecord, error)
	SetThread(ctx context.Context, rec ThreadRecord) error
}

// AddThreadPayload is the raw request for AddThread.
type AddThreadPayload struct {
	Title string
	Body  string
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, userID string, payload AddThreadPayload) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
	InitThreadIndex(ctx context.Context) error
}
