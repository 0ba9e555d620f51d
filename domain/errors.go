package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller does not own the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrUnauthorized will throw if the caller is not authenticated
	ErrUnauthorized = errors.New("missing or invalid authentication")
	// ErrCacheMiss is returned by cache adapters when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)

// Error is a concrete failure that belongs to one of the kinds above.
// errors.Is matches both the exact value and its kind.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the sentinel this error belongs to.
func (e *Error) Kind() error {
	return e.kind
}

// Not found variants. Callers map them to the same status but the messages
// must stay distinguishable.
var (
	ErrThreadNotFound     = newError(ErrNotFound, "thread tidak ditemukan")
	ErrCommentNotFound    = newError(ErrNotFound, "komentar tidak ditemukan")
	ErrCommentInvalid     = newError(ErrNotFound, "komentar tidak valid")
	ErrCommentNotInThread = newError(ErrNotFound, "komentar dalam thread tidak ditemukan")
	ErrReplyNotFound      = newError(ErrNotFound, "balasan tidak ditemukan")
	ErrReplyInvalid       = newError(ErrNotFound, "balasan tidak valid")
	ErrReplyNotInComment  = newError(ErrNotFound, "balasan dalam komentar tidak ditemukan")

	ErrAccessForbidden = newError(ErrForbidden, "akses dilarang")
	ErrLikeConflict    = newError(ErrConflict, "like untuk komentar ini sudah tercatat")
)

// Validation errors raised by the Parse* constructors.
var (
	ErrNewThreadMissingProperty   = newError(ErrBadParamInput, "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNewThreadInvalidType       = newError(ErrBadParamInput, "NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedThreadMissingProperty = newError(ErrBadParamInput, "ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrThreadDetailMissingProperty = newError(ErrBadParamInput, "THREAD_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrNewCommentMissingProperty    = newError(ErrBadParamInput, "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNewCommentInvalidType        = newError(ErrBadParamInput, "NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedCommentMissingProperty  = newError(ErrBadParamInput, "ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentDetailMissingProperty = newError(ErrBadParamInput, "COMMENT_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrCommentDetailInvalidType     = newError(ErrBadParamInput, "COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")

	ErrNewReplyMissingProperty    = newError(ErrBadParamInput, "NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrNewReplyInvalidType        = newError(ErrBadParamInput, "NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrAddedReplyMissingProperty  = newError(ErrBadParamInput, "ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrReplyDetailMissingProperty = newError(ErrBadParamInput, "REPLY_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")

	ErrLikeMissingProperty = newError(ErrBadParamInput, "LIKE.NOT_CONTAIN_NEEDED_PROPERTY")
)
