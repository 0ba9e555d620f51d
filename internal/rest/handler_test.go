package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/rest"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type usecases struct {
	thread  *mocks.ThreadUsecase
	comment *mocks.CommentUsecase
	reply   *mocks.ReplyUsecase
	like    *mocks.LikeUsecase
}

// fakeAuth authenticates every request as user-123.
func fakeAuth(c *gin.Context) {
	c.Set("user_id", "user-123")
	c.Next()
}

func newRouter(auth gin.HandlerFunc) (*gin.Engine, usecases) {
	u := usecases{
		thread:  new(mocks.ThreadUsecase),
		comment: new(mocks.CommentUsecase),
		reply:   new(mocks.ReplyUsecase),
		like:    new(mocks.LikeUsecase),
	}
	r := gin.New()
	rest.RegisterRoutes(r, rest.Handlers{
		Thread:  rest.NewThreadHandler(u.thread),
		Comment: rest.NewCommentHandler(u.comment),
		Reply:   rest.NewReplyHandler(u.reply),
		Like:    rest.NewLikeHandler(u.like),
	}, auth)
	return r, u
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestAddThreadHandler(t *testing.T) {
	payload := domain.AddThreadPayload{Title: "sebuah thread", Body: "sebuah body thread"}

	t.Run("created", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		added := domain.AddedThread{ID: "thread-123", Title: payload.Title, Owner: "user-123"}
		u.thread.On("AddThread", mock.Anything, "user-123", payload).Return(added, nil).Once()

		code, env := do(t, r, http.MethodPost, "/threads", `{"title":"sebuah thread","body":"sebuah body thread"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "success", env.Status)
		assert.JSONEq(t, `{"addedThread":{"id":"thread-123","title":"sebuah thread","owner":"user-123"}}`, string(env.Data))
	})

	t.Run("wrong-type", func(t *testing.T) {
		r, u := newRouter(fakeAuth)

		code, env := do(t, r, http.MethodPost, "/threads", `{"title":123,"body":"sebuah body thread"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "tidak dapat membuat thread baru karena tipe data tidak sesuai", env.Message)
		u.thread.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing-property", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.thread.On("AddThread", mock.Anything, "user-123", domain.AddThreadPayload{Title: "sebuah thread"}).
			Return(domain.AddedThread{}, domain.ErrNewThreadMissingProperty).Once()

		code, env := do(t, r, http.MethodPost, "/threads", `{"title":"sebuah thread"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", env.Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r, u := newRouter(middleware.AuthMiddleware("secret"))

		code, env := do(t, r, http.MethodPost, "/threads", `{"title":"a","body":"b"}`)

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "fail", env.Status)
		u.thread.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("server-error", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.thread.On("AddThread", mock.Anything, "user-123", payload).
			Return(domain.AddedThread{}, errors.New("dial tcp: connection refused")).Once()

		code, env := do(t, r, http.MethodPost, "/threads", `{"title":"sebuah thread","body":"sebuah body thread"}`)

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, "terjadi kegagalan pada server kami", env.Message)
	})
}

func TestGetThreadDetailHandler(t *testing.T) {
	date := time.Date(2021, 8, 8, 7, 19, 9, 775000000, time.UTC)

	t.Run("ok", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.thread.On("GetThreadDetail", mock.Anything, "thread-123").Return(domain.ThreadDetail{
			ID: "thread-123", Title: "sebuah thread", Body: "sebuah body thread", Date: date, Username: "dicoding",
			Comments: []domain.CommentDetail{{
				ID: "comment-123", Username: "johndoe", Date: date, Content: domain.CommentDeletedMask,
				Replies: []domain.ReplyDetail{}, LikeCount: 2,
			}},
		}, nil).Once()

		code, env := do(t, r, http.MethodGet, "/threads/thread-123", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"thread":{
			"id":"thread-123","title":"sebuah thread","body":"sebuah body thread",
			"date":"2021-08-08T07:19:09.775Z","username":"dicoding",
			"comments":[{"id":"comment-123","username":"johndoe","date":"2021-08-08T07:19:09.775Z",
				"content":"**komentar telah dihapus**","replies":[],"likeCount":2}]
		}}`, string(env.Data))
	})

	t.Run("not-found", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.thread.On("GetThreadDetail", mock.Anything, "thread-404").Return(domain.ThreadDetail{}, domain.ErrThreadNotFound).Once()

		code, env := do(t, r, http.MethodGet, "/threads/thread-404", "")

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "thread tidak ditemukan", env.Message)
	})
}

func TestCommentHandlers(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.comment.On("AddComment", mock.Anything, "user-123", "thread-123", "a comment").
			Return(domain.AddedComment{ID: "comment-123", Content: "a comment", Owner: "user-123"}, nil).Once()

		code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments", `{"content":"a comment"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.JSONEq(t, `{"addedComment":{"id":"comment-123","content":"a comment","owner":"user-123"}}`, string(env.Data))
	})

	t.Run("add-non-string", func(t *testing.T) {
		r, _ := newRouter(fakeAuth)

		code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments", `{"content":["a"]}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "komentar harus berupa string", env.Message)
	})

	t.Run("delete-forbidden", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		params := domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}
		u.comment.On("DeleteComment", mock.Anything, "user-123", params).Return(domain.ErrAccessForbidden).Once()

		code, env := do(t, r, http.MethodDelete, "/threads/thread-123/comments/comment-123", "")

		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "akses dilarang", env.Message)
	})

	t.Run("delete-ok", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		params := domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}
		u.comment.On("DeleteComment", mock.Anything, "user-123", params).Return(nil).Once()

		code, env := do(t, r, http.MethodDelete, "/threads/thread-123/comments/comment-123", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", env.Status)
		assert.Empty(t, env.Data)
	})
}

func TestReplyHandlers(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		params := domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}
		u.reply.On("AddReply", mock.Anything, "user-123", params, "a reply").
			Return(domain.AddedReply{ID: "reply-123", Content: "a reply", Owner: "user-123"}, nil).Once()

		code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments/comment-123/replies", `{"content":"a reply"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.JSONEq(t, `{"addedReply":{"id":"reply-123","content":"a reply","owner":"user-123"}}`, string(env.Data))
	})

	t.Run("add-to-deleted-comment", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		params := domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}
		u.reply.On("AddReply", mock.Anything, "user-123", params, "a reply").
			Return(domain.AddedReply{}, domain.ErrCommentInvalid).Once()

		code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments/comment-123/replies", `{"content":"a reply"}`)

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "komentar tidak valid", env.Message)
	})

	t.Run("delete", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		params := domain.ReplyParams{ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123"}
		u.reply.On("DeleteReply", mock.Anything, "user-123", params).Return(nil).Once()

		code, env := do(t, r, http.MethodDelete, "/threads/thread-123/comments/comment-123/replies/reply-123", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", env.Status)
	})
}

func TestLikeHandler(t *testing.T) {
	params := domain.CommentParams{ThreadID: "thread-123", CommentID: "comment-123"}

	t.Run("toggled", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.like.On("LikeOrDislikeComment", mock.Anything, "user-123", params).Return(true, nil).Once()

		code, env := do(t, r, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "")

		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"liked":true}`, string(env.Data))
	})

	t.Run("conflict", func(t *testing.T) {
		r, u := newRouter(fakeAuth)
		u.like.On("LikeOrDislikeComment", mock.Anything, "user-123", params).Return(false, domain.ErrLikeConflict).Once()

		code, env := do(t, r, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "")

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "fail", env.Status)
	})
}
