package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) AddReply(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req request.Content
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err, domain.ErrNewReplyMissingProperty, domain.ErrNewReplyInvalidType))
		return
	}

	params := domain.CommentParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	}
	added, err := h.Service.AddReply(c.Request.Context(), uid, params, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedReply{AddedReply: added}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), uid, domain.ReplyParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		ReplyID:   c.Param("replyId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
