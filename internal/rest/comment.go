package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req request.Content
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err, domain.ErrNewCommentMissingProperty, domain.ErrNewCommentInvalidType))
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), uid, c.Param("threadId"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedComment{AddedComment: added}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), uid, domain.CommentParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
