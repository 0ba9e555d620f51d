package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// ToggleLike likes the comment, or takes the like back if it was already given
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	liked, err := h.Service.LikeOrDislikeComment(c.Request.Context(), uid, domain.CommentParams{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.LikeState{Liked: liked}))
}
