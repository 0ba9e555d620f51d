package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
	"github.com/Guyuepp/go-clean-forum/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// AddThread will store the thread by given request body
func (h *ThreadHandler) AddThread(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req request.Thread
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(err, domain.ErrNewThreadMissingProperty, domain.ErrNewThreadInvalidType))
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), uid, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedThread{AddedThread: added}))
}

// GetThreadDetail will get the thread with its comments, replies and likes
func (h *ThreadHandler) GetThreadDetail(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.NewThreadFromDomain(detail)))
}
