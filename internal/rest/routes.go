package rest

import "github.com/gin-gonic/gin"

type Handlers struct {
	Thread  *ThreadHandler
	Comment *CommentHandler
	Reply   *ReplyHandler
	Like    *LikeHandler
}

// RegisterRoutes mounts the forum API on r. Every route except reading a
// thread goes through auth.
func RegisterRoutes(r gin.IRouter, h Handlers, auth gin.HandlerFunc) {
	r.GET("/threads/:threadId", h.Thread.GetThreadDetail)

	authorized := r.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.AddThread)
		authorized.POST("/threads/:threadId/comments", h.Comment.AddComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.AddReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.ToggleLike)
	}
}
