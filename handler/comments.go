package handler

import (
	"net/http"

	"Plaza/config"
	"Plaza/middleware"
	"Plaza/pkg/context"
	"Plaza/pkg/response"
	"Plaza/service"
	"Plaza/types"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentsService
	LikeService     service.ILikeService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	secret := []byte(ch.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	comments := r.Group("/v1/comments")
	comments.POST("/create", authorize, context.Wrap(ch.CreateComment))
	comments.POST("/reply", authorize, context.Wrap(ch.ReplyComment))
	comments.GET("/list/:post_id", optional, context.Wrap(ch.GetComments))
	comments.POST("/:comment_id/delete", authorize, context.Wrap(ch.DeleteComment))
	comments.POST("/:comment_id/like", authorize, context.Wrap(ch.LikeComment))
	comments.POST("/:comment_id/unlike", authorize, context.Wrap(ch.UnlikeComment))
}

// CreateComment 创建一级评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	comment, err := ch.CommentsService.CreateComment(c.Request.Context(), req.PostID, req.Content, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, comment)
	return nil
}

// ReplyComment 回复评论，只允许回复一级评论
func (ch *CommentsHandler) ReplyComment(c *gin.Context) error {
	var req types.ReplyCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	comment, err := ch.CommentsService.Reply(c.Request.Context(), req.ParentID, req.Content, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, comment)
	return nil
}

// GetComments 获取帖子的两级评论列表
func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}

	currentUserID := uint64(0)
	if uid, err := context.GetUserID(c); err == nil {
		currentUserID = uid
	}

	result, err := ch.CommentsService.ListComments(c.Request.Context(), postID, currentUserID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, result)
	return nil
}

func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := ch.CommentsService.DeleteComment(c.Request.Context(), commentID, userID, context.IsAdmin(c)); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (ch *CommentsHandler) LikeComment(c *gin.Context) error {
	return ch.doLike(c, true)
}

func (ch *CommentsHandler) UnlikeComment(c *gin.Context) error {
	return ch.doLike(c, false)
}

func (ch *CommentsHandler) doLike(c *gin.Context, like bool) error {
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var state *types.LikeState
	if like {
		state, err = ch.LikeService.Like(c.Request.Context(), service.LikeComment, commentID, userID)
	} else {
		state, err = ch.LikeService.Unlike(c.Request.Context(), service.LikeComment, commentID, userID)
	}
	if err != nil {
		return mapError(err)
	}

	response.Success(c, state)
	return nil
}
