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

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
	VoteService     service.IVoteService
}

func (h *Question) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	questions := r.Group("/v1/questions")
	questions.POST("/create", authorize, context.Wrap(h.Create))
	questions.GET("/list", context.Wrap(h.List))
	questions.GET("/:question_id", optional, context.Wrap(h.Get))
	questions.POST("/:question_id/close", authorize, context.Wrap(h.Close))
	questions.POST("/:question_id/delete", authorize, context.Wrap(h.Delete))

	questions.POST("/:question_id/vote", authorize, context.Wrap(h.Vote))
	questions.POST("/:question_id/unvote", authorize, context.Wrap(h.Unvote))
	questions.POST("/:question_id/recount", authorize, middleware.AdminOnly(), context.Wrap(h.Recount))
}

func (h *Question) Create(c *gin.Context) error {
	var req types.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	question, err := h.QuestionService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, question)
	return nil
}

func (h *Question) Get(c *gin.Context) error {
	questionID, err := parseID(c, "question_id")
	if err != nil {
		return err
	}

	currentUserID := uint64(0)
	if uid, err := context.GetUserID(c); err == nil {
		currentUserID = uid
	}

	detail, err := h.QuestionService.Get(c.Request.Context(), questionID, currentUserID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, detail)
	return nil
}

func (h *Question) List(c *gin.Context) error {
	limit, offset := pagination(c)
	questions, total, err := h.QuestionService.List(c.Request.Context(), limit, offset)
	if err != nil {
		return mapError(err)
	}
	response.Success(c, types.QuestionListResponse{Questions: questions, Total: total})
	return nil
}

func (h *Question) Close(c *gin.Context) error {
	questionID, err := parseID(c, "question_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.QuestionService.Close(c.Request.Context(), questionID, userID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Question) Delete(c *gin.Context) error {
	questionID, err := parseID(c, "question_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.QuestionService.Delete(c.Request.Context(), questionID, userID, context.IsAdmin(c)); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Question) Vote(c *gin.Context) error {
	return voteTarget(c, h.VoteService, service.VoteQuestion, "question_id")
}

func (h *Question) Unvote(c *gin.Context) error {
	return unvoteTarget(c, h.VoteService, service.VoteQuestion, "question_id")
}

func (h *Question) Recount(c *gin.Context) error {
	questionID, err := parseID(c, "question_id")
	if err != nil {
		return err
	}
	if err := h.VoteService.Recount(c.Request.Context(), service.VoteQuestion, questionID); err != nil {
		return mapError(err)
	}
	response.Success(c, nil)
	return nil
}

// voteTarget 问题和回答共用的投票入口
func voteTarget(c *gin.Context, votes service.IVoteService, target service.VoteTarget, param string) error {
	targetID, err := parseID(c, param)
	if err != nil {
		return err
	}
	var req types.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	state, err := votes.Vote(c.Request.Context(), target, targetID, userID, types.ParseVoteType(req.VoteType))
	if err != nil {
		return mapError(err)
	}

	response.Success(c, state)
	return nil
}

func unvoteTarget(c *gin.Context, votes service.IVoteService, target service.VoteTarget, param string) error {
	targetID, err := parseID(c, param)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	state, _, err := votes.RemoveVote(c.Request.Context(), target, targetID, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, state)
	return nil
}
