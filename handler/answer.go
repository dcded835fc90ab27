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

type Answer struct {
	Config        *config.Config
	AnswerService service.IAnswerService
	VoteService   service.IVoteService
}

func (h *Answer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.Group("/v1/questions").POST("/:question_id/answers", authorize, context.Wrap(h.Create))

	answers := r.Group("/v1/answers")
	answers.POST("/:answer_id/delete", authorize, context.Wrap(h.Delete))
	answers.POST("/:answer_id/accept", authorize, context.Wrap(h.Accept))
	answers.POST("/:answer_id/unaccept", authorize, context.Wrap(h.Unaccept))
	answers.POST("/:answer_id/vote", authorize, context.Wrap(h.Vote))
	answers.POST("/:answer_id/unvote", authorize, context.Wrap(h.Unvote))
}

func (h *Answer) Create(c *gin.Context) error {
	questionID, err := parseID(c, "question_id")
	if err != nil {
		return err
	}
	var req types.CreateAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	answer, err := h.AnswerService.CreateAnswer(c.Request.Context(), questionID, req.Content, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, answer)
	return nil
}

func (h *Answer) Delete(c *gin.Context) error {
	answerID, err := parseID(c, "answer_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.AnswerService.DeleteAnswer(c.Request.Context(), answerID, userID, context.IsAdmin(c)); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

// Accept 采纳回答，question_id 放在请求体里
func (h *Answer) Accept(c *gin.Context) error {
	return h.doAccept(c, true)
}

// Unaccept 取消采纳
func (h *Answer) Unaccept(c *gin.Context) error {
	return h.doAccept(c, false)
}

type acceptReq struct {
	QuestionID uint64 `json:"question_id,string" binding:"required"`
}

func (h *Answer) doAccept(c *gin.Context, accept bool) error {
	answerID, err := parseID(c, "answer_id")
	if err != nil {
		return err
	}
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	ctx := c.Request.Context()
	if accept {
		err = h.AnswerService.Accept(ctx, req.QuestionID, answerID, userID)
	} else {
		err = h.AnswerService.Unaccept(ctx, req.QuestionID, answerID, userID)
	}
	if err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Answer) Vote(c *gin.Context) error {
	return voteTarget(c, h.VoteService, service.VoteAnswer, "answer_id")
}

func (h *Answer) Unvote(c *gin.Context) error {
	return unvoteTarget(c, h.VoteService, service.VoteAnswer, "answer_id")
}
