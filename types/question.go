package types

import (
	"time"

	"Plaza/models"
)

// CreateQuestionReq 提问请求
type CreateQuestionReq struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content"`
}

// CreateAnswerReq 回答请求
type CreateAnswerReq struct {
	Content string `json:"content" binding:"required,min=1"`
}

// QuestionResponse 问题摘要
type QuestionResponse struct {
	ID               uint64    `json:"id,string"`
	UserID           uint64    `json:"user_id,string"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Status           string    `json:"status"`
	AcceptedAnswerID *uint64   `json:"accepted_answer_id,omitempty"`
	AnswerCount      int64     `json:"answer_count"`
	VoteCount        int64     `json:"vote_count"`
	UpVoteCount      int64     `json:"up_vote_count"`
	DownVoteCount    int64     `json:"down_vote_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewQuestionResponse(q *models.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:               q.ID,
		UserID:           q.UserID,
		Title:            q.Title,
		Content:          q.Content,
		Status:           QuestionStatusString(q.QuestionStatus),
		AcceptedAnswerID: q.AcceptedAnswerID,
		AnswerCount:      q.AnswerCount,
		VoteCount:        q.VoteCount,
		UpVoteCount:      q.UpVoteCount,
		DownVoteCount:    q.DownVoteCount,
		CreatedAt:        q.CreatedAt,
	}
}

// QuestionStatusString 问题状态的对外表示
func QuestionStatusString(status int8) string {
	switch status {
	case models.QuestionAnswered:
		return "answered"
	case models.QuestionClosed:
		return "closed"
	default:
		return "open"
	}
}

// QuestionDetailResponse 问题详情，回答里已采纳的排最前
type QuestionDetailResponse struct {
	QuestionResponse
	CurrentUserVote string            `json:"current_user_vote"`
	Answers         []*AnswerResponse `json:"answers"`
}

// AnswerResponse 回答响应
type AnswerResponse struct {
	ID              uint64    `json:"id,string"`
	QuestionID      uint64    `json:"question_id,string"`
	UserID          uint64    `json:"user_id,string"`
	Content         string    `json:"content"`
	IsAccepted      bool      `json:"is_accepted"`
	VoteCount       int64     `json:"vote_count"`
	UpVoteCount     int64     `json:"up_vote_count"`
	DownVoteCount   int64     `json:"down_vote_count"`
	CurrentUserVote string    `json:"current_user_vote"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewAnswerResponse(a *models.Answer) *AnswerResponse {
	return &AnswerResponse{
		ID:            a.ID,
		QuestionID:    a.QuestionID,
		UserID:        a.UserID,
		Content:       a.Content,
		IsAccepted:    a.IsAccepted,
		VoteCount:     a.VoteCount,
		UpVoteCount:   a.UpVoteCount,
		DownVoteCount: a.DownVoteCount,
		CreatedAt:     a.CreatedAt,
	}
}

type QuestionListResponse struct {
	Questions []*QuestionResponse `json:"questions"`
	Total     int64               `json:"total"`
}
