package models

import "time"

// 问题状态
const (
	QuestionOpen     int8 = 0 // 待解决
	QuestionAnswered int8 = 1 // 已采纳回答
	QuestionClosed   int8 = 2 // 已关闭
)

// Question 问题表
// 不变式: accepted_answer_id 非空 <=> question_status = 已采纳
// vote_count 恒等于 up_vote_count - down_vote_count
type Question struct {
	ID               uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID           uint64    `gorm:"column:user_id;not null;index:idx_question_userid_status" json:"user_id"`
	Title            string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content          string    `gorm:"column:content;type:text" json:"content"`
	QuestionStatus   int8      `gorm:"column:question_status;not null;default:0" json:"question_status"`
	AcceptedAnswerID *uint64   `gorm:"column:accepted_answer_id" json:"accepted_answer_id,omitempty"`
	AnswerCount      int64     `gorm:"column:answer_count;not null;default:0" json:"answer_count"`
	VoteCount        int64     `gorm:"column:vote_count;not null;default:0" json:"vote_count"`
	UpVoteCount      int64     `gorm:"column:up_vote_count;not null;default:0" json:"up_vote_count"`
	DownVoteCount    int64     `gorm:"column:down_vote_count;not null;default:0" json:"down_vote_count"`
	Status           int8      `gorm:"column:status;not null;default:1;index:idx_question_userid_status" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime;index:idx_question_created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Question) TableName() string { return "questions" }
