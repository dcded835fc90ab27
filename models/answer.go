package models

import "time"

// Answer 回答表
// 同一问题至多一条 is_accepted = true 的有效回答；
// 已采纳的回答不允许删除
type Answer struct {
	ID            uint64    `gorm:"column:id;primaryKey" json:"id"`
	QuestionID    uint64    `gorm:"column:question_id;not null;index:idx_question_id" json:"question_id"`
	UserID        uint64    `gorm:"column:user_id;not null;index:idx_answer_user_id" json:"user_id"`
	Content       string    `gorm:"column:content;type:text;not null" json:"content"`
	IsAccepted    bool      `gorm:"column:is_accepted;not null;default:false" json:"is_accepted"`
	VoteCount     int64     `gorm:"column:vote_count;not null;default:0" json:"vote_count"`
	UpVoteCount   int64     `gorm:"column:up_vote_count;not null;default:0" json:"up_vote_count"`
	DownVoteCount int64     `gorm:"column:down_vote_count;not null;default:0" json:"down_vote_count"`
	Status        int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Answer) TableName() string { return "answers" }
