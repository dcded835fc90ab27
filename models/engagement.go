package models

import "time"

// 投票方向
const (
	VoteUp   int8 = 1
	VoteDown int8 = -1
)

// PostLike 帖子点赞记录
// 唯一键: post_id + user_id
type PostLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_post_like_user,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_post_like_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PostLike) TableName() string { return "post_likes" }

// CommentLike 评论点赞记录
// 唯一键: comment_id + user_id
type CommentLike struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;not null;uniqueIndex:uk_comment_user,priority:1" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_comment_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentLike) TableName() string { return "comment_likes" }

// Bookmark 帖子收藏记录
// 唯一键: post_id + user_id
type Bookmark struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_bookmark_user,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_bookmark_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Bookmark) TableName() string { return "bookmarks" }

// QuestionVote 问题投票记录
// 唯一键: question_id + user_id；切换方向时原地改 vote_type
type QuestionVote struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	QuestionID uint64    `gorm:"column:question_id;not null;uniqueIndex:uk_question_user,priority:1" json:"question_id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_question_user,priority:2" json:"user_id"`
	VoteType   int8      `gorm:"column:vote_type;not null" json:"vote_type"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionVote) TableName() string { return "question_votes" }

// AnswerVote 回答投票记录
// 唯一键: answer_id + user_id
type AnswerVote struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AnswerID  uint64    `gorm:"column:answer_id;not null;uniqueIndex:uk_answer_user,priority:1" json:"answer_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_answer_user,priority:2" json:"user_id"`
	VoteType  int8      `gorm:"column:vote_type;not null" json:"vote_type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnswerVote) TableName() string { return "answer_votes" }

// ViewRecord 浏览记录，只追加不删除
// 登录用户按 user_id 去重，匿名用户按 ip_address 去重
type ViewRecord struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_user;index:idx_post_ip" json:"post_id"`
	UserID    *uint64   `gorm:"column:user_id;index:idx_post_user" json:"user_id,omitempty"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45);not null;default:'';index:idx_post_ip" json:"ip_address"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ViewRecord) TableName() string { return "view_records" }
