package models

import "time"

// 实体状态: 1-正常, 0-已删除
const (
	StatusDeleted int8 = 0
	StatusNormal  int8 = 1
)

// Post 帖子表
// view_count / like_count / comment_count 为派生计数，
// 以各互动记录表为准，可随时通过重算对账
type Post struct {
	ID           uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_post_userid_status" json:"user_id"`
	Title        string    `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Content      string    `gorm:"column:content;type:text" json:"content"`
	ViewCount    int64     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	Status       int8      `gorm:"column:status;not null;default:1;index:idx_post_userid_status" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index:idx_post_created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
