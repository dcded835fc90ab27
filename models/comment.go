package models

import "time"

// DeletedContent 删除后展示的占位内容
const DeletedContent = "该评论已删除"

// Comment 评论表
// parent_id = 0 表示一级评论；仅允许一层回复，
// parent_id 非 0 的评论不能再被回复
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_parent" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comment_user_id" json:"user_id"`
	ParentID  uint64    `gorm:"column:parent_id;not null;default:0;index:idx_post_parent;index:idx_parent_id" json:"parent_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	LikeCount int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	Status    int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

// IsDeleted 评论是否已删除，已删除的评论渲染占位内容
func (c *Comment) IsDeleted() bool {
	return c.Status == StatusDeleted
}
