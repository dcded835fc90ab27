package types

import (
	"time"

	"Plaza/models"
)

// CreateCommentRequest 发评论请求
type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id,string" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// ReplyCommentRequest 回复评论请求
type ReplyCommentRequest struct {
	ParentID uint64 `json:"parent_id,string" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentResponse 评论响应。已删除的评论保留楼层，
// 正文统一渲染为占位内容
type CommentResponse struct {
	ID        uint64    `json:"id,string"`
	PostID    uint64    `json:"post_id,string"`
	UserID    uint64    `json:"user_id,string"`
	ParentID  uint64    `json:"parent_id,string"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`

	Replies []*CommentResponse `json:"replies,omitempty"`
}

func NewCommentResponse(c *models.Comment, isLiked bool) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		IsLiked:   isLiked,
		IsDeleted: c.IsDeleted(),
		CreatedAt: c.CreatedAt,
	}
	if resp.IsDeleted {
		resp.Content = models.DeletedContent
		resp.IsLiked = false
	}
	return resp
}

type CommentsListResponse struct {
	Comments     []*CommentResponse `json:"comments"`
	CommentCount int64              `json:"comment_count"`
}
