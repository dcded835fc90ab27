package types

import (
	"time"

	"Plaza/models"
)

// CreatePostReq 发帖请求
type CreatePostReq struct {
	Title         string  `json:"title" binding:"required,min=1,max=200"`
	Content       string  `json:"content" binding:"required,min=1"`
	AttachmentIDs []int64 `json:"attachment_ids"` // 发帖前上传好的附件
}

// UpdatePostReq 编辑帖子请求，空字段表示不改
type UpdatePostReq struct {
	Title   string `json:"title" binding:"omitempty,max=200"`
	Content string `json:"content"`
}

// PostSummary 帖子摘要（列表项）
type PostSummary struct {
	ID           uint64    `json:"id,string"`
	UserID       uint64    `json:"user_id,string"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPostSummary(post *models.Post) *PostSummary {
	return &PostSummary{
		ID:           post.ID,
		UserID:       post.UserID,
		Title:        post.Title,
		Content:      post.Content,
		ViewCount:    post.ViewCount,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}

// PostDetailResponse 帖子详情，附带当前用户的互动状态
type PostDetailResponse struct {
	PostSummary
	IsLiked      bool                  `json:"is_liked"`
	IsBookmarked bool                  `json:"is_bookmarked"`
	Attachments  []*AttachmentResponse `json:"attachments,omitempty"`
}

type PostListResponse struct {
	Posts []*PostSummary `json:"posts"`
	Total int64          `json:"total"`
}

type AttachmentResponse struct {
	ID       int64  `json:"id,string"`
	OssKey   string `json:"oss_key"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func NewAttachmentList(items []*models.Attachment) []*AttachmentResponse {
	list := make([]*AttachmentResponse, 0, len(items))
	for _, a := range items {
		list = append(list, &AttachmentResponse{
			ID:       a.ID,
			OssKey:   a.OssKey,
			FileName: a.FileName,
			MimeType: a.MimeType,
			Width:    a.Width,
			Height:   a.Height,
		})
	}
	return list
}
