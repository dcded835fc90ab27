package dao

import (
	"context"
	"errors"

	"Plaza/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// GetByID 按 ID 查询评论，可见性过滤为显式参数。
// 删除级联需要看到已删除的父节点，所以不能把过滤藏在查询里
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64, includeDeleted bool) (*models.Comment, error) {
	q := d.Db.WithContext(ctx).Where("id = ?", commentID)
	if !includeDeleted {
		q = q.Where("status = ?", models.StatusNormal)
	}
	var comment models.Comment
	err := q.First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost 取帖子的全部评论（含已删除，线程结构要保留，
// 已删除的由上层渲染占位内容），按时间正序
func (d *CommentDAO) ListByPost(ctx context.Context, postID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountLiveReplies 统计未删除的直接回复数
func (d *CommentDAO) CountLiveReplies(ctx context.Context, parentID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("parent_id = ? AND status = ?", parentID, models.StatusNormal).
		Count(&count).Error
	return count, err
}
