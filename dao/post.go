package dao

import (
	"context"
	"errors"

	"Plaza/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// GetByID 按 ID 查询帖子。
// 可见性过滤是显式参数，默认调用方都应传 false，
// 只有管理后台之类的场景才看删除的帖子
func (d *PostDAO) GetByID(ctx context.Context, postID uint64, includeDeleted bool) (*models.Post, error) {
	q := d.Db.WithContext(ctx).Where("id = ?", postID)
	if !includeDeleted {
		q = q.Where("status = ?", models.StatusNormal)
	}
	var post models.Post
	err := q.First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List 帖子列表（按时间倒序）
func (d *PostDAO) List(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	var posts []*models.Post
	var total int64

	base := d.Db.WithContext(ctx).Model(&models.Post{}).Where("status = ?", models.StatusNormal)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// Search 标题/正文关键词搜索
func (d *PostDAO) Search(ctx context.Context, keyword string, limit, offset int) ([]*models.Post, int64, error) {
	var posts []*models.Post
	var total int64

	like := "%" + keyword + "%"
	base := d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("status = ?", models.StatusNormal).
		Where("title LIKE ? OR content LIKE ?", like, like)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}
