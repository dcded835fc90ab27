package dao

import (
	"context"

	"Plaza/models"

	"gorm.io/gorm"
)

type AttachmentDAO struct {
	Repo[models.Attachment]
}

func NewAttachmentDAO(db *gorm.DB) *AttachmentDAO {
	return &AttachmentDAO{Repo: NewRepo[models.Attachment](db)}
}

// ListByPost 取帖子下的附件
func (d *AttachmentDAO) ListByPost(ctx context.Context, postID uint64) ([]*models.Attachment, error) {
	var items []*models.Attachment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// BindToPost 把已上传的附件挂到帖子上，只允许本人操作
func (d *AttachmentDAO) BindToPost(ctx context.Context, attachmentID int64, userID, postID uint64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Attachment{}).
		Where("id = ? AND user_id = ?", attachmentID, userID).
		Updates(map[string]any{"post_id": postID, "status": models.AttachmentBound}).Error
}
