package models

import "time"

// 附件状态
const (
	AttachmentUploaded int8 = 1
	AttachmentBound    int8 = 2
)

// Attachment 附件表，文件本体存 OSS，这里只存元信息
type Attachment struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_status,priority:1" json:"user_id"`
	PostID    *uint64   `gorm:"column:post_id;index:idx_post_id" json:"post_id,omitempty"`
	OssKey    string    `gorm:"column:oss_key;type:varchar(255);not null" json:"oss_key"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	MimeType  string    `gorm:"column:mime_type;type:varchar(64);not null" json:"mime_type"`
	Size      int64     `gorm:"column:size;not null" json:"size"`
	Width     int       `gorm:"column:width;not null;default:0" json:"width"`
	Height    int       `gorm:"column:height;not null;default:0" json:"height"`
	Status    int8      `gorm:"column:status;not null;index:idx_user_status,priority:2" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (Attachment) TableName() string { return "attachments" }
