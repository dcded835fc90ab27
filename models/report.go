package models

import "time"

// 举报状态
const (
	ReportPending  int8 = 0
	ReportResolved int8 = 1
)

// 可举报的内容类型
const (
	ReportTargetPost     = "post"
	ReportTargetComment  = "comment"
	ReportTargetQuestion = "question"
	ReportTargetAnswer   = "answer"
)

// Report 举报记录
type Report struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_report_user_id" json:"user_id"`
	TargetType   string    `gorm:"column:target_type;type:varchar(16);not null" json:"target_type"`
	TargetID     uint64    `gorm:"column:target_id;not null" json:"target_id"`
	Reason       string    `gorm:"column:reason;type:varchar(500);not null" json:"reason"`
	ReportStatus int8      `gorm:"column:report_status;not null;default:0;index:idx_report_status" json:"report_status"`
	ResolvedBy   *uint64   `gorm:"column:resolved_by" json:"resolved_by,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }
