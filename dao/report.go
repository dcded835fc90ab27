package dao

import (
	"context"

	"Plaza/models"

	"gorm.io/gorm"
)

type ReportDAO struct {
	Repo[models.Report]
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{Repo: NewRepo[models.Report](db)}
}

// ListPending 待处理举报列表（按时间正序，先报先处理）
func (d *ReportDAO) ListPending(ctx context.Context, limit, offset int) ([]*models.Report, int64, error) {
	var reports []*models.Report
	var total int64

	base := d.Db.WithContext(ctx).Model(&models.Report{}).Where("report_status = ?", models.ReportPending)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	return reports, total, err
}
