package types

import (
	"time"

	"Plaza/models"
)

// SubmitReportReq 举报请求
type SubmitReportReq struct {
	TargetType string `json:"target_type" binding:"required,oneof=post comment question answer"`
	TargetID   uint64 `json:"target_id,string" binding:"required"`
	Reason     string `json:"reason" binding:"required,min=1,max=500"`
}

type ReportResponse struct {
	ID         uint64    `json:"id,string"`
	UserID     uint64    `json:"user_id,string"`
	TargetType string    `json:"target_type"`
	TargetID   uint64    `json:"target_id,string"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReportResponse(r *models.Report) *ReportResponse {
	status := "pending"
	if r.ReportStatus == models.ReportResolved {
		status = "resolved"
	}
	return &ReportResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		TargetType: r.TargetType,
		TargetID:   r.TargetID,
		Reason:     r.Reason,
		Status:     status,
		CreatedAt:  r.CreatedAt,
	}
}

type ReportListResponse struct {
	Reports []*ReportResponse `json:"reports"`
	Total   int64             `json:"total"`
}
