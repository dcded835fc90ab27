package service

import (
	"context"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/snowflake"
	"Plaza/types"
)

var _ IReportService = (*ReportService)(nil)

type IReportService interface {
	Submit(ctx context.Context, req *types.SubmitReportReq, userID uint64) error
	ListPending(ctx context.Context, limit, offset int) (*types.ReportListResponse, error)
	Resolve(ctx context.Context, reportID, adminID uint64) error
}

type ReportService struct {
	ReportDAO   *dao.ReportDAO
	PostDAO     *dao.PostDAO
	CommentDAO  *dao.CommentDAO
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
}

// Submit 提交举报，被举报的内容必须还在
func (s *ReportService) Submit(ctx context.Context, req *types.SubmitReportReq, userID uint64) error {
	if err := s.targetExists(ctx, req.TargetType, req.TargetID); err != nil {
		return err
	}

	now := time.Now()
	return s.ReportDAO.Create(ctx, &models.Report{
		ID:           uint64(snowflake.GenID()),
		UserID:       userID,
		TargetType:   req.TargetType,
		TargetID:     req.TargetID,
		Reason:       req.Reason,
		ReportStatus: models.ReportPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *ReportService) ListPending(ctx context.Context, limit, offset int) (*types.ReportListResponse, error) {
	reports, total, err := s.ReportDAO.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*types.ReportResponse, 0, len(reports))
	for _, r := range reports {
		list = append(list, types.NewReportResponse(r))
	}
	return &types.ReportListResponse{Reports: list, Total: total}, nil
}

// Resolve 处理举报，记录处理人
func (s *ReportService) Resolve(ctx context.Context, reportID, adminID uint64) error {
	report, err := s.ReportDAO.FindById(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrNotFound
	}
	if report.ReportStatus == models.ReportResolved {
		return nil
	}
	return s.ReportDAO.UpdateById(ctx, reportID, map[string]any{
		"report_status": models.ReportResolved,
		"resolved_by":   adminID,
	})
}

func (s *ReportService) targetExists(ctx context.Context, targetType string, targetID uint64) error {
	var (
		found bool
		err   error
	)
	switch targetType {
	case models.ReportTargetPost:
		var post *models.Post
		post, err = s.PostDAO.GetByID(ctx, targetID, false)
		found = post != nil
	case models.ReportTargetComment:
		var comment *models.Comment
		comment, err = s.CommentDAO.GetByID(ctx, targetID, false)
		found = comment != nil
	case models.ReportTargetQuestion:
		var question *models.Question
		question, err = s.QuestionDAO.GetByID(ctx, targetID, false)
		found = question != nil
	case models.ReportTargetAnswer:
		var answer *models.Answer
		answer, err = s.AnswerDAO.GetByID(ctx, targetID, false)
		found = answer != nil
	default:
		return ErrInvalidState
	}
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
