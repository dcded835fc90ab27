package service

import (
	"context"
	"strings"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/snowflake"
	"Plaza/types"

	"gorm.io/gorm"
)

var _ IQuestionService = (*QuestionService)(nil)

type IQuestionService interface {
	Create(ctx context.Context, req *types.CreateQuestionReq, userID uint64) (*types.QuestionResponse, error)
	Get(ctx context.Context, questionID uint64, currentUserID uint64) (*types.QuestionDetailResponse, error)
	List(ctx context.Context, limit, offset int) ([]*types.QuestionResponse, int64, error)
	Close(ctx context.Context, questionID, userID uint64) error
	Delete(ctx context.Context, questionID, userID uint64, isAdmin bool) error
}

type QuestionService struct {
	DB          *gorm.DB
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
	LedgerDAO   *dao.LedgerDAO
}

func (s *QuestionService) Create(ctx context.Context, req *types.CreateQuestionReq, userID uint64) (*types.QuestionResponse, error) {
	now := time.Now()
	question := &models.Question{
		ID:             uint64(snowflake.GenID()),
		UserID:         userID,
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		QuestionStatus: models.QuestionOpen,
		Status:         models.StatusNormal,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.QuestionDAO.Create(ctx, question); err != nil {
		return nil, err
	}
	return types.NewQuestionResponse(question), nil
}

func (s *QuestionService) Get(ctx context.Context, questionID uint64, currentUserID uint64) (*types.QuestionDetailResponse, error) {
	question, err := s.QuestionDAO.GetByID(ctx, questionID, false)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}

	answers, err := s.AnswerDAO.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	detail := &types.QuestionDetailResponse{
		QuestionResponse: *types.NewQuestionResponse(question),
		Answers:          make([]*types.AnswerResponse, 0, len(answers)),
	}

	if currentUserID > 0 {
		if cur, err := s.LedgerDAO.Find(ctx, dao.KindQuestionVote, questionID, currentUserID); err == nil && cur != nil {
			detail.CurrentUserVote = types.VoteTypeString(cur.VoteType)
		}
	}

	for _, a := range answers {
		resp := types.NewAnswerResponse(a)
		if currentUserID > 0 {
			if cur, err := s.LedgerDAO.Find(ctx, dao.KindAnswerVote, a.ID, currentUserID); err == nil && cur != nil {
				resp.CurrentUserVote = types.VoteTypeString(cur.VoteType)
			}
		}
		detail.Answers = append(detail.Answers, resp)
	}
	return detail, nil
}

func (s *QuestionService) List(ctx context.Context, limit, offset int) ([]*types.QuestionResponse, int64, error) {
	questions, total, err := s.QuestionDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	list := make([]*types.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		list = append(list, types.NewQuestionResponse(q))
	}
	return list, total, nil
}

// Close 关闭问题，只有提问者本人可以关闭。关闭后不再接受新回答
func (s *QuestionService) Close(ctx context.Context, questionID, userID uint64) error {
	question, err := s.QuestionDAO.GetByID(ctx, questionID, false)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}
	if question.UserID != userID {
		return ErrUnauthorized
	}
	if question.QuestionStatus == models.QuestionClosed {
		return nil
	}
	return s.QuestionDAO.UpdateById(ctx, questionID, map[string]any{
		"question_status": models.QuestionClosed,
	})
}

// Delete 删除问题。还有未删除回答的问题不允许删，先处理回答
func (s *QuestionService) Delete(ctx context.Context, questionID, userID uint64, isAdmin bool) error {
	question, err := s.QuestionDAO.GetByID(ctx, questionID, false)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrNotFound
	}
	if question.UserID != userID && !isAdmin {
		return ErrUnauthorized
	}

	live, err := s.AnswerDAO.CountLive(ctx, questionID)
	if err != nil {
		return err
	}
	if live > 0 {
		return ErrCannotDelete
	}

	return s.QuestionDAO.UpdateById(ctx, questionID, map[string]any{
		"status": models.StatusDeleted,
	})
}
