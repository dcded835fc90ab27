package service

import (
	"context"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/snowflake"
	"Plaza/types"

	"gorm.io/gorm"
)

var _ IAnswerService = (*AnswerService)(nil)

type IAnswerService interface {
	CreateAnswer(ctx context.Context, questionID uint64, content string, userID uint64) (*types.AnswerResponse, error)
	DeleteAnswer(ctx context.Context, answerID, userID uint64, isAdmin bool) error
	Accept(ctx context.Context, questionID, answerID, userID uint64) error
	Unaccept(ctx context.Context, questionID, answerID, userID uint64) error
}

type AnswerService struct {
	DB          *gorm.DB
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
}

// CreateAnswer 回答问题。已关闭的问题不再接受新回答
func (s *AnswerService) CreateAnswer(ctx context.Context, questionID uint64, content string, userID uint64) (*types.AnswerResponse, error) {
	question, err := s.QuestionDAO.GetByID(ctx, questionID, false)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	if question.QuestionStatus == models.QuestionClosed {
		return nil, ErrInvalidState
	}

	now := time.Now()
	answer := &models.Answer{
		ID:         uint64(snowflake.GenID()),
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
		Status:     models.StatusNormal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("id = ?", questionID).
			UpdateColumn("answer_count", gorm.Expr("answer_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return types.NewAnswerResponse(answer), nil
}

// DeleteAnswer 删除回答（软删除）。已采纳的回答不允许删，要先取消采纳
func (s *AnswerService) DeleteAnswer(ctx context.Context, answerID, userID uint64, isAdmin bool) error {
	answer, err := s.AnswerDAO.GetByID(ctx, answerID, false)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrNotFound
	}
	if answer.UserID != userID && !isAdmin {
		return ErrUnauthorized
	}
	if answer.IsAccepted {
		return ErrCannotDelete
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 条件翻转，并发重复删除只有一次能扣到计数
		res := tx.Model(&models.Answer{}).
			Where("id = ? AND status = ?", answerID, models.StatusNormal).
			UpdateColumn("status", models.StatusDeleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Question{}).
			Where("id = ?", answer.QuestionID).
			UpdateColumn("answer_count", gorm.Expr("CASE WHEN answer_count > 0 THEN answer_count - 1 ELSE 0 END")).Error
	})
}

// Accept 采纳回答。只有提问者能采纳，一个问题同时只有一个被采纳的回答：
// 换采纳时旧回答的标记和新回答的标记在同一事务里翻转。
// 重复采纳同一个回答直接幂等返回
func (s *AnswerService) Accept(ctx context.Context, questionID, answerID, userID uint64) error {
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
		return ErrInvalidState
	}

	answer, err := s.AnswerDAO.GetByID(ctx, answerID, false)
	if err != nil {
		return err
	}
	if answer == nil || answer.QuestionID != questionID {
		return ErrNotFound
	}

	if question.AcceptedAnswerID != nil && *question.AcceptedAnswerID == answerID {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先条件更新问题行，并发的采纳在这一行上串行化，
		// 关闭状态的校验也落在同一条件里
		res := tx.Model(&models.Question{}).
			Where("id = ? AND question_status <> ?", questionID, models.QuestionClosed).
			Updates(map[string]any{
				"accepted_answer_id": answerID,
				"question_status":    models.QuestionAnswered,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.Question
			if err := tx.Where("id = ?", questionID).First(&current).Error; err != nil {
				return err
			}
			// 并发下可能别人刚采纳了同一个回答，这里保持幂等
			if current.AcceptedAnswerID != nil && *current.AcceptedAnswerID == answerID {
				return nil
			}
			return ErrInvalidState
		}
		// 不信任事务外读到的旧采纳快照，清掉该问题下所有旧标记
		if err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND is_accepted = ? AND id <> ?", questionID, true, answerID).
			UpdateColumn("is_accepted", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("is_accepted", true).Error
	})
}

// Unaccept 取消采纳。只能取消当前被采纳的那个回答，
// 取消后问题无条件回到待解决状态
func (s *AnswerService) Unaccept(ctx context.Context, questionID, answerID, userID uint64) error {
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
	if question.AcceptedAnswerID == nil || *question.AcceptedAnswerID != answerID {
		return ErrInvalidState
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 条件更新兜住并发：只有 answerID 仍是当前采纳时才生效
		res := tx.Model(&models.Question{}).
			Where("id = ? AND accepted_answer_id = ?", questionID, answerID).
			Updates(map[string]any{
				"accepted_answer_id": nil,
				"question_status":    models.QuestionOpen,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}
		return tx.Model(&models.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("is_accepted", false).Error
	})
}
