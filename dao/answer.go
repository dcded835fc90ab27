package dao

import (
	"context"
	"errors"

	"Plaza/models"

	"gorm.io/gorm"
)

type AnswerDAO struct {
	Repo[models.Answer]
}

func NewAnswerDAO(db *gorm.DB) *AnswerDAO {
	return &AnswerDAO{Repo: NewRepo[models.Answer](db)}
}

// GetByID 按 ID 查询回答，可见性过滤为显式参数
func (d *AnswerDAO) GetByID(ctx context.Context, answerID uint64, includeDeleted bool) (*models.Answer, error) {
	q := d.Db.WithContext(ctx).Where("id = ?", answerID)
	if !includeDeleted {
		q = q.Where("status = ?", models.StatusNormal)
	}
	var answer models.Answer
	err := q.First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByQuestion 取问题下未删除的回答，已采纳的排最前
func (d *AnswerDAO) ListByQuestion(ctx context.Context, questionID uint64) ([]*models.Answer, error) {
	var answers []*models.Answer
	err := d.Db.WithContext(ctx).
		Where("question_id = ? AND status = ?", questionID, models.StatusNormal).
		Order("is_accepted DESC, created_at ASC").
		Find(&answers).Error
	return answers, err
}

// CountLive 统计问题下未删除的回答数
func (d *AnswerDAO) CountLive(ctx context.Context, questionID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("question_id = ? AND status = ?", questionID, models.StatusNormal).
		Count(&count).Error
	return count, err
}
