package dao

import (
	"context"
	"errors"

	"Plaza/models"

	"gorm.io/gorm"
)

type QuestionDAO struct {
	Repo[models.Question]
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{Repo: NewRepo[models.Question](db)}
}

// GetByID 按 ID 查询问题，可见性过滤为显式参数
func (d *QuestionDAO) GetByID(ctx context.Context, questionID uint64, includeDeleted bool) (*models.Question, error) {
	q := d.Db.WithContext(ctx).Where("id = ?", questionID)
	if !includeDeleted {
		q = q.Where("status = ?", models.StatusNormal)
	}
	var question models.Question
	err := q.First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// List 问题列表（按时间倒序）
func (d *QuestionDAO) List(ctx context.Context, limit, offset int) ([]*models.Question, int64, error) {
	var questions []*models.Question
	var total int64

	base := d.Db.WithContext(ctx).Model(&models.Question{}).Where("status = ?", models.StatusNormal)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	return questions, total, err
}
