package dao

import (
	"context"
	"errors"

	"Plaza/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.Users]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.Users](db)}
}

// FindByUsername 按用户名查询，不存在返回 nil
func (d *UserDAO) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	var user models.Users
	err := d.Db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
