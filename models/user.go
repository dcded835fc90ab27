package models

import "time"

// Users 用户表
type Users struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Nickname  string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	Status    int8      `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Users) TableName() string { return "users" }
