package service

import (
	"context"
	"fmt"
	"time"

	"Plaza/dao"
	"Plaza/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ViewDedupWindow 同一访问者对同一帖子 24 小时内只计一次浏览
const ViewDedupWindow = 24 * time.Hour

const keyPostViewed = "plaza:post:viewed:%d:%s" // postID, visitorKey

var _ IViewService = (*ViewService)(nil)

type IViewService interface {
	AddView(ctx context.Context, postID uint64, userID *uint64, ip string) (bool, error)
}

type ViewService struct {
	DB        *gorm.DB
	PostDAO   *dao.PostDAO
	LedgerDAO *dao.LedgerDAO
	Redis     *redis.Client
}

// AddView 记录一次浏览。登录用户按用户去重，匿名用户按 IP 去重；
// 两个身份都没有时不计数。窗口内的重复访问返回 false 且不落库
func (s *ViewService) AddView(ctx context.Context, postID uint64, userID *uint64, ip string) (bool, error) {
	visitorKey := s.visitorKey(userID, ip)
	if visitorKey == "" {
		return false, nil
	}

	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return false, err
	}
	if post == nil {
		return false, ErrNotFound
	}

	// redis 快路径只做只读探测：key 存在说明窗口内已经看过。
	// 写 key 放在落库成功之后，事务失败时缓存不会先挡掉后续访问。
	// redis 不可用时回落到 DB 判断
	var dedupKey string
	if s.Redis != nil {
		dedupKey = fmt.Sprintf(keyPostViewed, postID, visitorKey)
		n, err := s.Redis.Exists(ctx, dedupKey).Result()
		if err == nil && n > 0 {
			return false, nil
		}
	}

	last, err := s.LedgerDAO.LastViewAt(ctx, postID, userID, ip)
	if err != nil {
		return false, err
	}
	if last != nil && time.Since(*last) < ViewDedupWindow {
		return false, nil
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger := s.LedgerDAO.WithTx(tx)
		if err := ledger.RecordView(ctx, postID, userID, ip); err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
	if err != nil {
		return false, err
	}

	// 浏览记录已落库，缓存写失败下一次自然回落到 DB 判断
	if s.Redis != nil {
		s.Redis.Set(ctx, dedupKey, 1, ViewDedupWindow)
	}
	return true, nil
}

func (s *ViewService) visitorKey(userID *uint64, ip string) string {
	if userID != nil && *userID > 0 {
		return fmt.Sprintf("u:%d", *userID)
	}
	if ip != "" {
		return "ip:" + ip
	}
	return ""
}
