package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/log"
	"Plaza/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const CacheTTL = 24 * time.Hour

const (
	UserLikedPostsKey    = "user:liked:posts:%d"    // 用户点赞的帖子集合
	UserLikedCommentsKey = "user:liked:comments:%d" // 用户点赞的评论集合
)

// LikeTarget 可点赞的目标类型
type LikeTarget int8

const (
	LikePost LikeTarget = iota + 1
	LikeComment
)

// likeTargetDesc 目标类型到账本类型/实体模型的映射，
// 点赞逻辑只写一份，按目标查表分发
type likeTargetDesc struct {
	kind     dao.LedgerKind
	model    func() any
	redisKey string
}

var likeTargets = map[LikeTarget]likeTargetDesc{
	LikePost:    {kind: dao.KindPostLike, model: func() any { return &models.Post{} }, redisKey: UserLikedPostsKey},
	LikeComment: {kind: dao.KindCommentLike, model: func() any { return &models.Comment{} }, redisKey: UserLikedCommentsKey},
}

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, target LikeTarget, targetID, userID uint64) (*types.LikeState, error)
	Unlike(ctx context.Context, target LikeTarget, targetID, userID uint64) (*types.LikeState, error)
	IsLiked(ctx context.Context, target LikeTarget, targetID, userID uint64) (bool, error)
	RecountLikes(ctx context.Context, target LikeTarget, targetID uint64) error
}

type LikeService struct {
	DB         *gorm.DB
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
	LedgerDAO  *dao.LedgerDAO
	Redis      *redis.Client
}

// Like 点赞。账本插入和计数 +1 在同一个事务里完成
func (s *LikeService) Like(ctx context.Context, target LikeTarget, targetID, userID uint64) (*types.LikeState, error) {
	desc, ok := likeTargets[target]
	if !ok {
		return nil, dao.ErrUnknownKind
	}

	if err := s.targetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	existing, err := s.LedgerDAO.Find(ctx, desc.kind, targetID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyLiked
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.LedgerDAO.WithTx(tx).Record(ctx, desc.kind, targetID, userID, 0); err != nil {
			if errors.Is(err, dao.ErrDuplicateInteraction) {
				return ErrAlreadyLiked
			}
			return err
		}
		return tx.Model(desc.model()).
			Where("id = ?", targetID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.cacheAfterLike(ctx, desc, targetID, userID, true)

	count, err := s.likeCount(ctx, desc, targetID)
	if err != nil {
		return nil, err
	}
	return &types.LikeState{LikeCount: count, IsLiked: true}, nil
}

// Unlike 取消点赞。从未点赞时不报错，原样返回当前状态
func (s *LikeService) Unlike(ctx context.Context, target LikeTarget, targetID, userID uint64) (*types.LikeState, error) {
	desc, ok := likeTargets[target]
	if !ok {
		return nil, dao.ErrUnknownKind
	}

	if err := s.targetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.LedgerDAO.WithTx(tx).Remove(ctx, desc.kind, targetID, userID)
		if err != nil {
			return err
		}
		if !removed {
			// 幂等取消：没有记录就什么都不做
			return nil
		}
		// 计数封底，并发双删也不会减成负数
		return tx.Model(desc.model()).
			Where("id = ?", targetID).
			UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")).Error
	})
	if err != nil {
		return nil, err
	}

	s.cacheAfterLike(ctx, desc, targetID, userID, false)

	count, err := s.likeCount(ctx, desc, targetID)
	if err != nil {
		return nil, err
	}
	return &types.LikeState{LikeCount: count, IsLiked: false}, nil
}

// IsLiked 是否已点赞，先查 Redis 集合，失败回落数据库
func (s *LikeService) IsLiked(ctx context.Context, target LikeTarget, targetID, userID uint64) (bool, error) {
	desc, ok := likeTargets[target]
	if !ok {
		return false, dao.ErrUnknownKind
	}

	if s.Redis != nil {
		key := fmt.Sprintf(desc.redisKey, userID)
		exists, err := s.Redis.SIsMember(ctx, key, targetID).Result()
		if err == nil && exists {
			return true, nil
		}
	}

	rec, err := s.LedgerDAO.Find(ctx, desc.kind, targetID, userID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// RecountLikes 从账本重算点赞数，覆盖增量维护的计数。
// 对账用，平时不在请求路径上
func (s *LikeService) RecountLikes(ctx context.Context, target LikeTarget, targetID uint64) error {
	desc, ok := likeTargets[target]
	if !ok {
		return dao.ErrUnknownKind
	}
	count, err := s.LedgerDAO.CountByTarget(ctx, desc.kind, targetID)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(desc.model()).
		Where("id = ?", targetID).
		UpdateColumn("like_count", count).Error
}

func (s *LikeService) targetExists(ctx context.Context, target LikeTarget, targetID uint64) error {
	switch target {
	case LikePost:
		post, err := s.PostDAO.GetByID(ctx, targetID, false)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrNotFound
		}
	case LikeComment:
		comment, err := s.CommentDAO.GetByID(ctx, targetID, false)
		if err != nil {
			return err
		}
		if comment == nil {
			return ErrNotFound
		}
	default:
		return dao.ErrUnknownKind
	}
	return nil
}

func (s *LikeService) likeCount(ctx context.Context, desc likeTargetDesc, targetID uint64) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(desc.model()).
		Select("like_count").
		Where("id = ?", targetID).
		Scan(&count).Error
	return count, err
}

// 更新 Redis 集合，失败只记日志不影响业务
func (s *LikeService) cacheAfterLike(ctx context.Context, desc likeTargetDesc, targetID, userID uint64, liked bool) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf(desc.redisKey, userID)
	pipe := s.Redis.Pipeline()
	if liked {
		pipe.SAdd(ctx, key, targetID)
		pipe.Expire(ctx, key, CacheTTL)
	} else {
		pipe.SRem(ctx, key, targetID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.L.Error("更新Redis缓存失败", zap.Error(err))
	}
}
