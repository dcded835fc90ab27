package service

import (
	"context"
	"errors"
	"fmt"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/types"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const UserBookmarksKey = "user:bookmarks:%d" // 用户收藏的帖子集合

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Bookmark(ctx context.Context, postID, userID uint64) error
	Unbookmark(ctx context.Context, postID, userID uint64) (bool, error)
	IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error)
	ListUserBookmarks(ctx context.Context, userID uint64, limit, offset int) ([]*types.PostSummary, int64, error)
}

type BookmarkService struct {
	DB        *gorm.DB
	PostDAO   *dao.PostDAO
	LedgerDAO *dao.LedgerDAO
	Redis     *redis.Client
}

// Bookmark 收藏帖子。收藏没有挂在帖子上的计数，只写账本
func (s *BookmarkService) Bookmark(ctx context.Context, postID, userID uint64) error {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}

	if err := s.LedgerDAO.Record(ctx, dao.KindBookmark, postID, userID, 0); err != nil {
		if errors.Is(err, dao.ErrDuplicateInteraction) {
			return ErrAlreadyBookmarked
		}
		return err
	}

	if s.Redis != nil {
		key := fmt.Sprintf(UserBookmarksKey, userID)
		pipe := s.Redis.Pipeline()
		pipe.SAdd(ctx, key, postID)
		pipe.Expire(ctx, key, CacheTTL)
		pipe.Exec(ctx)
	}
	return nil
}

// Unbookmark 取消收藏，没有收藏过返回 false 而不是错误
func (s *BookmarkService) Unbookmark(ctx context.Context, postID, userID uint64) (bool, error) {
	removed, err := s.LedgerDAO.Remove(ctx, dao.KindBookmark, postID, userID)
	if err != nil {
		return false, err
	}

	if removed && s.Redis != nil {
		s.Redis.SRem(ctx, fmt.Sprintf(UserBookmarksKey, userID), postID)
	}
	return removed, nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error) {
	if s.Redis != nil {
		exists, err := s.Redis.SIsMember(ctx, fmt.Sprintf(UserBookmarksKey, userID), postID).Result()
		if err == nil && exists {
			return true, nil
		}
	}
	rec, err := s.LedgerDAO.Find(ctx, dao.KindBookmark, postID, userID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// ListUserBookmarks 用户收藏列表，按收藏时间倒序
func (s *BookmarkService) ListUserBookmarks(ctx context.Context, userID uint64, limit, offset int) ([]*types.PostSummary, int64, error) {
	ids, total, err := s.LedgerDAO.ListBookmarkedPostIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []*types.PostSummary{}, total, nil
	}

	posts, err := s.PostDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	// FindByIDs 不保序，按收藏顺序重排
	postMap := make(map[uint64]*models.Post, len(posts))
	for _, post := range posts {
		postMap[post.ID] = post
	}

	result := make([]*types.PostSummary, 0, len(ids))
	for _, id := range ids {
		post, ok := postMap[id]
		if !ok || post.Status != models.StatusNormal {
			continue
		}
		result = append(result, types.NewPostSummary(post))
	}
	return result, total, nil
}
