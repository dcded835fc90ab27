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

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, postID uint64, content string, userID uint64) (*types.CommentResponse, error)
	Reply(ctx context.Context, parentID uint64, content string, userID uint64) (*types.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uint64, isAdmin bool) error
	ListComments(ctx context.Context, postID uint64, currentUserID uint64) (*types.CommentsListResponse, error)
}

type CommentsService struct {
	DB         *gorm.DB
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
	LedgerDAO  *dao.LedgerDAO
}

// CreateComment 发一级评论，评论插入和帖子评论数 +1 同一事务
func (s *CommentsService) CreateComment(ctx context.Context, postID uint64, content string, userID uint64) (*types.CommentResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	return s.insertComment(ctx, postID, 0, content, userID)
}

// Reply 回复评论。只允许一层：父评论自己已经是回复时直接拒绝，
// 不会静默挂到祖父节点下
func (s *CommentsService) Reply(ctx context.Context, parentID uint64, content string, userID uint64) (*types.CommentResponse, error) {
	parent, err := s.CommentDAO.GetByID(ctx, parentID, false)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrNotFound
	}
	if parent.ParentID != 0 {
		return nil, ErrNestingTooDeep
	}

	return s.insertComment(ctx, parent.PostID, parentID, content, userID)
}

func (s *CommentsService) insertComment(ctx context.Context, postID, parentID uint64, content string, userID uint64) (*types.CommentResponse, error) {
	now := time.Now()
	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		PostID:    postID,
		UserID:    userID,
		ParentID:  parentID,
		Content:   strings.TrimSpace(content),
		Status:    models.StatusNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return types.NewCommentResponse(comment, false), nil
}

// DeleteComment 删除评论（软删除）。
// 有未删除的回复时保留楼层结构，正文替换为占位内容；
// 两个分支都只把帖子评论数减 1，且封底不为负
func (s *CommentsService) DeleteComment(ctx context.Context, commentID, userID uint64, isAdmin bool) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID, false)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}

	if comment.UserID != userID && !isAdmin {
		return ErrUnauthorized
	}

	liveReplies, err := s.CommentDAO.CountLiveReplies(ctx, commentID)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := map[string]any{"status": models.StatusDeleted}
		if liveReplies > 0 {
			values["content"] = models.DeletedContent
		}
		// 条件翻转，并发重复删除只有一次能扣到计数
		res := tx.Model(&models.Comment{}).
			Where("id = ? AND status = ?", commentID, models.StatusNormal).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("CASE WHEN comment_count > 0 THEN comment_count - 1 ELSE 0 END")).Error
	})
}

// ListComments 两级评论列表。已删除的评论保留占位，
// 由 status 驱动渲染，与删除时是否改写过正文无关
func (s *CommentsService) ListComments(ctx context.Context, postID uint64, currentUserID uint64) (*types.CommentsListResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comments, err := s.CommentDAO.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	likeStatus := make(map[uint64]bool)
	if currentUserID > 0 && len(comments) > 0 {
		ids := make([]uint64, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.ID)
		}
		if liked, err := s.LedgerDAO.BatchLiked(ctx, dao.KindCommentLike, ids, currentUserID); err == nil {
			likeStatus = liked
		}
	}

	// 组装两级结构，回复挂到各自的一级评论下
	roots := make([]*types.CommentResponse, 0)
	rootMap := make(map[uint64]*types.CommentResponse)
	for _, c := range comments {
		if c.ParentID == 0 {
			resp := types.NewCommentResponse(c, likeStatus[c.ID])
			roots = append(roots, resp)
			rootMap[c.ID] = resp
		}
	}
	for _, c := range comments {
		if c.ParentID == 0 {
			continue
		}
		parent, ok := rootMap[c.ParentID]
		if !ok {
			continue
		}
		parent.Replies = append(parent.Replies, types.NewCommentResponse(c, likeStatus[c.ID]))
	}

	return &types.CommentsListResponse{
		Comments:     roots,
		CommentCount: post.CommentCount,
	}, nil
}
