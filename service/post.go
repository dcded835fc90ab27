package service

import (
	"context"
	"strings"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/log"
	"Plaza/pkg/snowflake"
	"Plaza/types"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, req *types.CreatePostReq, userID uint64) (*types.PostSummary, error)
	Get(ctx context.Context, postID uint64, currentUserID *uint64, ip string) (*types.PostDetailResponse, error)
	Update(ctx context.Context, postID uint64, req *types.UpdatePostReq, userID uint64, isAdmin bool) error
	Delete(ctx context.Context, postID, userID uint64, isAdmin bool) error
	List(ctx context.Context, limit, offset int) (*types.PostListResponse, error)
	Search(ctx context.Context, keyword string, limit, offset int) (*types.PostListResponse, error)
	RecountCommentCount(ctx context.Context, postID uint64) error
}

type PostService struct {
	DB            *gorm.DB
	PostDAO       *dao.PostDAO
	CommentDAO    *dao.CommentDAO
	AttachmentDAO *dao.AttachmentDAO
	LikeSrv       ILikeService
	BookmarkSrv   IBookmarkService
	ViewSrv       IViewService
}

func (s *PostService) Create(ctx context.Context, req *types.CreatePostReq, userID uint64) (*types.PostSummary, error) {
	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Status:    models.StatusNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}

	// 附件在发帖前单独上传，这里把它们挂到新帖子上
	for _, attachmentID := range req.AttachmentIDs {
		if err := s.AttachmentDAO.BindToPost(ctx, attachmentID, userID, post.ID); err != nil {
			log.L.Error("绑定附件失败", zap.Int64("attachment_id", attachmentID), zap.Error(err))
		}
	}
	return types.NewPostSummary(post), nil
}

// Get 帖子详情。浏览计数在读路径上顺带完成，
// 去重窗口内的重复访问不会重复累加
func (s *PostService) Get(ctx context.Context, postID uint64, currentUserID *uint64, ip string) (*types.PostDetailResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if counted, err := s.ViewSrv.AddView(ctx, postID, currentUserID, ip); err != nil {
		log.L.Error("记录浏览失败", zap.Uint64("post_id", postID), zap.Error(err))
	} else if counted {
		post.ViewCount++
	}

	detail := &types.PostDetailResponse{PostSummary: *types.NewPostSummary(post)}

	if attachments, err := s.AttachmentDAO.ListByPost(ctx, postID); err == nil {
		detail.Attachments = types.NewAttachmentList(attachments)
	}

	if currentUserID != nil && *currentUserID > 0 {
		uid := *currentUserID
		var wg conc.WaitGroup
		wg.Go(func() {
			if liked, err := s.LikeSrv.IsLiked(ctx, LikePost, postID, uid); err == nil {
				detail.IsLiked = liked
			}
		})
		wg.Go(func() {
			if marked, err := s.BookmarkSrv.IsBookmarked(ctx, postID, uid); err == nil {
				detail.IsBookmarked = marked
			}
		})
		wg.Wait()
	}
	return detail, nil
}

func (s *PostService) Update(ctx context.Context, postID uint64, req *types.UpdatePostReq, userID uint64, isAdmin bool) error {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.UserID != userID && !isAdmin {
		return ErrUnauthorized
	}

	values := map[string]any{}
	if req.Title != "" {
		values["title"] = strings.TrimSpace(req.Title)
	}
	if req.Content != "" {
		values["content"] = req.Content
	}
	if len(values) == 0 {
		return nil
	}
	return s.PostDAO.UpdateById(ctx, postID, values)
}

// Delete 删除帖子（软删除），帖子下的评论和点赞记录原样保留
func (s *PostService) Delete(ctx context.Context, postID, userID uint64, isAdmin bool) error {
	post, err := s.PostDAO.GetByID(ctx, postID, false)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.UserID != userID && !isAdmin {
		return ErrUnauthorized
	}
	return s.PostDAO.UpdateById(ctx, postID, map[string]any{
		"status": models.StatusDeleted,
	})
}

func (s *PostService) List(ctx context.Context, limit, offset int) (*types.PostListResponse, error) {
	posts, total, err := s.PostDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return buildPostList(posts, total), nil
}

func (s *PostService) Search(ctx context.Context, keyword string, limit, offset int) (*types.PostListResponse, error) {
	posts, total, err := s.PostDAO.Search(ctx, keyword, limit, offset)
	if err != nil {
		return nil, err
	}
	return buildPostList(posts, total), nil
}

// RecountCommentCount 从评论表重算帖子的评论数。
// 只数没删除的评论，对账用
func (s *PostService) RecountCommentCount(ctx context.Context, postID uint64) error {
	count, err := s.CommentDAO.FindCount(ctx, "post_id = ? AND status = ?", postID, models.StatusNormal)
	if err != nil {
		return err
	}
	return s.PostDAO.UpdateById(ctx, postID, map[string]any{
		"comment_count": count,
	})
}

func buildPostList(posts []*models.Post, total int64) *types.PostListResponse {
	list := make([]*types.PostSummary, 0, len(posts))
	for _, p := range posts {
		list = append(list, types.NewPostSummary(p))
	}
	return &types.PostListResponse{Posts: list, Total: total}
}
