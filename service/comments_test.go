package service

import (
	"context"
	"sync"
	"testing"

	"Plaza/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	comment, err := svc.CreateComment(ctx, post.ID, "沙发", 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, comment.ParentID)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).CommentCount)
}

func TestCreateCommentMissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)

	_, err := svc.CreateComment(context.Background(), 999, "沙发", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplyComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	parent, err := svc.CreateComment(ctx, post.ID, "一级评论", 2)
	require.NoError(t, err)

	reply, err := svc.Reply(ctx, parent.ID, "回复", 3)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, reply.ParentID)
	assert.Equal(t, post.ID, reply.PostID)
	assert.EqualValues(t, 2, reloadPost(t, db, post.ID).CommentCount)
}

func TestReplyToReplyRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	parent, err := svc.CreateComment(ctx, post.ID, "一级评论", 2)
	require.NoError(t, err)
	reply, err := svc.Reply(ctx, parent.ID, "回复", 3)
	require.NoError(t, err)

	// 只允许一层回复，不会静默挂到祖父节点下
	_, err = svc.Reply(ctx, reply.ID, "二层回复", 4)
	assert.ErrorIs(t, err, ErrNestingTooDeep)
	assert.EqualValues(t, 2, reloadPost(t, db, post.ID).CommentCount)
}

func TestDeleteCommentWithoutReplies(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	comment, err := svc.CreateComment(ctx, post.ID, "要删的评论", 2)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, comment.ID, 2, false))

	got := reloadComment(t, db, comment.ID)
	assert.True(t, got.IsDeleted())
	assert.EqualValues(t, 0, reloadPost(t, db, post.ID).CommentCount)
}

func TestDeleteCommentWithLiveReplies(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	parent, err := svc.CreateComment(ctx, post.ID, "一级评论", 2)
	require.NoError(t, err)
	_, err = svc.Reply(ctx, parent.ID, "回复", 3)
	require.NoError(t, err)

	// 还有未删除回复的评论保留楼层，正文替换为占位内容
	require.NoError(t, svc.DeleteComment(ctx, parent.ID, 2, false))

	got := reloadComment(t, db, parent.ID)
	assert.True(t, got.IsDeleted())
	assert.Equal(t, models.DeletedContent, got.Content)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).CommentCount)
}

func TestDeleteCommentPermission(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	comment, err := svc.CreateComment(ctx, post.ID, "评论", 2)
	require.NoError(t, err)

	// 非作者非管理员不允许删
	err = svc.DeleteComment(ctx, comment.ID, 3, false)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// 管理员可以删别人的评论
	require.NoError(t, svc.DeleteComment(ctx, comment.ID, 3, true))
	assert.True(t, reloadComment(t, db, comment.ID).IsDeleted())
}

func TestDeleteCommentTwice(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	comment, err := svc.CreateComment(ctx, post.ID, "评论", 2)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, comment.ID, 2, false))

	// 已删除的评论查不到，重复删报 404 而不是再减一次计数
	err = svc.DeleteComment(ctx, comment.ID, 2, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, reloadPost(t, db, post.ID).CommentCount)
}

func TestListComments(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	first, err := svc.CreateComment(ctx, post.ID, "一楼", 2)
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, post.ID, "二楼", 3)
	require.NoError(t, err)
	_, err = svc.Reply(ctx, first.ID, "回一楼", 4)
	require.NoError(t, err)

	result, err := svc.ListComments(ctx, post.ID, 0)
	require.NoError(t, err)
	require.Len(t, result.Comments, 2)
	assert.EqualValues(t, 3, result.CommentCount)

	assert.Equal(t, first.ID, result.Comments[0].ID)
	assert.Equal(t, second.ID, result.Comments[1].ID)
	require.Len(t, result.Comments[0].Replies, 1)
	assert.Empty(t, result.Comments[1].Replies)
}

func TestListCommentsDeletedPlaceholder(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	parent, err := svc.CreateComment(ctx, post.ID, "一级评论", 2)
	require.NoError(t, err)
	_, err = svc.Reply(ctx, parent.ID, "回复", 3)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, parent.ID, 2, false))

	result, err := svc.ListComments(ctx, post.ID, 0)
	require.NoError(t, err)
	require.Len(t, result.Comments, 1)

	// 已删除评论保留楼层，渲染占位内容，回复原样保留
	root := result.Comments[0]
	assert.True(t, root.IsDeleted)
	assert.Equal(t, models.DeletedContent, root.Content)
	require.Len(t, root.Replies, 1)
	assert.False(t, root.Replies[0].IsDeleted)
}

func TestDeleteCommentConcurrentSingleDecrement(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentsService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	seedComment(t, db, post.ID, 2, 0)
	victim := seedComment(t, db, post.ID, 3, 0)

	// 同一条评论并发删两次，计数只能扣一次
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.DeleteComment(ctx, victim.ID, 3, false)
		}()
	}
	wg.Wait()

	assert.Equal(t, models.StatusDeleted, reloadComment(t, db, victim.ID).Status)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).CommentCount)
}
