package service

import (
	"context"
	"testing"

	"Plaza/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePost(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	state, err := svc.Like(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	assert.True(t, state.IsLiked)
	assert.EqualValues(t, 1, state.LikeCount)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).LikeCount)
}

func TestLikePostDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	_, err := svc.Like(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)

	// 重复点赞拒绝，计数不动
	_, err = svc.Like(ctx, LikePost, post.ID, 2)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).LikeCount)
}

func TestUnlikeIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	_, err := svc.Like(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)

	state, err := svc.Unlike(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	assert.False(t, state.IsLiked)
	assert.EqualValues(t, 0, state.LikeCount)

	// 再取消一次不报错，计数也不会减成负数
	state, err = svc.Unlike(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, state.LikeCount)
}

func TestLikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	// 点赞-取消-再点赞，回到已点赞状态
	_, err := svc.Like(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	_, err = svc.Unlike(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	state, err := svc.Like(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)

	assert.True(t, state.IsLiked)
	assert.EqualValues(t, 1, state.LikeCount)
}

func TestLikeComment(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	comment := seedComment(t, db, post.ID, 1, 0)

	state, err := svc.Like(ctx, LikeComment, comment.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, state.LikeCount)
	assert.EqualValues(t, 1, reloadComment(t, db, comment.ID).LikeCount)

	// 帖子和评论的点赞账本互不影响
	liked, err := svc.IsLiked(ctx, LikePost, post.ID, 2)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeMissingTarget(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	_, err := svc.Like(ctx, LikePost, 999, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikeDeletedPost(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("status", models.StatusDeleted).Error)

	_, err := svc.Like(ctx, LikePost, post.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecountLikes(t *testing.T) {
	db := newTestDB(t)
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	for userID := uint64(2); userID <= 4; userID++ {
		_, err := svc.Like(ctx, LikePost, post.ID, userID)
		require.NoError(t, err)
	}

	// 人为弄脏计数，重算后恢复到账本真值
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		UpdateColumn("like_count", 100).Error)

	require.NoError(t, svc.RecountLikes(ctx, LikePost, post.ID))
	assert.EqualValues(t, 3, reloadPost(t, db, post.ID).LikeCount)
}
