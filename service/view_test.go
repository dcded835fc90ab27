package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddViewUser(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	userID := uint64(2)

	counted, err := svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).ViewCount)

	// 窗口内同一用户重复访问不计数
	counted, err = svc.AddView(ctx, post.ID, &userID, "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, counted)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).ViewCount)
}

func TestAddViewAnonymousByIP(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)

	counted, err := svc.AddView(ctx, post.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	// 同 IP 重复访问不计数，不同 IP 计数
	counted, err = svc.AddView(ctx, post.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, counted)

	counted, err = svc.AddView(ctx, post.ID, nil, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, counted)

	assert.EqualValues(t, 2, reloadPost(t, db, post.ID).ViewCount)
}

func TestAddViewNoIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)

	post := seedPost(t, db, 1)

	// 既没有用户也没有 IP，不计数也不报错
	counted, err := svc.AddView(context.Background(), post.ID, nil, "")
	require.NoError(t, err)
	assert.False(t, counted)
	assert.EqualValues(t, 0, reloadPost(t, db, post.ID).ViewCount)
}

func TestAddViewAfterWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	userID := uint64(2)

	// 上次浏览在窗口外，再访问重新计数
	backdateViewRecord(t, db, post.ID, &userID, "10.0.0.1", ViewDedupWindow+time.Hour)

	counted, err := svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)
	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).ViewCount)
}

func TestAddViewWithinWindowBoundary(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	userID := uint64(2)

	// 上次浏览还差一点才出窗口，仍然去重
	backdateViewRecord(t, db, post.ID, &userID, "10.0.0.1", ViewDedupWindow-time.Minute)

	counted, err := svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, counted)
}

func TestAddViewUserAndIPIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	ctx := context.Background()

	post := seedPost(t, db, 1)
	userID := uint64(2)

	// 登录用户按用户去重，同一 IP 上的匿名访问是另一个键
	counted, err := svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = svc.AddView(ctx, post.ID, nil, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	assert.EqualValues(t, 2, reloadPost(t, db, post.ID).ViewCount)
}

func TestAddViewMissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)

	userID := uint64(2)
	_, err := svc.AddView(context.Background(), 999, &userID, "10.0.0.1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddViewRedisUnreachable(t *testing.T) {
	db := newTestDB(t)
	svc := newViewService(db)
	// 指向一个连不上的地址，缓存探测和落库后的写 key 都会失败，
	// 去重完全回落到 DB 判断
	svc.Redis = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	ctx := context.Background()

	post := seedPost(t, db, 1)
	userID := uint64(2)

	counted, err := svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, counted)

	counted, err = svc.AddView(ctx, post.ID, &userID, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, counted)

	assert.EqualValues(t, 1, reloadPost(t, db, post.ID).ViewCount)
}
