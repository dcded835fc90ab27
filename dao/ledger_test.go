package dao

import (
	"context"
	"testing"
	"time"

	"Plaza/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.PostLike{},
		&models.CommentLike{},
		&models.Bookmark{},
		&models.QuestionVote{},
		&models.AnswerVote{},
		&models.ViewRecord{},
	))
	return db
}

func TestLedgerRecordAndFind(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindPostLike, 10, 2, 0))

	rec, err := d.Find(ctx, KindPostLike, 10, 2)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.EqualValues(t, 10, rec.TargetID)
	assert.EqualValues(t, 2, rec.UserID)

	// 查不到时返回 nil 而不是错误
	rec, err = d.Find(ctx, KindPostLike, 10, 3)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLedgerRecordDuplicate(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindPostLike, 10, 2, 0))
	assert.ErrorIs(t, d.Record(ctx, KindPostLike, 10, 2, 0), ErrDuplicateInteraction)

	// 不同目标或不同用户不冲突
	require.NoError(t, d.Record(ctx, KindPostLike, 11, 2, 0))
	require.NoError(t, d.Record(ctx, KindPostLike, 10, 3, 0))
}

func TestLedgerKindsIsolated(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	// 同一 (target, user) 在不同账本里互不冲突
	require.NoError(t, d.Record(ctx, KindPostLike, 10, 2, 0))
	require.NoError(t, d.Record(ctx, KindBookmark, 10, 2, 0))
	require.NoError(t, d.Record(ctx, KindCommentLike, 10, 2, 0))
}

func TestLedgerRemove(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindBookmark, 10, 2, 0))

	removed, err := d.Remove(ctx, KindBookmark, 10, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	// 记录不存在时返回 false 而不是错误
	removed, err = d.Remove(ctx, KindBookmark, 10, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLedgerUpdateVoteType(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindQuestionVote, 10, 2, models.VoteUp))

	switched, err := d.UpdateVoteType(ctx, KindQuestionVote, 10, 2, models.VoteUp, models.VoteDown)
	require.NoError(t, err)
	assert.True(t, switched)

	rec, err := d.Find(ctx, KindQuestionVote, 10, 2)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, models.VoteDown, rec.VoteType)

	// 旧方向条件不匹配时落空
	switched, err = d.UpdateVoteType(ctx, KindQuestionVote, 10, 2, models.VoteUp, models.VoteDown)
	require.NoError(t, err)
	assert.False(t, switched)
}

func TestLedgerCountVotes(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindAnswerVote, 10, 2, models.VoteUp))
	require.NoError(t, d.Record(ctx, KindAnswerVote, 10, 3, models.VoteUp))
	require.NoError(t, d.Record(ctx, KindAnswerVote, 10, 4, models.VoteDown))

	up, err := d.CountVotes(ctx, KindAnswerVote, 10, models.VoteUp)
	require.NoError(t, err)
	assert.EqualValues(t, 2, up)

	down, err := d.CountVotes(ctx, KindAnswerVote, 10, models.VoteDown)
	require.NoError(t, err)
	assert.EqualValues(t, 1, down)

	total, err := d.CountByTarget(ctx, KindAnswerVote, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestLedgerBatchLiked(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	require.NoError(t, d.Record(ctx, KindCommentLike, 10, 2, 0))
	require.NoError(t, d.Record(ctx, KindCommentLike, 12, 2, 0))

	liked, err := d.BatchLiked(ctx, KindCommentLike, []uint64{10, 11, 12}, 2)
	require.NoError(t, err)
	assert.True(t, liked[10])
	assert.False(t, liked[11])
	assert.True(t, liked[12])

	liked, err = d.BatchLiked(ctx, KindCommentLike, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLedgerUnknownKind(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	assert.ErrorIs(t, d.Record(ctx, LedgerKind(99), 10, 2, 0), ErrUnknownKind)
	_, err := d.Find(ctx, LedgerKind(99), 10, 2)
	assert.ErrorIs(t, err, ErrUnknownKind)
	// 没有 vote 字段的账本不支持改投票方向
	_, err = d.UpdateVoteType(ctx, KindPostLike, 10, 2, models.VoteUp, models.VoteDown)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLedgerViewRecords(t *testing.T) {
	d := NewLedgerDAO(newLedgerTestDB(t))
	ctx := context.Background()

	userID := uint64(2)

	// 浏览记录只追加，不做重复检查
	require.NoError(t, d.RecordView(ctx, 10, &userID, "10.0.0.1"))
	require.NoError(t, d.RecordView(ctx, 10, &userID, "10.0.0.1"))
	require.NoError(t, d.RecordView(ctx, 10, nil, "10.0.0.9"))

	last, err := d.LastViewAt(ctx, 10, &userID, "")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, time.Now(), *last, time.Minute)

	// 匿名键和用户键互相独立
	last, err = d.LastViewAt(ctx, 10, nil, "10.0.0.9")
	require.NoError(t, err)
	assert.NotNil(t, last)

	last, err = d.LastViewAt(ctx, 10, nil, "10.0.0.8")
	require.NoError(t, err)
	assert.Nil(t, last)
}
