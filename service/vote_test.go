package service

import (
	"context"
	"testing"

	"Plaza/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteQuestionUp(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	state, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteUp)
	require.NoError(t, err)
	assert.EqualValues(t, 1, state.VoteCount)
	assert.EqualValues(t, 1, state.UpVoteCount)
	assert.EqualValues(t, 0, state.DownVoteCount)
	assert.Equal(t, "up", state.CurrentUserVote)
}

func TestVoteSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	// 作者给自己投票直接拒绝
	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 1, models.VoteUp)
	assert.ErrorIs(t, err, ErrSelfVote)
	assert.EqualValues(t, 0, reloadQuestion(t, db, question.ID).VoteCount)
}

func TestVoteDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteUp)
	require.NoError(t, err)

	// 同方向重复投拒绝，计数不动
	_, err = svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteUp)
	assert.ErrorIs(t, err, ErrDuplicateVote)

	q := reloadQuestion(t, db, question.ID)
	assert.EqualValues(t, 1, q.VoteCount)
	assert.EqualValues(t, 1, q.UpVoteCount)
}

func TestVoteSwitch(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteUp)
	require.NoError(t, err)

	// 反方向投票是切换：up 桶 -1，down 桶 +1，净值 -2
	state, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteDown)
	require.NoError(t, err)
	assert.EqualValues(t, -1, state.VoteCount)
	assert.EqualValues(t, 0, state.UpVoteCount)
	assert.EqualValues(t, 1, state.DownVoteCount)
	assert.Equal(t, "down", state.CurrentUserVote)

	// 账本里仍然只有一条记录
	var count int64
	require.NoError(t, db.Table("question_votes").
		Where("question_id = ? AND user_id = ?", question.ID, 2).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVoteInvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidVoteType)
	_, err = svc.Vote(ctx, VoteQuestion, question.ID, 2, 5)
	assert.ErrorIs(t, err, ErrInvalidVoteType)
}

func TestRemoveVote(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteDown)
	require.NoError(t, err)

	state, removed, err := svc.RemoveVote(ctx, VoteQuestion, question.ID, 2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.EqualValues(t, 0, state.VoteCount)
	assert.EqualValues(t, 0, state.DownVoteCount)
	assert.Equal(t, "", state.CurrentUserVote)

	// 没投过票时取消不报错
	_, removed, err = svc.RemoveVote(ctx, VoteQuestion, question.ID, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestVoteAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)
	answer := seedAnswer(t, db, question.ID, 2)

	// 提问者可以给回答投票，回答作者不能给自己投
	state, err := svc.Vote(ctx, VoteAnswer, answer.ID, 1, models.VoteUp)
	require.NoError(t, err)
	assert.EqualValues(t, 1, state.UpVoteCount)

	_, err = svc.Vote(ctx, VoteAnswer, answer.ID, 2, models.VoteUp)
	assert.ErrorIs(t, err, ErrSelfVote)
}

func TestVoteRecount(t *testing.T) {
	db := newTestDB(t)
	svc := newVoteService(db)
	ctx := context.Background()

	question := seedQuestion(t, db, 1)

	_, err := svc.Vote(ctx, VoteQuestion, question.ID, 2, models.VoteUp)
	require.NoError(t, err)
	_, err = svc.Vote(ctx, VoteQuestion, question.ID, 3, models.VoteUp)
	require.NoError(t, err)
	_, err = svc.Vote(ctx, VoteQuestion, question.ID, 4, models.VoteDown)
	require.NoError(t, err)

	// 弄脏计数后重算，恢复到账本真值
	require.NoError(t, db.Model(&models.Question{}).
		Where("id = ?", question.ID).
		UpdateColumns(map[string]any{
			"vote_count":      77,
			"up_vote_count":   88,
			"down_vote_count": 99,
		}).Error)

	require.NoError(t, svc.Recount(ctx, VoteQuestion, question.ID))

	q := reloadQuestion(t, db, question.ID)
	assert.EqualValues(t, 2, q.UpVoteCount)
	assert.EqualValues(t, 1, q.DownVoteCount)
	assert.EqualValues(t, 1, q.VoteCount)
}
