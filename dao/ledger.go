package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// LedgerKind 一次性互动的类型，封闭枚举
type LedgerKind int8

const (
	KindPostLike LedgerKind = iota + 1
	KindCommentLike
	KindBookmark
	KindQuestionVote
	KindAnswerVote
	KindView
)

var (
	// ErrDuplicateInteraction 同一 (kind, target, user) 已存在记录
	ErrDuplicateInteraction = errors.New("重复的互动记录")
	ErrUnknownKind          = errors.New("未知的互动类型")
)

// LedgerRecord 各互动表的统一视图
type LedgerRecord struct {
	ID        uint64    `gorm:"column:id"`
	TargetID  uint64    `gorm:"column:target_id"`
	UserID    uint64    `gorm:"column:user_id"`
	VoteType  int8      `gorm:"column:vote_type"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// ledgerTable 互动类型到表结构的映射描述
type ledgerTable struct {
	table     string
	targetCol string
	hasVote   bool
}

// 互动类型查表分发，新增类型只需要补一行
var ledgerTables = map[LedgerKind]ledgerTable{
	KindPostLike:     {table: "post_likes", targetCol: "post_id"},
	KindCommentLike:  {table: "comment_likes", targetCol: "comment_id"},
	KindBookmark:     {table: "bookmarks", targetCol: "post_id"},
	KindQuestionVote: {table: "question_votes", targetCol: "question_id", hasVote: true},
	KindAnswerVote:   {table: "answer_votes", targetCol: "answer_id", hasVote: true},
	KindView:         {table: "view_records", targetCol: "post_id"},
}

// LedgerDAO 互动账本，记录 "用户 U 在时刻 T0 对目标 T 做了互动 M"。
// 只负责记录本身，派生计数由上层服务在同一事务里维护。
type LedgerDAO struct {
	Db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{Db: db}
}

// WithTx 返回绑定到指定事务的账本视图
func (d *LedgerDAO) WithTx(tx *gorm.DB) *LedgerDAO {
	return &LedgerDAO{Db: tx}
}

// Record 写入一条互动记录。
// 同一 (kind, target, user) 已有记录时返回 ErrDuplicateInteraction；
// 浏览记录(KindView)只追加，不做重复检查，去重由浏览窗口负责。
func (d *LedgerDAO) Record(ctx context.Context, kind LedgerKind, targetID, userID uint64, voteType int8) error {
	t, ok := ledgerTables[kind]
	if !ok {
		return ErrUnknownKind
	}

	if kind != KindView {
		var count int64
		err := d.Db.WithContext(ctx).Table(t.table).
			Where(t.targetCol+" = ? AND user_id = ?", targetID, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateInteraction
		}
	}

	now := time.Now()
	values := map[string]any{
		t.targetCol:  targetID,
		"user_id":    userID,
		"created_at": now,
	}
	if t.hasVote {
		values["vote_type"] = voteType
		values["updated_at"] = now
	}

	err := d.Db.WithContext(ctx).Table(t.table).Create(values).Error
	// 唯一索引兜底，并发下先检查后插入仍可能撞车
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateInteraction
	}
	return err
}

// Remove 删除互动记录，记录不存在时返回 false 而不是错误
func (d *LedgerDAO) Remove(ctx context.Context, kind LedgerKind, targetID, userID uint64) (bool, error) {
	t, ok := ledgerTables[kind]
	if !ok {
		return false, ErrUnknownKind
	}
	result := d.Db.WithContext(ctx).
		Exec("DELETE FROM "+t.table+" WHERE "+t.targetCol+" = ? AND user_id = ?", targetID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Find 查询指定用户对指定目标的互动记录，不存在返回 nil
func (d *LedgerDAO) Find(ctx context.Context, kind LedgerKind, targetID, userID uint64) (*LedgerRecord, error) {
	t, ok := ledgerTables[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	sel := "id, " + t.targetCol + " AS target_id, user_id, created_at"
	if t.hasVote {
		sel += ", vote_type"
	}

	var rec LedgerRecord
	err := d.Db.WithContext(ctx).Table(t.table).
		Select(sel).
		Where(t.targetCol+" = ? AND user_id = ?", targetID, userID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateVoteType 原地切换投票方向。
// 带旧方向条件的乐观更新，返回是否真的改到了行，
// 并发下另一个请求先切换时这里会落空
func (d *LedgerDAO) UpdateVoteType(ctx context.Context, kind LedgerKind, targetID, userID uint64, oldType, newType int8) (bool, error) {
	t, ok := ledgerTables[kind]
	if !ok || !t.hasVote {
		return false, ErrUnknownKind
	}
	result := d.Db.WithContext(ctx).Table(t.table).
		Where(t.targetCol+" = ? AND user_id = ? AND vote_type = ?", targetID, userID, oldType).
		Updates(map[string]any{"vote_type": newType, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByTarget 统计目标的互动总数，用于对账重算
func (d *LedgerDAO) CountByTarget(ctx context.Context, kind LedgerKind, targetID uint64) (int64, error) {
	t, ok := ledgerTables[kind]
	if !ok {
		return 0, ErrUnknownKind
	}
	var count int64
	err := d.Db.WithContext(ctx).Table(t.table).
		Where(t.targetCol+" = ?", targetID).
		Count(&count).Error
	return count, err
}

// CountVotes 统计目标指定方向的票数
func (d *LedgerDAO) CountVotes(ctx context.Context, kind LedgerKind, targetID uint64, voteType int8) (int64, error) {
	t, ok := ledgerTables[kind]
	if !ok || !t.hasVote {
		return 0, ErrUnknownKind
	}
	var count int64
	err := d.Db.WithContext(ctx).Table(t.table).
		Where(t.targetCol+" = ? AND vote_type = ?", targetID, voteType).
		Count(&count).Error
	return count, err
}

// BatchLiked 批量查询用户对一组目标是否有互动记录
func (d *LedgerDAO) BatchLiked(ctx context.Context, kind LedgerKind, targetIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(targetIDs) == 0 {
		return result, nil
	}
	t, ok := ledgerTables[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	var ids []uint64
	err := d.Db.WithContext(ctx).Table(t.table).
		Select(t.targetCol).
		Where(t.targetCol+" IN ? AND user_id = ?", targetIDs, userID).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ListBookmarkedPostIDs 按收藏时间倒序取用户收藏的帖子 ID
func (d *LedgerDAO) ListBookmarkedPostIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	base := d.Db.WithContext(ctx).Table("bookmarks").Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := base.
		Select("post_id").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&ids).Error
	return ids, total, err
}

// RecordView 追加一条浏览记录，登录用户记 user_id，匿名记 ip
func (d *LedgerDAO) RecordView(ctx context.Context, postID uint64, userID *uint64, ipAddress string) error {
	values := map[string]any{
		"post_id":    postID,
		"ip_address": ipAddress,
		"created_at": time.Now(),
	}
	if userID != nil {
		values["user_id"] = *userID
	}
	return d.Db.WithContext(ctx).Table("view_records").Create(values).Error
}

// LastViewAt 查询相关键最近一次浏览时间，没有记录返回 nil。
// 登录用户按 (post, user) 查，匿名按 (post, ip) 查
func (d *LedgerDAO) LastViewAt(ctx context.Context, postID uint64, userID *uint64, ipAddress string) (*time.Time, error) {
	q := d.Db.WithContext(ctx).Table("view_records").
		Select("created_at").
		Where("post_id = ?", postID)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	} else {
		q = q.Where("user_id IS NULL AND ip_address = ?", ipAddress)
	}

	var rec LedgerRecord
	err := q.Order("created_at DESC").Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec.CreatedAt, nil
}
