package service

import "errors"

// 业务错误，上层 handler 映射到 HTTP 状态码。
// 这些错误都不是瞬态的，调用方不应自动重试
var (
	ErrNotFound     = errors.New("目标不存在")
	ErrUnauthorized = errors.New("无权执行该操作")

	ErrSelfVote          = errors.New("不能给自己的内容投票")
	ErrDuplicateVote     = errors.New("已经投过相同的票")
	ErrAlreadyLiked      = errors.New("已经点赞过了")
	ErrAlreadyBookmarked = errors.New("已经收藏过了")

	ErrInvalidVoteType = errors.New("无效的投票方向")

	ErrInvalidState   = errors.New("当前状态不允许该操作")
	ErrCannotDelete   = errors.New("该内容不允许删除")
	ErrNestingTooDeep = errors.New("只支持一层回复")
)
