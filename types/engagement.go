package types

import "Plaza/models"

// 分页常量
const (
	DefaultPage     int = 1  // 默认页码
	DefaultPageSize int = 20 // 默认每页数量
	MaxPageSize     int = 100
)

// LikeState 点赞操作后的目标状态
type LikeState struct {
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

// VoteState 投票操作后的目标状态。
// CurrentUserVote 为 "up" / "down"，未投票时为空串
type VoteState struct {
	VoteCount       int64  `json:"vote_count"`
	UpVoteCount     int64  `json:"up_vote_count"`
	DownVoteCount   int64  `json:"down_vote_count"`
	CurrentUserVote string `json:"current_user_vote"`
}

// VoteTypeString 投票方向的对外表示
func VoteTypeString(voteType int8) string {
	switch voteType {
	case models.VoteUp:
		return "up"
	case models.VoteDown:
		return "down"
	default:
		return ""
	}
}

// ParseVoteType 解析对外的投票方向，无效时返回 0
func ParseVoteType(s string) int8 {
	switch s {
	case "up":
		return models.VoteUp
	case "down":
		return models.VoteDown
	default:
		return 0
	}
}

// VoteRequest 投票请求
type VoteRequest struct {
	VoteType string `json:"vote_type" binding:"required,oneof=up down"`
}
