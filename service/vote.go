package service

import (
	"context"
	"errors"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/types"

	"gorm.io/gorm"
)

// VoteTarget 可投票的目标类型
type VoteTarget int8

const (
	VoteQuestion VoteTarget = iota + 1
	VoteAnswer
)

type voteTargetDesc struct {
	kind  dao.LedgerKind
	model func() any
}

var voteTargets = map[VoteTarget]voteTargetDesc{
	VoteQuestion: {kind: dao.KindQuestionVote, model: func() any { return &models.Question{} }},
	VoteAnswer:   {kind: dao.KindAnswerVote, model: func() any { return &models.Answer{} }},
}

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Vote(ctx context.Context, target VoteTarget, targetID, userID uint64, voteType int8) (*types.VoteState, error)
	RemoveVote(ctx context.Context, target VoteTarget, targetID, userID uint64) (*types.VoteState, bool, error)
	CurrentVote(ctx context.Context, target VoteTarget, targetID, userID uint64) (int8, error)
	Recount(ctx context.Context, target VoteTarget, targetID uint64) error
}

type VoteService struct {
	DB          *gorm.DB
	QuestionDAO *dao.QuestionDAO
	AnswerDAO   *dao.AnswerDAO
	LedgerDAO   *dao.LedgerDAO
}

// Vote 投票。三种情形走同一个事务：
// 首投插入记录并加对应桶；同方向重复投直接拒绝；
// 反方向视为切换，原记录改方向，旧桶 -1 新桶 +1 净值 ±2，
// 对外不存在"先取消再投"的中间状态
func (s *VoteService) Vote(ctx context.Context, target VoteTarget, targetID, userID uint64, voteType int8) (*types.VoteState, error) {
	if voteType != models.VoteUp && voteType != models.VoteDown {
		return nil, ErrInvalidVoteType
	}
	desc, ok := voteTargets[target]
	if !ok {
		return nil, dao.ErrUnknownKind
	}

	authorID, err := s.loadAuthor(ctx, target, targetID)
	if err != nil {
		return nil, err
	}
	if authorID == userID {
		return nil, ErrSelfVote
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger := s.LedgerDAO.WithTx(tx)

		existing, err := ledger.Find(ctx, desc.kind, targetID, userID)
		if err != nil {
			return err
		}

		var upDelta, downDelta, netDelta int64

		switch {
		case existing == nil:
			if err := ledger.Record(ctx, desc.kind, targetID, userID, voteType); err != nil {
				if errors.Is(err, dao.ErrDuplicateInteraction) {
					return ErrDuplicateVote
				}
				return err
			}
			if voteType == models.VoteUp {
				upDelta, netDelta = 1, 1
			} else {
				downDelta, netDelta = 1, -1
			}

		case existing.VoteType == voteType:
			return ErrDuplicateVote

		default:
			switched, err := ledger.UpdateVoteType(ctx, desc.kind, targetID, userID, existing.VoteType, voteType)
			if err != nil {
				return err
			}
			if !switched {
				// 并发下别的请求先切换了方向，按重复投处理
				return ErrDuplicateVote
			}
			if voteType == models.VoteUp {
				upDelta, downDelta, netDelta = 1, -1, 2
			} else {
				upDelta, downDelta, netDelta = -1, 1, -2
			}
		}

		return tx.Model(desc.model()).
			Where("id = ?", targetID).
			UpdateColumns(map[string]any{
				"up_vote_count":   gorm.Expr("up_vote_count + ?", upDelta),
				"down_vote_count": gorm.Expr("down_vote_count + ?", downDelta),
				"vote_count":      gorm.Expr("vote_count + ?", netDelta),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.voteState(ctx, target, targetID, userID)
}

// RemoveVote 取消投票，第二个返回值表示是否真的取消了。
// 没投过票时不报错，返回 false
func (s *VoteService) RemoveVote(ctx context.Context, target VoteTarget, targetID, userID uint64) (*types.VoteState, bool, error) {
	desc, ok := voteTargets[target]
	if !ok {
		return nil, false, dao.ErrUnknownKind
	}

	if _, err := s.loadAuthor(ctx, target, targetID); err != nil {
		return nil, false, err
	}

	removed := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger := s.LedgerDAO.WithTx(tx)

		existing, err := ledger.Find(ctx, desc.kind, targetID, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}

		removed, err = ledger.Remove(ctx, desc.kind, targetID, userID)
		if err != nil || !removed {
			return err
		}

		var upDelta, downDelta, netDelta int64
		if existing.VoteType == models.VoteUp {
			upDelta, netDelta = -1, -1
		} else {
			downDelta, netDelta = -1, 1
		}

		return tx.Model(desc.model()).
			Where("id = ?", targetID).
			UpdateColumns(map[string]any{
				"up_vote_count":   gorm.Expr("up_vote_count + ?", upDelta),
				"down_vote_count": gorm.Expr("down_vote_count + ?", downDelta),
				"vote_count":      gorm.Expr("vote_count + ?", netDelta),
			}).Error
	})
	if err != nil {
		return nil, false, err
	}

	state, err := s.voteState(ctx, target, targetID, userID)
	return state, removed, err
}

// CurrentVote 当前用户对目标的投票方向，没投过返回 0
func (s *VoteService) CurrentVote(ctx context.Context, target VoteTarget, targetID, userID uint64) (int8, error) {
	desc, ok := voteTargets[target]
	if !ok {
		return 0, dao.ErrUnknownKind
	}
	rec, err := s.LedgerDAO.Find(ctx, desc.kind, targetID, userID)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.VoteType, nil
}

// Recount 从账本重算三个计数，对账用
func (s *VoteService) Recount(ctx context.Context, target VoteTarget, targetID uint64) error {
	desc, ok := voteTargets[target]
	if !ok {
		return dao.ErrUnknownKind
	}
	up, err := s.LedgerDAO.CountVotes(ctx, desc.kind, targetID, models.VoteUp)
	if err != nil {
		return err
	}
	down, err := s.LedgerDAO.CountVotes(ctx, desc.kind, targetID, models.VoteDown)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(desc.model()).
		Where("id = ?", targetID).
		UpdateColumns(map[string]any{
			"up_vote_count":   up,
			"down_vote_count": down,
			"vote_count":      up - down,
		}).Error
}

// loadAuthor 目标存在性校验，顺带取作者用于自投检查
func (s *VoteService) loadAuthor(ctx context.Context, target VoteTarget, targetID uint64) (uint64, error) {
	switch target {
	case VoteQuestion:
		question, err := s.QuestionDAO.GetByID(ctx, targetID, false)
		if err != nil {
			return 0, err
		}
		if question == nil {
			return 0, ErrNotFound
		}
		return question.UserID, nil
	case VoteAnswer:
		answer, err := s.AnswerDAO.GetByID(ctx, targetID, false)
		if err != nil {
			return 0, err
		}
		if answer == nil {
			return 0, ErrNotFound
		}
		return answer.UserID, nil
	}
	return 0, dao.ErrUnknownKind
}

func (s *VoteService) voteState(ctx context.Context, target VoteTarget, targetID, userID uint64) (*types.VoteState, error) {
	state := &types.VoteState{}

	switch target {
	case VoteQuestion:
		question, err := s.QuestionDAO.GetByID(ctx, targetID, false)
		if err != nil || question == nil {
			return nil, err
		}
		state.VoteCount = question.VoteCount
		state.UpVoteCount = question.UpVoteCount
		state.DownVoteCount = question.DownVoteCount
	case VoteAnswer:
		answer, err := s.AnswerDAO.GetByID(ctx, targetID, false)
		if err != nil || answer == nil {
			return nil, err
		}
		state.VoteCount = answer.VoteCount
		state.UpVoteCount = answer.UpVoteCount
		state.DownVoteCount = answer.DownVoteCount
	}

	current, err := s.CurrentVote(ctx, target, targetID, userID)
	if err != nil {
		return nil, err
	}
	state.CurrentUserVote = types.VoteTypeString(current)
	return state, nil
}
