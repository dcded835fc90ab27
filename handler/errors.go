package handler

import (
	"errors"
	"net/http"

	"Plaza/pkg/response"
	"Plaza/service"
)

// mapError 把业务错误映射到 HTTP 状态码。
// 没命中的错误按 500 处理
func mapError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrSelfVote):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrDuplicateVote),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrAlreadyBookmarked),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrCannotDelete),
		errors.Is(err, service.ErrUserExists):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidVoteType),
		errors.Is(err, service.ErrNestingTooDeep):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	return err
}
