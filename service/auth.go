package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Plaza/config"
	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/jwt"
	"Plaza/pkg/snowflake"
	"Plaza/types"

	"golang.org/x/crypto/bcrypt"
)

const TokenTypeAccess = "access"

var (
	ErrUserExists    = errors.New("用户名已被注册")
	ErrWrongPassword = errors.New("用户名或密码错误")
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginReq) (*types.AuthResponse, error)
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.UserDAO
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)

	existing, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.Users{
		ID:        uint64(snowflake.GenID()),
		Username:  username,
		Password:  string(hashed),
		Nickname:  req.Nickname,
		Status:    models.StatusNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginReq) (*types.AuthResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// 用户不存在和密码错误返回同一个错误，不暴露用户名是否注册过
		return nil, ErrWrongPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrWrongPassword
	}
	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.Users) (*types.AuthResponse, error) {
	expire := time.Duration(s.Config.Jwt.AccessExpire) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.IsAdmin, TokenTypeAccess, expire)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Nickname:    user.Nickname,
		IsAdmin:     user.IsAdmin,
		AccessToken: token,
	}, nil
}
