package types

// RegisterReq 注册请求
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Nickname string `json:"nickname" binding:"omitempty,max=64"`
}

// LoginReq 登录请求
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID      uint64 `json:"user_id,string"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	IsAdmin     bool   `json:"is_admin"`
	AccessToken string `json:"access_token"`
}
