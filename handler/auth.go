package handler

import (
	"net/http"

	"Plaza/pkg/context"
	"Plaza/pkg/response"
	"Plaza/service"
	"Plaza/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(h.Register))
	auth.POST("/login", context.Wrap(h.Login))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, resp)
	return nil
}
