package middleware

import (
	"net/http"
	"strings"

	"Plaza/pkg/context"
	"Plaza/pkg/jwt"
	"Plaza/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 登录校验，通过后把用户身份写进请求上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// OptionalAuth 可选登录。带合法 token 时写入用户身份，
// 没带或 token 无效时按匿名请求放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
					c.Set(context.CtxUserID, claims.UserID)
					c.Set(context.CtxIsAdmin, claims.IsAdmin)
				}
			}
		}
		c.Next()
	}
}

// AdminOnly 管理员校验，必须挂在 Auth 后面
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !context.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "需要管理员权限")
			return
		}
		c.Next()
	}
}
