package handler

import (
	"net/http"

	"Plaza/config"
	"Plaza/middleware"
	"Plaza/pkg/context"
	"Plaza/pkg/response"
	"Plaza/service"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	upload := r.Group("/v1/upload")
	upload.POST("/image", authorize, context.Wrap(h.UploadImage))
}

// UploadImage 上传图片，发帖时通过 attachment_ids 把图和帖子绑定
func (h *Upload) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少 image 文件")
	}

	resp, err := h.UploadService.UploadImage(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	response.Success(c, resp)
	return nil
}
