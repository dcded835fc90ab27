package handler

import (
	"net/http"

	"Plaza/config"
	"Plaza/middleware"
	"Plaza/pkg/context"
	"Plaza/pkg/response"
	"Plaza/service"
	"Plaza/types"

	"github.com/gin-gonic/gin"
)

type Report struct {
	Config        *config.Config
	ReportService service.IReportService
}

func (h *Report) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	reports := r.Group("/v1/reports")
	reports.POST("/submit", authorize, context.Wrap(h.Submit))
	reports.GET("/pending", authorize, middleware.AdminOnly(), context.Wrap(h.ListPending))
	reports.POST("/:report_id/resolve", authorize, middleware.AdminOnly(), context.Wrap(h.Resolve))
}

func (h *Report) Submit(c *gin.Context) error {
	var req types.SubmitReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.ReportService.Submit(c.Request.Context(), &req, userID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Report) ListPending(c *gin.Context) error {
	limit, offset := pagination(c)
	result, err := h.ReportService.ListPending(c.Request.Context(), limit, offset)
	if err != nil {
		return mapError(err)
	}
	response.Success(c, result)
	return nil
}

func (h *Report) Resolve(c *gin.Context) error {
	reportID, err := parseID(c, "report_id")
	if err != nil {
		return err
	}
	adminID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.ReportService.Resolve(c.Request.Context(), reportID, adminID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}
