package handler

import (
	"net/http"
	"strconv"

	"Plaza/config"
	"Plaza/middleware"
	"Plaza/pkg/context"
	"Plaza/pkg/response"
	"Plaza/service"
	"Plaza/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config          *config.Config
	PostService     service.IPostService
	LikeService     service.ILikeService
	BookmarkService service.IBookmarkService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	posts := r.Group("/v1/posts")
	posts.POST("/create", authorize, context.Wrap(h.Create))
	posts.GET("/list", context.Wrap(h.List))
	posts.GET("/search", context.Wrap(h.Search))
	posts.GET("/:post_id", optional, context.Wrap(h.Get))
	posts.POST("/:post_id/update", authorize, context.Wrap(h.Update))
	posts.POST("/:post_id/delete", authorize, context.Wrap(h.Delete))

	posts.POST("/:post_id/like", authorize, context.Wrap(h.Like))
	posts.POST("/:post_id/unlike", authorize, context.Wrap(h.Unlike))
	posts.POST("/:post_id/bookmark", authorize, context.Wrap(h.Bookmark))
	posts.POST("/:post_id/unbookmark", authorize, context.Wrap(h.Unbookmark))

	posts.POST("/:post_id/recount", authorize, middleware.AdminOnly(), context.Wrap(h.Recount))

	r.Group("/v1/bookmarks").GET("/list", authorize, context.Wrap(h.ListBookmarks))
}

func (h *Post) Create(c *gin.Context) error {
	var req types.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	post, err := h.PostService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, post)
	return nil
}

func (h *Post) Get(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}

	// 未登录也能看帖子，浏览按 IP 去重
	var currentUserID *uint64
	if uid, err := context.GetUserID(c); err == nil && uid > 0 {
		currentUserID = &uid
	}

	detail, err := h.PostService.Get(c.Request.Context(), postID, currentUserID, c.ClientIP())
	if err != nil {
		return mapError(err)
	}

	response.Success(c, detail)
	return nil
}

func (h *Post) Update(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}
	var req types.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.PostService.Update(c.Request.Context(), postID, &req, userID, context.IsAdmin(c)); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Post) Delete(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.PostService.Delete(c.Request.Context(), postID, userID, context.IsAdmin(c)); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Post) List(c *gin.Context) error {
	limit, offset := pagination(c)
	result, err := h.PostService.List(c.Request.Context(), limit, offset)
	if err != nil {
		return mapError(err)
	}
	response.Success(c, result)
	return nil
}

func (h *Post) Search(c *gin.Context) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return response.NewError(http.StatusBadRequest, "keyword 不能为空")
	}
	limit, offset := pagination(c)
	result, err := h.PostService.Search(c.Request.Context(), keyword, limit, offset)
	if err != nil {
		return mapError(err)
	}
	response.Success(c, result)
	return nil
}

func (h *Post) Like(c *gin.Context) error {
	return h.doLike(c, true)
}

func (h *Post) Unlike(c *gin.Context) error {
	return h.doLike(c, false)
}

func (h *Post) doLike(c *gin.Context, like bool) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var state *types.LikeState
	if like {
		state, err = h.LikeService.Like(c.Request.Context(), service.LikePost, postID, userID)
	} else {
		state, err = h.LikeService.Unlike(c.Request.Context(), service.LikePost, postID, userID)
	}
	if err != nil {
		return mapError(err)
	}

	response.Success(c, state)
	return nil
}

func (h *Post) Bookmark(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.BookmarkService.Bookmark(c.Request.Context(), postID, userID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Post) Unbookmark(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if _, err := h.BookmarkService.Unbookmark(c.Request.Context(), postID, userID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func (h *Post) ListBookmarks(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	limit, offset := pagination(c)

	posts, total, err := h.BookmarkService.ListUserBookmarks(c.Request.Context(), userID, limit, offset)
	if err != nil {
		return mapError(err)
	}

	response.Success(c, types.PostListResponse{Posts: posts, Total: total})
	return nil
}

// Recount 从账本重算帖子计数，对账接口
func (h *Post) Recount(c *gin.Context) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return err
	}

	ctx := c.Request.Context()
	if err := h.LikeService.RecountLikes(ctx, service.LikePost, postID); err != nil {
		return mapError(err)
	}
	if err := h.PostService.RecountCommentCount(ctx, postID); err != nil {
		return mapError(err)
	}

	response.Success(c, nil)
	return nil
}

func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+"参数错误")
	}
	return id, nil
}

func pagination(c *gin.Context) (limit, offset int) {
	page := types.DefaultPage
	size := types.DefaultPageSize
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= types.MaxPageSize {
		size = v
	}
	return size, (page - 1) * size
}
