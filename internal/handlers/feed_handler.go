package handlers

import (
	"net/http"

	"giglink_backend/internal/middleware"
	"giglink_backend/internal/services"
	"giglink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	*BaseHandler
	feedService *services.FeedService
}

func NewFeedHandler(base *BaseHandler, feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{BaseHandler: base, feedService: feedService}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	posts.Use(middleware.AuthMiddleware())
	{
		posts.POST("", h.CreatePost)
		posts.GET("", h.ListPosts)
		posts.DELETE("/:postId", h.DeletePost)
	}
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.feedService.CreatePost(authorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *FeedHandler) ListPosts(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 50)

	posts, err := h.feedService.ListRecent(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": len(posts)})
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.feedService.DeletePost(c.Param("postId"), callerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
