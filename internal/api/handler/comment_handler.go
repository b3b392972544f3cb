package handler

import (
	"errors"
	"net/http"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/middleware"
	"bloghub/internal/api/respond"
	"bloghub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers comment routes; reading a blog's thread is public.
func (h *CommentHandler) RegisterRoutes(public, private *gin.RouterGroup) {
	public.GET("/comment-blog", h.ListByBlog)

	private.POST("/create", h.Create)
	private.GET("", h.ListAll)
	private.PUT("/:commentId", h.Update)
	private.POST("/like", h.Like)
	private.POST("/delete", h.Delete)
}

// Create adds a comment or a reply under a blog
// POST /api/comment/create
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID, blog ID, and content are required")
		return
	}

	if req.UserID == "" {
		if userID, ok := middleware.UserID(c); ok {
			req.UserID = userID
		}
	}

	comment, err := h.commentService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrParentNotFound) {
			respond.NotFound(c, "Parent comment not found")
			return
		}
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusCreated, "Comment created successfully", comment)
}

// ListByBlog returns a blog's thread as top-level comments with one level of replies
// GET /api/comment/comment-blog?blogId=
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	blogID := c.Query("blogId")
	if blogID == "" {
		respond.Error(c, http.StatusBadRequest, "Blog ID is required")
		return
	}

	comments, err := h.commentService.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", comments)
}

// ListAll returns every comment in the system
// GET /api/comment
func (h *CommentHandler) ListAll(c *gin.Context) {
	comments, err := h.commentService.ListAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", comments)
}

// Update replaces a comment's content
// PUT /api/comment/:commentId
func (h *CommentHandler) Update(c *gin.Context) {
	commentID := c.Param("commentId")

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Content is required")
		return
	}

	comment, err := h.commentService.UpdateContent(c.Request.Context(), commentID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respond.NotFound(c, "Comment not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Comment updated successfully", comment)
}

// Like toggles the session user's like on a comment
// POST /api/comment/like
func (h *CommentHandler) Like(c *gin.Context) {
	var req dto.CommentLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Comment ID is required")
		return
	}

	if req.UserID == "" {
		if userID, ok := middleware.UserID(c); ok {
			req.UserID = userID
		}
	}

	comment, err := h.commentService.ToggleLike(c.Request.Context(), req.CommentID, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respond.NotFound(c, "Comment not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", comment)
}

// Delete removes a comment and its direct replies
// POST /api/comment/delete?commentId=
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID := c.Query("commentId")
	if commentID == "" {
		respond.Error(c, http.StatusBadRequest, "Comment ID is required")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			respond.NotFound(c, "Comment not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Comment deleted successfully", nil)
}
