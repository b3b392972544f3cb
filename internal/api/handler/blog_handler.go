package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/middleware"
	"bloghub/internal/api/respond"
	"bloghub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// RegisterRoutes registers blog routes; reads are public, writes require a session.
func (h *BlogHandler) RegisterRoutes(public, private *gin.RouterGroup) {
	public.GET("/detail", h.Detail)
	public.GET("/list", h.List)
	public.GET("/list-page", h.ListPage)

	private.POST("/create", h.Create)
	private.POST("/like", h.Like)
	private.POST("/report", h.Report)
	private.POST("/delete", h.Delete)
	private.PUT("/:id", h.Update)
}

// Create stores a new blog; the author defaults to the session user
// POST /api/blog/create
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Title, content, and category are required")
		return
	}

	if req.AuthorID == "" {
		if userID, ok := middleware.UserID(c); ok {
			req.AuthorID = userID
		}
	}

	blog, err := h.blogService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthorNotFound) {
			respond.NotFound(c, "Author not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusCreated, "Blog created successfully", blog)
}

// Detail returns one blog and bumps its view counter
// GET /api/blog/detail?id=
func (h *BlogHandler) Detail(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "Blog ID is required")
		return
	}

	blog, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", blog)
}

// List returns the newest published blogs without their bodies
// GET /api/blog/list
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogService.ListPublished(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", blogs)
}

// ListPage returns one page of blogs across every status
// GET /api/blog/list-page?page=1&limit=5
func (h *BlogHandler) ListPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}

	blogs, err := h.blogService.ListPage(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", blogs)
}

// Like toggles the session user's like on a blog
// POST /api/blog/like
func (h *BlogHandler) Like(c *gin.Context) {
	var req dto.BlogLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Blog ID is required")
		return
	}

	if req.UserID == "" {
		if userID, ok := middleware.UserID(c); ok {
			req.UserID = userID
		}
	}

	blog, err := h.blogService.ToggleLike(c.Request.Context(), req.BlogID, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", blog)
}

// Report flags a blog for moderation and relays the report
// POST /api/blog/report
func (h *BlogHandler) Report(c *gin.Context) {
	var req dto.ReportBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Blog ID and reason are required")
		return
	}

	if err := h.blogService.Report(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Blog reported successfully", nil)
}

// Update applies a partial edit; omitted fields keep their stored values
// PUT /api/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Blog updated successfully", blog)
}

// Delete removes a blog; its comments are left in place
// POST /api/blog/delete
func (h *BlogHandler) Delete(c *gin.Context) {
	var req dto.DeleteBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Blog ID is required")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respond.NotFound(c, "Blog not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Blog deleted successfully", nil)
}
