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

type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// RegisterRoutes registers user routes: signup/login/logout stay public,
// everything else sits behind the session guard.
func (h *UserHandler) RegisterRoutes(public, private *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	public.POST("/create", h.Create)
	public.POST("/login", loginLimiter, h.Login)
	public.POST("/logout", h.Logout)

	private.GET("/list", h.List)
	private.POST("/delete", h.Delete)
	private.GET("/detail", h.Detail)
	private.PUT("/update", h.Update)
	private.GET("/profile", h.Profile)
	private.GET("/me", h.Me)
}

// Create handles signup
// POST /api/user/create
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			respond.Error(c, http.StatusBadRequest, "Email already exists")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusCreated, "User created successfully", dto.FromModelToUserResponse(user))
}

// Login verifies credentials and sets the session cookie
// POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			respond.Error(c, http.StatusBadRequest, "Account does not exist")
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			respond.Error(c, http.StatusBadRequest, "Email or password incorrect")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	maxAge := int(h.authService.TokenTTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)

	respond.JSON(c, http.StatusCreated, "Login successfully", dto.LoginResponse{Token: token})
}

// Logout clears the session cookie
// POST /api/user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	respond.JSON(c, http.StatusOK, "Logged out successfully", nil)
}

// List returns one page of users, password excluded
// GET /api/user/list?page=1&limit=3
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 3
	}

	users, err := h.userService.List(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", users)
}

// Delete removes an account by id
// POST /api/user/delete
func (h *UserHandler) Delete(c *gin.Context) {
	var req dto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.NotFound(c, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusCreated, "User deleted successfully", nil)
}

// Detail returns a single redacted user record
// GET /api/user/detail?id=
func (h *UserHandler) Detail(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.NotFound(c, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", user)
}

// Update applies a partial profile update; omitted fields are preserved
// PUT /api/user/update?id=
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.NotFound(c, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "User updated successfully", user)
}

// Profile returns the minimal identity of the cookie holder
// GET /api/user/profile
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.NotFound(c, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "User profile", dto.ProfileResponse{
		ID:       user.ID,
		Role:     user.Role,
		Username: user.Username,
	})
}

// Me returns the full own record, password and avatar excluded
// GET /api/user/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respond.NotFound(c, "User not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "User information retrieved successfully", user)
}
