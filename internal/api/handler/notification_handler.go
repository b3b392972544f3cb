package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bloghub/internal/api/middleware"
	"bloghub/internal/api/models"
	"bloghub/internal/api/respond"
	"bloghub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the moderation queue to admins.
type NotificationHandler struct {
	notificationService service.NotificationService
	userService         service.UserService
}

func NewNotificationHandler(notificationService service.NotificationService, userService service.UserService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		userService:         userService,
	}
}

func (h *NotificationHandler) RegisterRoutes(private *gin.RouterGroup) {
	private.GET("/unread", h.Unread)
	private.POST("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) requireAdmin(c *gin.Context) bool {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Error(c, http.StatusUnauthorized, "User not authenticated")
		return false
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "User not authenticated")
		return false
	}
	if user.Role != models.RoleAdmin {
		respond.Error(c, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}

// Unread lists report notifications that have not been reviewed yet
// GET /api/notification/unread
func (h *NotificationHandler) Unread(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	notifications, err := h.notificationService.GetUnread(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Success", notifications)
}

// MarkRead marks one report notification as reviewed
// POST /api/notification/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Notification ID is required")
		return
	}

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			respond.NotFound(c, "Notification not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(c, http.StatusOK, "Notification marked as read", nil)
}
