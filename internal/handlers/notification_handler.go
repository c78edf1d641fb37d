package handlers

import (
	"net/http"

	"cornerstone_backend/internal/middleware"
	"cornerstone_backend/internal/services"
	"cornerstone_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")

	// List uses OptionalAuth: without a principal it returns an empty list,
	// not a 401. Route gating is the shell's responsibility.
	notifications.GET("", middleware.OptionalAuth(), h.List)

	authed := notifications.Group("")
	authed.Use(middleware.Auth())
	{
		authed.PUT("/:notificationId/read", h.MarkRead)
		authed.PUT("/read-all", h.MarkAllRead)
		authed.GET("/unread-count", h.UnreadCount)
	}

	// Creation is reserved for trusted server-side workflows (billing,
	// provisioning, ...) acting on behalf of an owner.
	notifications.POST("", middleware.WorkflowAuth(), h.Create)
}

func (h *NotificationHandler) List(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	response := dto.NotificationListResponse{}
	items, err := h.notificationService.ListForOwner(ownerID)
	response.Notifications = items
	if err != nil {
		// Display-only text; the client renders it inline and must not
		// branch on its contents.
		response.Error = err.Error()
	}

	c.JSON(http.StatusOK, response)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	notificationID := c.Param("notificationId")

	if err := h.notificationService.MarkRead(ownerID, notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(ownerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(ownerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	id, err := h.notificationService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateNotificationResponse{ID: id})
}
