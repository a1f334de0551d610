package http

import (
	"net/http"
	"strconv"

	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/notifier/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 20

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// GetNotifications godoc
// @Summary      List admin notifications
// @Description  Newest first. Only the most recent 100 events are retained.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max notifications (default 20, max 100)"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Router       /admin/notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNotificationLimit)))
	if err != nil || limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > 100 {
		limit = 100
	}

	notifications, total, err := h.notificationUseCase.GetNotifications(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
		"total":         total,
	})
}

// ClearNotifications godoc
// @Summary      Clear admin notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /admin/notifications [delete]
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	if err := h.notificationUseCase.ClearNotifications(c.Request.Context()); err != nil {
		h.logger.Error("Failed to clear notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
