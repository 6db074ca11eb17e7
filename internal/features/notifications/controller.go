package notifications

import (
	"errors"
	"io"
	"net/http"
	"time"

	users_middleware "marca/internal/features/users/middleware"
	"marca/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationController struct {
	notificationService *NotificationService
}

func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notificationRoutes := router.Group("/notifications")

	notificationRoutes.GET("", c.ListNotifications)
	notificationRoutes.GET("/unread-count", c.GetUnreadCount)
	notificationRoutes.POST("/:id/read", c.MarkRead)
	notificationRoutes.POST("/read-all", c.MarkAllRead)
	notificationRoutes.GET("/stream", c.StreamEvents)
}

// ListNotifications
// @Summary List the current user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} ListNotificationsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request := &ListNotificationsRequestDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.notificationService.ListNotifications(user, request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUnreadCount
// @Summary Count the current user's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponseDTO
// @Failure 401 {object} map[string]string
// @Router /notifications/unread-count [get]
func (c *NotificationController) GetUnreadCount(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.notificationService.GetUnreadCount(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// MarkRead
// @Summary Mark one notification as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notificationIDStr := ctx.Param("id")
	notificationID, err := uuid.Parse(notificationIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := c.notificationService.MarkRead(notificationID, user); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead
// @Summary Mark all of the current user's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.notificationService.MarkAllRead(user); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// StreamEvents
// @Summary Stream realtime change events over SSE
// @Description Relays the user's change events; the stream is advisory, clients re-fetch state from the store
// @Tags notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream"
// @Failure 401 {object} map[string]string
// @Router /notifications/stream [get]
func (c *NotificationController) StreamEvents(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	events := make(chan []byte, 16)
	requestCtx := ctx.Request.Context()

	go func() {
		err := c.notificationService.StreamEvents(requestCtx, user.ID, func(message []byte) {
			select {
			case events <- message:
			default:
				// Slow consumer: drop, the store is the source of truth
			}
		})
		if err != nil {
			logger.GetLogger().Error("event stream subscription failed",
				"userId", user.ID.String(), "error", err.Error())
		}
	}()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-requestCtx.Done():
			return false
		case message := <-events:
			ctx.SSEvent("change", string(message))
			return true
		case <-heartbeat.C:
			ctx.SSEvent("ping", "{}")
			return true
		}
	})
}
