package handlers

import (
	"net/http"

	"court_watch_go/db"
	"court_watch_go/services"

	"github.com/labstack/echo/v4"
)

func GetNotificationsHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	service := services.NewNotificationService(db.DB)
	notifications, err := service.GetUserNotifications(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load notifications"})
	}
	return c.JSON(http.StatusOK, notifications)
}

func GetUnreadCountHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	service := services.NewNotificationService(db.DB)
	count, err := service.GetUnreadCount(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to count notifications"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}

func MarkNotificationReadHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	notificationID := c.Param("id")

	service := services.NewNotificationService(db.DB)
	if err := service.MarkAsRead(notificationID, userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to mark as read"})
	}
	return c.NoContent(http.StatusNoContent)
}

func MarkAllNotificationsReadHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	service := services.NewNotificationService(db.DB)
	if err := service.MarkAllAsRead(userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to mark all as read"})
	}
	return c.NoContent(http.StatusNoContent)
}
