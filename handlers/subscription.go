package handlers

import (
	"net/http"

	"court_watch_go/db"
	"court_watch_go/models"
	"court_watch_go/services"

	"github.com/labstack/echo/v4"
)

func CreateSubscriptionHandler(c echo.Context) error {
	var sub models.UserSubscription
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid subscription payload"})
	}

	service := services.NewSubscriptionService(db.DB)
	if err := service.CreateSubscription(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, sub)
}

func GetSubscriptionsHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	service := services.NewSubscriptionService(db.DB)
	subs, err := service.GetUserSubscriptions(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load subscriptions"})
	}
	return c.JSON(http.StatusOK, subs)
}

func DeleteSubscriptionHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	subscriptionID := c.Param("id")

	service := services.NewSubscriptionService(db.DB)
	if err := service.DeleteSubscription(subscriptionID, userID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
