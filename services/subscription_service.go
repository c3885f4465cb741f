package services

import (
	"fmt"

	"court_watch_go/models"

	"gorm.io/gorm"
)

// SubscriptionService manages a user's hearing subscriptions.
type SubscriptionService struct {
	DB *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db}
}

func (s *SubscriptionService) CreateSubscription(sub *models.UserSubscription) error {
	if sub.UserID == "" {
		return fmt.Errorf("subscription requires a user")
	}
	if !sub.HasCriteria() {
		return fmt.Errorf("subscription requires at least one criterion")
	}
	if sub.CourtLevel != "" && !models.IsValidCourtLevel(sub.CourtLevel) {
		return fmt.Errorf("invalid court level: %s", sub.CourtLevel)
	}
	return s.DB.Create(sub).Error
}

func (s *SubscriptionService) GetUserSubscriptions(userID string) ([]models.UserSubscription, error) {
	var subs []models.UserSubscription
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *SubscriptionService) DeleteSubscription(subscriptionID, userID string) error {
	result := s.DB.Where("id = ? AND user_id = ?", subscriptionID, userID).
		Delete(&models.UserSubscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription not found")
	}
	return nil
}
