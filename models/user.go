package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User role constants
const (
	RoleAdvocate = "ADVOCATE"
	RoleUser     = "USER"
)

// User is a notification recipient. Account lifecycle (registration, OTP,
// passwords) is handled outside this service; the dispatch pipeline only
// reads contact fields and device tokens.
type User struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"not null;uniqueIndex" json:"username"`
	Email        string `gorm:"index" json:"email,omitempty"`
	MobileNo     string `json:"mobile_no,omitempty"`
	AdvocateName string `json:"advocate_name,omitempty"`
	Role         string `gorm:"not null;default:USER" json:"role"`

	DeviceTokens  []DeviceToken      `gorm:"foreignKey:UserID" json:"device_tokens,omitempty"`
	Subscriptions []UserSubscription `gorm:"foreignKey:UserID" json:"subscriptions,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// DeviceToken is a registered push token for a user's device.
type DeviceToken struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Token  string `gorm:"not null;uniqueIndex" json:"token"`
}

func (t *DeviceToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}
