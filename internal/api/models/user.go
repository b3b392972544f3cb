package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Silver/gold/diamond are paid tiers managed elsewhere.
const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleSilver  = "user-silver"
	RoleGold    = "user-gold"
	RoleDiamond = "user-diamond"
)

const (
	UserStatusActive = "active"
	UserStatusBanned = "banned"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Wallet       string    `gorm:"default:''" json:"wallet"`
	Address      string    `gorm:"default:''" json:"address"`
	Phone        string    `gorm:"default:''" json:"phone"`
	Avatar       string    `gorm:"default:''" json:"avatar,omitempty"`
	TokenBalance int64     `gorm:"default:0" json:"tokenBalance"`
	Role         string    `gorm:"default:'user';not null" json:"role"`
	Status       string    `gorm:"default:'active';not null" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
