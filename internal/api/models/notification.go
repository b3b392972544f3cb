package models

import "time"

// Notification is a persisted report record for admins. The live event goes
// out through the report relay; this row is what the moderation queue reads.
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;index" json:"blogId"`
	Category  string    `json:"category"`
	Reason    string    `json:"reason"`
	Status    string    `gorm:"default:'processing'" json:"status"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
