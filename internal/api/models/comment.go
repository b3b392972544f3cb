package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment supports one level of threading: a comment either has no parent or
// points at a top-level comment. No foreign-key constraint ties comments to
// blogs, so deleting a blog leaves its comments behind.
type Comment struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;index" json:"blogId"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	ParentID  *string   `gorm:"type:uuid;index" json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Association
	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (comment *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike mirrors BlogLike for comments.
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_likes_comment_user" json:"commentId"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_likes_comment_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
