package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Blog statuses. There is no enforced transition graph: a generic update may
// move a post between any two statuses.
const (
	BlogStatusDraft      = "draft"
	BlogStatusPublished  = "published"
	BlogStatusProcessing = "processing"
	BlogStatusBlock      = "block"
)

// DefaultTag is applied when a post is created without tags.
const DefaultTag = "#blogstudy"

type Blog struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null;type:text" json:"content"` // inline text or public URL of stored HTML
	AuthorID string `gorm:"type:uuid;not null;index" json:"authorId"`
	Category string `json:"category"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	Status    string    `gorm:"default:'draft';not null" json:"status"`
	Views     int64     `gorm:"default:0" json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}

func (blog *Blog) BeforeCreate(tx *gorm.DB) (err error) {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	if len(blog.Tags) == 0 {
		blog.Tags = pq.StringArray{DefaultTag}
	}
	return
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogLike is one row per (blog, user) membership in a post's like set. The
// unique index gives the set semantics the service layer relies on.
type BlogLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_likes_blog_user" json:"blogId"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_likes_blog_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}

// BlogShare records a repost of a blog by a user.
type BlogShare struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BlogID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_shares_blog_user" json:"blogId"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_blog_shares_blog_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (BlogShare) TableName() string {
	return "blog_shares"
}
