package dto

import (
	"time"

	"bloghub/internal/api/models"
)

// CreateCommentRequest supports top-level comments and one level of replies
// via ParentID. UserID defaults to the session holder when omitted.
type CreateCommentRequest struct {
	UserID   string  `json:"userId"`
	BlogID   string  `json:"blogId" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parentId"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentLikeRequest struct {
	CommentID string `json:"commentId" binding:"required"`
	UserID    string `json:"userId"`
}

// CommentResponse carries one comment with its author's display name, like
// membership and, for top-level comments, its direct children.
type CommentResponse struct {
	ID        string            `json:"id"`
	BlogID    string            `json:"blogId"`
	UserID    string            `json:"userId"` // display name resolved by the service
	Content   string            `json:"content"`
	ParentID  *string           `json:"parentId"`
	Likes     []string          `json:"likes"`
	Children  []CommentResponse `json:"children"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// FromModelToCommentResponse converts a Comment model; likes and children
// are attached by the service.
func FromModelToCommentResponse(comment *models.Comment, username string) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		UserID:    username,
		Content:   comment.Content,
		ParentID:  comment.ParentID,
		Likes:     []string{},
		Children:  []CommentResponse{},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
