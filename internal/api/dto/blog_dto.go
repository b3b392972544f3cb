package dto

import (
	"time"

	"bloghub/internal/api/models"

	"github.com/lib/pq"
)

// CreateBlogRequest carries a new post. When StoreHTML is set the content is
// uploaded to object storage and the post keeps only the returned URL.
type CreateBlogRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	AuthorID  string   `json:"authorId"`
	Tags      []string `json:"tags"`
	StoreHTML bool     `json:"storeHtml"`
}

// BlogLikeRequest identifies the post to toggle. The user defaults to the
// session holder when the payload leaves it out.
type BlogLikeRequest struct {
	BlogID string `json:"blogId" binding:"required"`
	UserID string `json:"userId"`
}

type ReportBlogRequest struct {
	BlogID   string `json:"blogId" binding:"required"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

type DeleteBlogRequest struct {
	ID string `json:"id" binding:"required"`
}

// UpdateBlogRequest uses pointers for no-clobber merge semantics.
type UpdateBlogRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
	Status   *string   `json:"status"`
}

func (r *UpdateBlogRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.Tags != nil {
		fields["tags"] = toStringArray(*r.Tags)
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}

// toStringArray converts a plain slice into the pq type GORM needs to write
// a text[] column.
func toStringArray(tags []string) pq.StringArray {
	return pq.StringArray(tags)
}

// BlogResponse is the full post shape with the author's display name in
// place of the raw author id and the membership sets resolved to id lists.
type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Author    string    `json:"authorId"` // display name, original field name kept for API compatibility
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	Likes     []string  `json:"likes"`
	Comments  []string  `json:"comments"`
	SharedBy  int64     `json:"sharedBy"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromModelToBlogResponse builds the base response; membership lists are
// filled in by the service after its batched lookups.
func FromModelToBlogResponse(blog *models.Blog, authorName string) *BlogResponse {
	return &BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Author:    authorName,
		Category:  blog.Category,
		Tags:      blog.Tags,
		Status:    blog.Status,
		Likes:     []string{},
		Comments:  []string{},
		Views:     blog.Views,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

type PaginatedBlogsResponse struct {
	Data        []BlogResponse `json:"data"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
}
