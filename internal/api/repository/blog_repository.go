package repository

import (
	"context"

	"bloghub/internal/api/models"

	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog data operations, including
// the like/share membership sets the service layer toggles.
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	FindPublished(ctx context.Context, limit int) ([]models.Blog, error)
	List(ctx context.Context, page, limit int) ([]models.Blog, int64, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Blog, error)
	UpdateStatus(ctx context.Context, id, status string) error
	IncrementViews(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	HasLike(ctx context.Context, blogID, userID string) (bool, error)
	AddLike(ctx context.Context, blogID, userID string) error
	RemoveLike(ctx context.Context, blogID, userID string) error
	LikeUserIDs(ctx context.Context, blogID string) ([]string, error)
	LikeUserIDsByBlogs(ctx context.Context, blogIDs []string) (map[string][]string, error)

	ShareCount(ctx context.Context, blogID string) (int64, error)
	ShareCountsByBlogs(ctx context.Context, blogIDs []string) (map[string]int64, error)
	CommentIDs(ctx context.Context, blogID string) ([]string, error)
	CommentIDsByBlogs(ctx context.Context, blogIDs []string) (map[string][]string, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindPublished returns the newest published posts, capped at limit.
func (r *blogRepository) FindPublished(ctx context.Context, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.BlogStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// List pages over every post regardless of status, newest first.
func (r *blogRepository) List(ctx context.Context, page, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Blog, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

func (r *blogRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Blog{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

// Delete removes the post only. Comments keep their blog_id and are left in
// place; see the comment model for why.
func (r *blogRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Blog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) HasLike(ctx context.Context, blogID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BlogLike{}).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *blogRepository) AddLike(ctx context.Context, blogID, userID string) error {
	return r.db.WithContext(ctx).Create(&models.BlogLike{BlogID: blogID, UserID: userID}).Error
}

func (r *blogRepository) RemoveLike(ctx context.Context, blogID, userID string) error {
	return r.db.WithContext(ctx).
		Where("blog_id = ? AND user_id = ?", blogID, userID).
		Delete(&models.BlogLike{}).Error
}

func (r *blogRepository) LikeUserIDs(ctx context.Context, blogID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.BlogLike{}).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// LikeUserIDsByBlogs fetches likes for a whole listing page in one query and
// groups them by post.
func (r *blogRepository) LikeUserIDsByBlogs(ctx context.Context, blogIDs []string) (map[string][]string, error) {
	grouped := make(map[string][]string, len(blogIDs))
	if len(blogIDs) == 0 {
		return grouped, nil
	}
	var likes []models.BlogLike
	if err := r.db.WithContext(ctx).
		Where("blog_id IN ?", blogIDs).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, like := range likes {
		grouped[like.BlogID] = append(grouped[like.BlogID], like.UserID)
	}
	return grouped, nil
}

func (r *blogRepository) ShareCount(ctx context.Context, blogID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BlogShare{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error
	return count, err
}

func (r *blogRepository) ShareCountsByBlogs(ctx context.Context, blogIDs []string) (map[string]int64, error) {
	grouped := make(map[string]int64, len(blogIDs))
	if len(blogIDs) == 0 {
		return grouped, nil
	}
	var shares []models.BlogShare
	if err := r.db.WithContext(ctx).Where("blog_id IN ?", blogIDs).Find(&shares).Error; err != nil {
		return nil, err
	}
	for _, share := range shares {
		grouped[share.BlogID]++
	}
	return grouped, nil
}

// CommentIDs returns comment ids for a post in insertion order.
func (r *blogRepository) CommentIDs(ctx context.Context, blogID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *blogRepository) CommentIDsByBlogs(ctx context.Context, blogIDs []string) (map[string][]string, error) {
	grouped := make(map[string][]string, len(blogIDs))
	if len(blogIDs) == 0 {
		return grouped, nil
	}
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Select("id", "blog_id").
		Where("blog_id IN ?", blogIDs).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	for _, comment := range comments {
		grouped[comment.BlogID] = append(grouped[comment.BlogID], comment.ID)
	}
	return grouped, nil
}
