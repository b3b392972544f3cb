package repository

import (
	"context"

	"bloghub/internal/api/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	FindByBlog(ctx context.Context, blogID string) ([]models.Comment, error)
	FindAll(ctx context.Context) ([]models.Comment, error)
	ChildIDs(ctx context.Context, parentID string) ([]string, error)
	UpdateContent(ctx context.Context, id, content string) (*models.Comment, error)
	DeleteWithChildren(ctx context.Context, id string) error

	HasLike(ctx context.Context, commentID, userID string) (bool, error)
	AddLike(ctx context.Context, commentID, userID string) error
	RemoveLike(ctx context.Context, commentID, userID string) error
	LikeUserIDs(ctx context.Context, commentID string) ([]string, error)
	LikeUserIDsByComments(ctx context.Context, commentIDs []string) (map[string][]string, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByBlog returns every comment on a post, oldest first, so the service
// can build the one-level tree in memory.
func (r *commentRepository) FindByBlog(ctx context.Context, blogID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ChildIDs(ctx context.Context, parentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) (*models.Comment, error) {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// DeleteWithChildren removes the comment and its direct children. Replies to
// those children keep their parent_id and become unreachable from the tree;
// the cascade stops at one level.
func (r *commentRepository) DeleteWithChildren(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("parent_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) HasLike(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *commentRepository) AddLike(ctx context.Context, commentID, userID string) error {
	return r.db.WithContext(ctx).Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error
}

func (r *commentRepository) RemoveLike(ctx context.Context, commentID, userID string) error {
	return r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{}).Error
}

func (r *commentRepository) LikeUserIDs(ctx context.Context, commentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// LikeUserIDsByComments fetches likes for a whole comment thread in one
// query and groups them by comment.
func (r *commentRepository) LikeUserIDsByComments(ctx context.Context, commentIDs []string) (map[string][]string, error) {
	grouped := make(map[string][]string, len(commentIDs))
	if len(commentIDs) == 0 {
		return grouped, nil
	}
	var likes []models.CommentLike
	if err := r.db.WithContext(ctx).
		Where("comment_id IN ?", commentIDs).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, like := range likes {
		grouped[like.CommentID] = append(grouped[like.CommentID], like.UserID)
	}
	return grouped, nil
}
