package service

import (
	"context"
	"errors"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/models"
	"bloghub/internal/api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrParentNotFound  = errors.New("parent comment not found")
)

type CommentService interface {
	Create(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByBlog(ctx context.Context, blogID string) ([]dto.CommentResponse, error)
	ListAll(ctx context.Context) ([]dto.CommentResponse, error)
	UpdateContent(ctx context.Context, commentID, content string) (*dto.CommentResponse, error)
	ToggleLike(ctx context.Context, commentID, userID string) (*dto.CommentResponse, error)
	Delete(ctx context.Context, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	blogRepo repository.BlogRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
	}
}

// Create persists the comment, then verifies its parent and its blog. The
// writes are not transactional: a failed secondary check surfaces as an
// error while the comment row remains, and the caller sees the failure.
func (s *commentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	comment := &models.Comment{
		BlogID:   req.BlogID,
		UserID:   req.UserID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if _, err := s.commentRepo.FindByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
	}

	if _, err := s.blogRepo.FindByID(ctx, req.BlogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return s.toResponse(ctx, comment)
}

// ListByBlog returns the one-level materialized tree for a post: top-level
// comments with their direct children attached. Author names and likes are
// resolved with one batched query each.
func (s *commentService) ListByBlog(ctx context.Context, blogID string) ([]dto.CommentResponse, error) {
	if _, err := uuid.Parse(blogID); err != nil {
		return nil, ErrBlogNotFound
	}

	comments, err := s.commentRepo.FindByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []dto.CommentResponse{}, nil
	}

	responses, err := s.toResponses(ctx, comments)
	if err != nil {
		return nil, err
	}

	// Partition into parents and children, then attach each child under its
	// parent. One level only: children of children are not revisited.
	parents := make([]dto.CommentResponse, 0, len(responses))
	children := make([]dto.CommentResponse, 0)
	for _, response := range responses {
		if response.ParentID == nil {
			parents = append(parents, response)
		} else {
			children = append(children, response)
		}
	}
	for i := range parents {
		for _, child := range children {
			if *child.ParentID == parents[i].ID {
				parents[i].Children = append(parents[i].Children, child)
			}
		}
	}
	return parents, nil
}

// ListAll returns every comment as a flat list.
func (s *commentService) ListAll(ctx context.Context) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []dto.CommentResponse{}, nil
	}
	return s.toResponses(ctx, comments)
}

// UpdateContent replaces the text only; authorship and threading are fixed.
func (s *commentService) UpdateContent(ctx context.Context, commentID, content string) (*dto.CommentResponse, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, ErrCommentNotFound
	}

	comment, err := s.commentRepo.UpdateContent(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return s.toResponse(ctx, comment)
}

// ToggleLike flips the user's membership in the comment's like set.
func (s *commentService) ToggleLike(ctx context.Context, commentID, userID string) (*dto.CommentResponse, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, ErrCommentNotFound
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	liked, err := s.commentRepo.HasLike(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.commentRepo.RemoveLike(ctx, commentID, userID)
	} else {
		err = s.commentRepo.AddLike(ctx, commentID, userID)
	}
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, comment)
}

// Delete removes the comment and its direct children. Grandchildren stay in
// the table; that one-level cascade is the documented behavior.
func (s *commentService) Delete(ctx context.Context, commentID string) error {
	if _, err := uuid.Parse(commentID); err != nil {
		return ErrCommentNotFound
	}

	err := s.commentRepo.DeleteWithChildren(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	return err
}

func (s *commentService) toResponse(ctx context.Context, comment *models.Comment) (*dto.CommentResponse, error) {
	username := "Unknown"
	author, err := s.userRepo.FindByID(ctx, comment.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if author != nil {
		username = author.Username
	}

	response := dto.FromModelToCommentResponse(comment, username)

	if response.Likes, err = s.commentRepo.LikeUserIDs(ctx, comment.ID); err != nil {
		return nil, err
	}
	if response.Children, err = s.childResponses(ctx, comment.ID); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *commentService) childResponses(ctx context.Context, parentID string) ([]dto.CommentResponse, error) {
	ids, err := s.commentRepo.ChildIDs(ctx, parentID)
	if err != nil {
		return nil, err
	}
	children := make([]dto.CommentResponse, 0, len(ids))
	for _, id := range ids {
		child, err := s.commentRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		response, err := s.toShallowResponse(ctx, child)
		if err != nil {
			return nil, err
		}
		children = append(children, *response)
	}
	return children, nil
}

// toShallowResponse resolves name and likes but never recurses into
// children.
func (s *commentService) toShallowResponse(ctx context.Context, comment *models.Comment) (*dto.CommentResponse, error) {
	username := "Unknown"
	author, err := s.userRepo.FindByID(ctx, comment.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if author != nil {
		username = author.Username
	}

	response := dto.FromModelToCommentResponse(comment, username)
	if response.Likes, err = s.commentRepo.LikeUserIDs(ctx, comment.ID); err != nil {
		return nil, err
	}
	return response, nil
}

// toResponses resolves author names and like sets for a batch of comments
// with one query per collection.
func (s *commentService) toResponses(ctx context.Context, comments []models.Comment) ([]dto.CommentResponse, error) {
	commentIDs := make([]string, 0, len(comments))
	userIDs := make([]string, 0, len(comments))
	seenUsers := map[string]bool{}
	for i := range comments {
		commentIDs = append(commentIDs, comments[i].ID)
		if !seenUsers[comments[i].UserID] {
			seenUsers[comments[i].UserID] = true
			userIDs = append(userIDs, comments[i].UserID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Username
	}

	likes, err := s.commentRepo.LikeUserIDsByComments(ctx, commentIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		name, ok := names[comments[i].UserID]
		if !ok {
			name = "Unknown"
		}
		response := dto.FromModelToCommentResponse(&comments[i], name)
		if ids := likes[comments[i].ID]; ids != nil {
			response.Likes = ids
		}
		responses = append(responses, *response)
	}
	return responses, nil
}
