package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/models"
	"bloghub/internal/api/repository"
	"bloghub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// publicListLimit caps the unpaginated public listing.
const publicListLimit = 18

type BlogService interface {
	Create(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error)
	GetByID(ctx context.Context, id string) (*dto.BlogResponse, error)
	ListPublished(ctx context.Context) ([]dto.BlogResponse, error)
	ListPage(ctx context.Context, page, limit int) (*dto.PaginatedBlogsResponse, error)
	ToggleLike(ctx context.Context, blogID, userID string) (*dto.BlogResponse, error)
	Report(ctx context.Context, req *dto.ReportBlogRequest) error
	Update(ctx context.Context, id string, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogRepo         repository.BlogRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	notifier         ReportNotifier
	store            storage.Storage
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	notifier ReportNotifier,
	store storage.Storage,
) BlogService {
	return &blogService{
		blogRepo:         blogRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		store:            store,
	}
}

// Create persists a new post, published immediately. When the body is
// delegated to object storage the stored content is the public URL of the
// uploaded HTML file.
func (s *blogService) Create(ctx context.Context, req *dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	content := req.Content
	if req.StoreHTML {
		name := storage.HTMLFileName(req.Title, time.Now())
		url, err := s.store.Upload(ctx, name, strings.NewReader(req.Content), "text/html")
		if err != nil {
			return nil, err
		}
		content = url
	}

	blog := &models.Blog{
		Title:    req.Title,
		Content:  content,
		AuthorID: req.AuthorID,
		Category: req.Category,
		Tags:     req.Tags,
		Status:   models.BlogStatusPublished,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, blog, true)
}

// GetByID returns one post with its author's display name and membership
// sets resolved. Each detail view bumps the view counter.
func (s *blogService) GetByID(ctx context.Context, id string) (*dto.BlogResponse, error) {
	blog, err := s.findBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	blog.Views++

	return s.toResponse(ctx, blog, true)
}

// ListPublished is the public landing listing: published posts only, newest
// first, capped, content excluded.
func (s *blogService) ListPublished(ctx context.Context) ([]dto.BlogResponse, error) {
	blogs, err := s.blogRepo.FindPublished(ctx, publicListLimit)
	if err != nil {
		return nil, err
	}

	responses, err := s.toResponses(ctx, blogs)
	if err != nil {
		return nil, err
	}
	for i := range responses {
		responses[i].Content = ""
	}
	return responses, nil
}

// ListPage pages over every post regardless of status. The status filter of
// the public listing deliberately does not apply here.
func (s *blogService) ListPage(ctx context.Context, page, limit int) (*dto.PaginatedBlogsResponse, error) {
	blogs, total, err := s.blogRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	responses, err := s.toResponses(ctx, blogs)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedBlogsResponse{
		Data:        responses,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalItems:  total,
	}, nil
}

// ToggleLike flips the user's membership in the post's like set. Applying it
// twice restores the original state.
func (s *blogService) ToggleLike(ctx context.Context, blogID, userID string) (*dto.BlogResponse, error) {
	blog, err := s.findBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	liked, err := s.blogRepo.HasLike(ctx, blogID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.blogRepo.RemoveLike(ctx, blogID, userID)
	} else {
		err = s.blogRepo.AddLike(ctx, blogID, userID)
	}
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, blog, true)
}

// Report moves the post to processing and relays the report to the admins.
// Reporting an already-processing post repeats both steps.
func (s *blogService) Report(ctx context.Context, req *dto.ReportBlogRequest) error {
	if _, err := s.findBlog(ctx, req.BlogID); err != nil {
		return err
	}

	if err := s.blogRepo.UpdateStatus(ctx, req.BlogID, models.BlogStatusProcessing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	notification := &models.Notification{
		BlogID:   req.BlogID,
		Category: req.Category,
		Reason:   req.Reason,
		Status:   models.BlogStatusProcessing,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}

	return s.notifier.PublishReport(ctx, ReportEvent{
		BlogID:   req.BlogID,
		Category: req.Category,
		Reason:   req.Reason,
		Status:   models.BlogStatusProcessing,
	})
}

// Update applies a no-clobber merge. Any status may be set to any other;
// there is no transition graph.
func (s *blogService) Update(ctx context.Context, id string, req *dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBlogNotFound
	}

	blog, err := s.blogRepo.UpdateFields(ctx, id, req.Fields())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return s.toResponse(ctx, blog, true)
}

// Delete removes the post only; its comments stay behind.
func (s *blogService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrBlogNotFound
	}

	err := s.blogRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func (s *blogService) findBlog(ctx context.Context, id string) (*models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBlogNotFound
	}
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

// toResponse assembles the full response for a single post.
func (s *blogService) toResponse(ctx context.Context, blog *models.Blog, requireAuthor bool) (*dto.BlogResponse, error) {
	author, err := s.userRepo.FindByID(ctx, blog.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if requireAuthor {
				return nil, ErrAuthorNotFound
			}
		} else {
			return nil, err
		}
	}

	authorName := "Unknown"
	if author != nil {
		authorName = author.Username
	}

	response := dto.FromModelToBlogResponse(blog, authorName)

	if response.Likes, err = s.blogRepo.LikeUserIDs(ctx, blog.ID); err != nil {
		return nil, err
	}
	if response.Comments, err = s.blogRepo.CommentIDs(ctx, blog.ID); err != nil {
		return nil, err
	}
	if response.SharedBy, err = s.blogRepo.ShareCount(ctx, blog.ID); err != nil {
		return nil, err
	}

	return response, nil
}

// toResponses assembles listing responses with one batched query per
// referenced collection, joined in memory.
func (s *blogService) toResponses(ctx context.Context, blogs []models.Blog) ([]dto.BlogResponse, error) {
	blogIDs := make([]string, 0, len(blogs))
	authorIDs := make([]string, 0, len(blogs))
	seenAuthors := map[string]bool{}
	for i := range blogs {
		blogIDs = append(blogIDs, blogs[i].ID)
		if !seenAuthors[blogs[i].AuthorID] {
			seenAuthors[blogs[i].AuthorID] = true
			authorIDs = append(authorIDs, blogs[i].AuthorID)
		}
	}

	authors, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(authors))
	for i := range authors {
		names[authors[i].ID] = authors[i].Username
	}

	likes, err := s.blogRepo.LikeUserIDsByBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.blogRepo.CommentIDsByBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}
	shares, err := s.blogRepo.ShareCountsByBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		name, ok := names[blogs[i].AuthorID]
		if !ok {
			name = "Unknown"
		}
		response := dto.FromModelToBlogResponse(&blogs[i], name)
		if ids := likes[blogs[i].ID]; ids != nil {
			response.Likes = ids
		}
		if ids := comments[blogs[i].ID]; ids != nil {
			response.Comments = ids
		}
		response.SharedBy = shares[blogs[i].ID]
		responses = append(responses, *response)
	}
	return responses, nil
}
