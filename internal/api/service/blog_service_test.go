package service

import (
	"context"
	"testing"

	"bloghub/internal/api/dto"
	"bloghub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const (
	testBlogID   = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	testAuthorID = "11111111-2222-3333-4444-555555555555"
	testUserID   = "99999999-8888-7777-6666-555555555555"
)

type blogServiceMocks struct {
	blogRepo         *MockBlogRepository
	userRepo         *MockUserRepository
	notificationRepo *MockNotificationRepository
	notifier         *MockReportNotifier
	store            *MockStorage
}

func newTestBlogService() (BlogService, *blogServiceMocks) {
	m := &blogServiceMocks{
		blogRepo:         new(MockBlogRepository),
		userRepo:         new(MockUserRepository),
		notificationRepo: new(MockNotificationRepository),
		notifier:         new(MockReportNotifier),
		store:            new(MockStorage),
	}
	svc := NewBlogService(m.blogRepo, m.userRepo, m.notificationRepo, m.notifier, m.store)
	return svc, m
}

// expectResponseLookups wires the queries toResponse runs for a single post.
func (m *blogServiceMocks) expectResponseLookups(blogID string, author *models.User) {
	if author != nil {
		m.userRepo.On("FindByID", mock.Anything, author.ID).Return(author, nil)
	}
	m.blogRepo.On("LikeUserIDs", mock.Anything, blogID).Return([]string{}, nil)
	m.blogRepo.On("CommentIDs", mock.Anything, blogID).Return([]string{}, nil)
	m.blogRepo.On("ShareCount", mock.Anything, blogID).Return(int64(0), nil)
}

func TestBlogService_Create(t *testing.T) {
	author := &models.User{ID: testAuthorID, Username: "alice"}

	t.Run("InlineContent", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Blog")).Run(func(args mock.Arguments) {
			blog := args.Get(1).(*models.Blog)
			blog.ID = testBlogID
		}).Return(nil).Once()
		m.expectResponseLookups(testBlogID, author)

		resp, err := svc.Create(context.Background(), &dto.CreateBlogRequest{
			Title:    "Hello World",
			Content:  "<p>body</p>",
			AuthorID: testAuthorID,
			Category: "tech",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Hello World", resp.Title)
		assert.Equal(t, "<p>body</p>", resp.Content)
		assert.Equal(t, "alice", resp.Author)
		assert.Equal(t, models.BlogStatusPublished, resp.Status)
		m.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DelegatedToStorage", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.store.On("Upload", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "text/html").
			Return("https://cdn.example.com/blogs/123-hello-world.html", nil).Once()
		m.blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Blog")).Run(func(args mock.Arguments) {
			blog := args.Get(1).(*models.Blog)
			blog.ID = testBlogID
			// The stored content is the URL, not the raw HTML
			assert.Equal(t, "https://cdn.example.com/blogs/123-hello-world.html", blog.Content)
		}).Return(nil).Once()
		m.expectResponseLookups(testBlogID, author)

		resp, err := svc.Create(context.Background(), &dto.CreateBlogRequest{
			Title:     "Hello World",
			Content:   "<p>body</p>",
			AuthorID:  testAuthorID,
			Category:  "tech",
			StoreHTML: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/blogs/123-hello-world.html", resp.Content)
		m.store.AssertExpectations(t)
	})
}

func TestBlogService_GetByID(t *testing.T) {
	author := &models.User{ID: testAuthorID, Username: "alice"}

	t.Run("IncrementsViews", func(t *testing.T) {
		svc, m := newTestBlogService()

		blog := &models.Blog{ID: testBlogID, Title: "Post", AuthorID: testAuthorID, Views: 4}
		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(blog, nil).Once()
		m.blogRepo.On("IncrementViews", mock.Anything, testBlogID).Return(nil).Once()
		m.expectResponseLookups(testBlogID, author)

		resp, err := svc.GetByID(context.Background(), testBlogID)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), resp.Views)
		m.blogRepo.AssertExpectations(t)
	})

	t.Run("MalformedID", func(t *testing.T) {
		svc, _ := newTestBlogService()

		resp, err := svc.GetByID(context.Background(), "not-a-uuid")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrBlogNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(nil, gorm.ErrRecordNotFound).Once()

		resp, err := svc.GetByID(context.Background(), testBlogID)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrBlogNotFound)
	})
}

func TestBlogService_ListPublished(t *testing.T) {
	svc, m := newTestBlogService()

	blogs := []models.Blog{
		{ID: testBlogID, Title: "Post", Content: "<p>long body</p>", AuthorID: testAuthorID, Status: models.BlogStatusPublished},
	}
	m.blogRepo.On("FindPublished", mock.Anything, publicListLimit).Return(blogs, nil).Once()
	m.userRepo.On("FindByIDs", mock.Anything, []string{testAuthorID}).
		Return([]models.User{{ID: testAuthorID, Username: "alice"}}, nil).Once()
	m.blogRepo.On("LikeUserIDsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string][]string{testBlogID: {testUserID}}, nil).Once()
	m.blogRepo.On("CommentIDsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string][]string{}, nil).Once()
	m.blogRepo.On("ShareCountsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string]int64{testBlogID: 3}, nil).Once()

	responses, err := svc.ListPublished(context.Background())

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Empty(t, responses[0].Content, "listing must not carry post bodies")
	assert.Equal(t, "alice", responses[0].Author)
	assert.Equal(t, []string{testUserID}, responses[0].Likes)
	assert.Equal(t, int64(3), responses[0].SharedBy)
}

func TestBlogService_ListPage(t *testing.T) {
	svc, m := newTestBlogService()

	// Drafts and blocked posts page alongside published ones
	blogs := []models.Blog{
		{ID: testBlogID, Title: "Draft", AuthorID: testAuthorID, Status: models.BlogStatusDraft},
	}
	m.blogRepo.On("List", mock.Anything, 2, 5).Return(blogs, int64(11), nil).Once()
	m.userRepo.On("FindByIDs", mock.Anything, []string{testAuthorID}).
		Return([]models.User{}, nil).Once()
	m.blogRepo.On("LikeUserIDsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string][]string{}, nil).Once()
	m.blogRepo.On("CommentIDsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string][]string{}, nil).Once()
	m.blogRepo.On("ShareCountsByBlogs", mock.Anything, []string{testBlogID}).
		Return(map[string]int64{}, nil).Once()

	page, err := svc.ListPage(context.Background(), 2, 5)

	assert.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(11), page.TotalItems)
	assert.Equal(t, "Unknown", page.Data[0].Author)
}

func TestBlogService_ToggleLike(t *testing.T) {
	author := &models.User{ID: testAuthorID, Username: "alice"}
	blog := &models.Blog{ID: testBlogID, AuthorID: testAuthorID}

	t.Run("AddsWhenAbsent", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(blog, nil).Once()
		m.blogRepo.On("HasLike", mock.Anything, testBlogID, testUserID).Return(false, nil).Once()
		m.blogRepo.On("AddLike", mock.Anything, testBlogID, testUserID).Return(nil).Once()
		m.expectResponseLookups(testBlogID, author)

		_, err := svc.ToggleLike(context.Background(), testBlogID, testUserID)

		assert.NoError(t, err)
		m.blogRepo.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RemovesWhenPresent", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(blog, nil).Once()
		m.blogRepo.On("HasLike", mock.Anything, testBlogID, testUserID).Return(true, nil).Once()
		m.blogRepo.On("RemoveLike", mock.Anything, testBlogID, testUserID).Return(nil).Once()
		m.expectResponseLookups(testBlogID, author)

		_, err := svc.ToggleLike(context.Background(), testBlogID, testUserID)

		assert.NoError(t, err)
		m.blogRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBlogService_Report(t *testing.T) {
	blog := &models.Blog{ID: testBlogID, AuthorID: testAuthorID, Status: models.BlogStatusPublished}

	t.Run("MarksProcessingAndRelays", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(blog, nil).Once()
		m.blogRepo.On("UpdateStatus", mock.Anything, testBlogID, models.BlogStatusProcessing).Return(nil).Once()
		m.notificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Notification")).Run(func(args mock.Arguments) {
			n := args.Get(1).(*models.Notification)
			assert.Equal(t, testBlogID, n.BlogID)
			assert.Equal(t, "spam", n.Category)
			assert.Equal(t, models.BlogStatusProcessing, n.Status)
		}).Return(nil).Once()
		m.notifier.On("PublishReport", mock.Anything, ReportEvent{
			BlogID:   testBlogID,
			Category: "spam",
			Reason:   "advertising",
			Status:   models.BlogStatusProcessing,
		}).Return(nil).Once()

		err := svc.Report(context.Background(), &dto.ReportBlogRequest{
			BlogID:   testBlogID,
			Category: "spam",
			Reason:   "advertising",
		})

		assert.NoError(t, err)
		m.notifier.AssertExpectations(t)
		m.notificationRepo.AssertExpectations(t)
	})

	t.Run("UnknownBlog", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("FindByID", mock.Anything, testBlogID).Return(nil, gorm.ErrRecordNotFound).Once()

		err := svc.Report(context.Background(), &dto.ReportBlogRequest{BlogID: testBlogID, Reason: "spam"})

		assert.ErrorIs(t, err, ErrBlogNotFound)
		m.notifier.AssertNotCalled(t, "PublishReport", mock.Anything, mock.Anything)
	})
}

func TestBlogService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newTestBlogService()

		m.blogRepo.On("Delete", mock.Anything, testBlogID).Return(nil).Once()

		assert.NoError(t, svc.Delete(context.Background(), testBlogID))
	})

	t.Run("MalformedID", func(t *testing.T) {
		svc, _ := newTestBlogService()

		assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrBlogNotFound)
	})
}
