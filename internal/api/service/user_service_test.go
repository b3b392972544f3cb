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

func TestUserService_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		user := &models.User{ID: testUserID, Username: "bob", Email: "bob@example.com", Password: "hash"}
		mockRepo.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()

		resp, err := svc.GetByID(context.Background(), testUserID)

		assert.NoError(t, err)
		assert.Equal(t, "bob", resp.Username)
		assert.Equal(t, "bob@example.com", resp.Email)
	})

	t.Run("MalformedID", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		resp, err := svc.GetByID(context.Background(), "not-a-uuid")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrUserNotFound)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("FindByID", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound).Once()

		resp, err := svc.GetByID(context.Background(), testUserID)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	users := []models.User{
		{ID: testUserID, Username: "bob"},
		{ID: testAuthorID, Username: "alice"},
	}
	mockRepo.On("List", mock.Anything, 1, 3).Return(users, int64(7), nil).Once()

	page, err := svc.List(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(7), page.TotalItems)
}

func TestUserService_Update(t *testing.T) {
	t.Run("MergesOnlyProvidedFields", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		newPhone := "0123456789"
		updated := &models.User{ID: testUserID, Username: "bob", Phone: newPhone}

		mockRepo.On("UpdateFields", mock.Anything, testUserID, map[string]any{"phone": newPhone}).
			Return(updated, nil).Once()

		resp, err := svc.Update(context.Background(), testUserID, &dto.UpdateUserRequest{Phone: &newPhone})

		assert.NoError(t, err)
		assert.Equal(t, newPhone, resp.Phone)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		username := "ghost"
		mockRepo.On("UpdateFields", mock.Anything, testUserID, mock.Anything).
			Return(nil, gorm.ErrRecordNotFound).Once()

		resp, err := svc.Update(context.Background(), testUserID, &dto.UpdateUserRequest{Username: &username})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("Delete", mock.Anything, testUserID).Return(nil).Once()

		assert.NoError(t, svc.Delete(context.Background(), testUserID))
	})

	t.Run("MalformedID", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), ErrUserNotFound)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(10, 0))
	assert.Equal(t, 1, totalPages(3, 3))
	assert.Equal(t, 2, totalPages(4, 3))
	assert.Equal(t, 0, totalPages(0, 5))
}
