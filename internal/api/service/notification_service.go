package service

import (
	"context"
	"errors"

	"bloghub/internal/api/models"
	"bloghub/internal/api/repository"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService backs the admin moderation queue fed by blog reports.
type NotificationService interface {
	GetUnread(ctx context.Context) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) GetUnread(ctx context.Context) ([]models.Notification, error) {
	return s.repo.GetUnread(ctx)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	err := s.repo.MarkAsRead(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
