package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bragboard/internal/model"
	"bragboard/internal/repository"
)

// ErrNotificationNotFound is returned when a notification does not exist or
// does not belong to the caller.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles the per-user inbox.
type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string, userID uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// List returns the caller's notifications, newest first.
func (s *notificationService) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead sets is_read on the caller's notification. Marking an already
// read notification again is a no-op, not an error.
func (s *notificationService) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotificationNotFound
	}

	notification, err := s.repo.FindByIDAndUser(ctx, notificationID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("find notification: %w", err)
	}

	notification.IsRead = true
	if err := s.repo.Update(ctx, notification); err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}
