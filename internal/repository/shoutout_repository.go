package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bragboard/internal/model"
)

// ShoutoutRepository defines shoutout persistence operations, including the
// recipient join table and the leaderboard aggregate.
type ShoutoutRepository interface {
	Create(ctx context.Context, shoutout *model.Shoutout) error
	Update(ctx context.Context, shoutout *model.Shoutout) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shoutout, error)
	ListNewestFirst(ctx context.Context) ([]model.Shoutout, error)

	AddRecipient(ctx context.Context, shoutoutID, userID uuid.UUID) error
	DeleteRecipients(ctx context.Context, shoutoutID uuid.UUID) error
	Recipients(ctx context.Context, shoutoutID uuid.UUID) ([]model.User, error)

	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}

type shoutoutRepository struct {
	db *gorm.DB
}

// NewShoutoutRepository creates a new shoutout repository.
func NewShoutoutRepository(db *gorm.DB) ShoutoutRepository {
	return &shoutoutRepository{db: db}
}

// Create creates a new shoutout.
func (r *shoutoutRepository) Create(ctx context.Context, shoutout *model.Shoutout) error {
	return r.db.WithContext(ctx).Create(shoutout).Error
}

// Update updates an existing shoutout.
func (r *shoutoutRepository) Update(ctx context.Context, shoutout *model.Shoutout) error {
	return r.db.WithContext(ctx).Save(shoutout).Error
}

// Delete removes the shoutout's join rows, then the shoutout itself.
// Notifications already sent are not retracted.
func (r *shoutoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DeleteRecipients(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&model.Shoutout{}, "id = ?", id).Error
}

// FindByID finds a shoutout by ID.
func (r *shoutoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Shoutout, error) {
	var shoutout model.Shoutout
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shoutout).Error; err != nil {
		return nil, err
	}
	return &shoutout, nil
}

// ListNewestFirst lists all shoutouts ordered by creation time descending.
func (r *shoutoutRepository) ListNewestFirst(ctx context.Context) ([]model.Shoutout, error) {
	var shoutouts []model.Shoutout
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&shoutouts).Error; err != nil {
		return nil, err
	}
	return shoutouts, nil
}

// AddRecipient inserts one join row linking a shoutout to a recipient.
func (r *shoutoutRepository) AddRecipient(ctx context.Context, shoutoutID, userID uuid.UUID) error {
	link := model.ShoutoutRecipient{ShoutoutID: shoutoutID, UserID: userID}
	return r.db.WithContext(ctx).Create(&link).Error
}

// DeleteRecipients removes every join row for the shoutout.
func (r *shoutoutRepository) DeleteRecipients(ctx context.Context, shoutoutID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("shoutout_id = ?", shoutoutID).
		Delete(&model.ShoutoutRecipient{}).Error
}

// Recipients returns the public profiles of the shoutout's recipients.
func (r *shoutoutRepository) Recipients(ctx context.Context, shoutoutID uuid.UUID) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins("JOIN shoutout_recipient sr ON sr.user_id = users.id").
		Where("sr.shoutout_id = ?", shoutoutID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Leaderboard ranks users by shoutouts received. Users with zero shoutouts
// are included; ties break by id so the ordering is deterministic.
func (r *shoutoutRepository) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.full_name, COUNT(sr.user_id) AS shoutout_count
		FROM users u
		LEFT JOIN shoutout_recipient sr ON u.id = sr.user_id
		GROUP BY u.id, u.full_name
		ORDER BY shoutout_count DESC, u.id ASC
		LIMIT ?`, limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
