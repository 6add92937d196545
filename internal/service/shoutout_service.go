package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bragboard/internal/metrics"
	"bragboard/internal/model"
	"bragboard/internal/repository"
)

// Notification template used for recipient fan-out. The content references
// the shoutout title; the web client relies on this exact wording.
const (
	notificationTitle         = "New shoutout received"
	notificationContentFormat = "You received a shoutout: %s"
)

var (
	// ErrShoutoutNotFound is returned when a shoutout id does not exist.
	ErrShoutoutNotFound = errors.New("shoutout not found")
	// ErrForbidden is returned when the caller is neither the author nor an
	// admin on a mutating shoutout operation.
	ErrForbidden = errors.New("forbidden")
)

// ShoutoutView is a shoutout joined with its recipients' public profiles.
type ShoutoutView struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	AuthorID     uuid.UUID          `json:"author_id"`
	Cheers       int                `json:"cheers"`
	CreatedAt    time.Time          `json:"created_at"`
	RecipientIDs []uuid.UUID        `json:"recipient_ids"`
	Recipients   []RecipientProfile `json:"recipients"`
}

// RecipientProfile is the public slice of a recipient's user record.
type RecipientProfile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// UpdateShoutoutInput carries the fields of a partial update. Nil pointers
// mean "leave unchanged"; a non-nil empty RecipientIDs clears the set.
type UpdateShoutoutInput struct {
	Title        *string
	Content      *string
	RecipientIDs *[]string
}

// ShoutoutService handles recognition posts and their recipient fan-out.
type ShoutoutService interface {
	Create(ctx context.Context, author *model.User, title, content string, recipientIDs []string) (uuid.UUID, error)
	List(ctx context.Context) ([]ShoutoutView, error)
	Update(ctx context.Context, caller *model.User, id string, input UpdateShoutoutInput) (uuid.UUID, error)
	Delete(ctx context.Context, caller *model.User, id string) error
}

type shoutoutService struct {
	shoutoutRepo     repository.ShoutoutRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewShoutoutService creates a new shoutout service.
func NewShoutoutService(
	shoutoutRepo repository.ShoutoutRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) ShoutoutService {
	return &shoutoutService{
		shoutoutRepo:     shoutoutRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Create persists a shoutout authored by the caller, links each valid
// recipient, and writes one notification per linked recipient. Recipient ids
// that are malformed, unknown, or not EMPLOYEE-role users are skipped
// without error; callers get no report of which ids were dropped.
func (s *shoutoutService) Create(ctx context.Context, author *model.User, title, content string, recipientIDs []string) (uuid.UUID, error) {
	shoutout := &model.Shoutout{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
	}
	if err := s.shoutoutRepo.Create(ctx, shoutout); err != nil {
		return uuid.Nil, fmt.Errorf("create shoutout: %w", err)
	}

	if err := s.fanOut(ctx, shoutout.ID, title, recipientIDs, "create"); err != nil {
		return uuid.Nil, err
	}

	metrics.ShoutoutsCreatedTotal.Inc()
	return shoutout.ID, nil
}

// List returns all shoutouts newest first, each with its recipient ids and
// the recipients' public profile fields.
func (s *shoutoutService) List(ctx context.Context) ([]ShoutoutView, error) {
	shoutouts, err := s.shoutoutRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shoutouts: %w", err)
	}

	views := make([]ShoutoutView, 0, len(shoutouts))
	for _, shoutout := range shoutouts {
		recipients, err := s.shoutoutRepo.Recipients(ctx, shoutout.ID)
		if err != nil {
			return nil, fmt.Errorf("load recipients for %s: %w", shoutout.ID, err)
		}

		view := ShoutoutView{
			ID:           shoutout.ID,
			Title:        shoutout.Title,
			Content:      shoutout.Content,
			AuthorID:     shoutout.AuthorID,
			Cheers:       shoutout.Cheers,
			CreatedAt:    shoutout.CreatedAt,
			RecipientIDs: make([]uuid.UUID, 0, len(recipients)),
			Recipients:   make([]RecipientProfile, 0, len(recipients)),
		}
		for _, u := range recipients {
			view.RecipientIDs = append(view.RecipientIDs, u.ID)
			view.Recipients = append(view.Recipients, RecipientProfile{
				ID:       u.ID,
				FullName: u.FullName,
				Email:    u.Email,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// Update applies the fields present in input. When RecipientIDs is present,
// even empty, the entire recipient set is replaced and the create fan-out
// runs again; recipients kept across the replace are notified again.
func (s *shoutoutService) Update(ctx context.Context, caller *model.User, id string, input UpdateShoutoutInput) (uuid.UUID, error) {
	shoutout, err := s.authorize(ctx, caller, id)
	if err != nil {
		return uuid.Nil, err
	}

	if input.Title != nil {
		shoutout.Title = *input.Title
	}
	if input.Content != nil {
		shoutout.Content = *input.Content
	}
	if err := s.shoutoutRepo.Update(ctx, shoutout); err != nil {
		return uuid.Nil, fmt.Errorf("update shoutout: %w", err)
	}

	if input.RecipientIDs != nil {
		if err := s.shoutoutRepo.DeleteRecipients(ctx, shoutout.ID); err != nil {
			return uuid.Nil, fmt.Errorf("clear recipients: %w", err)
		}
		if err := s.fanOut(ctx, shoutout.ID, shoutout.Title, *input.RecipientIDs, "update"); err != nil {
			return uuid.Nil, err
		}
	}

	return shoutout.ID, nil
}

// Delete removes the shoutout and its join rows. Notifications already sent
// stay in recipients' inboxes.
func (s *shoutoutService) Delete(ctx context.Context, caller *model.User, id string) error {
	shoutout, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.shoutoutRepo.Delete(ctx, shoutout.ID); err != nil {
		return fmt.Errorf("delete shoutout: %w", err)
	}
	return nil
}

// authorize loads the shoutout and checks the author-or-admin rule.
// Existence is checked before authorization, so an unknown id yields
// NotFound even for callers who could not have touched it.
func (s *shoutoutService) authorize(ctx context.Context, caller *model.User, id string) (*model.Shoutout, error) {
	shoutoutID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrShoutoutNotFound
	}

	shoutout, err := s.shoutoutRepo.FindByID(ctx, shoutoutID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrShoutoutNotFound
		}
		return nil, fmt.Errorf("find shoutout: %w", err)
	}

	if caller.ID != shoutout.AuthorID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return shoutout, nil
}

// fanOut links each recipient id that resolves to an EMPLOYEE-role user and
// appends their notification. Invalid ids are dropped silently.
func (s *shoutoutService) fanOut(ctx context.Context, shoutoutID uuid.UUID, title string, recipientIDs []string, trigger string) error {
	for _, raw := range recipientIDs {
		userID, err := uuid.Parse(raw)
		if err != nil {
			continue
		}

		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return fmt.Errorf("resolve recipient %s: %w", userID, err)
		}
		if user.Role != model.RoleEmployee {
			continue
		}

		if err := s.shoutoutRepo.AddRecipient(ctx, shoutoutID, user.ID); err != nil {
			return fmt.Errorf("link recipient %s: %w", user.ID, err)
		}

		notification := &model.Notification{
			UserID:  user.ID,
			Title:   notificationTitle,
			Content: fmt.Sprintf(notificationContentFormat, title),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return fmt.Errorf("notify recipient %s: %w", user.ID, err)
		}
		metrics.NotificationsSentTotal.WithLabelValues(trigger).Inc()
	}
	return nil
}
