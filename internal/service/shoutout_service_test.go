package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bragboard/internal/model"
)

func TestShoutoutService_Create_FiltersRecipients(t *testing.T) {
	author := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	employee := &model.User{ID: uuid.New(), Role: model.RoleEmployee, FullName: "Alice"}
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
	missing := uuid.New()

	shoutoutRepo := new(MockShoutoutRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)

	shoutoutRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Shoutout")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Shoutout).ID = uuid.New()
		}).Return(nil)

	userRepo.On("FindByID", mock.Anything, employee.ID).Return(employee, nil)
	userRepo.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	userRepo.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

	// Only the EMPLOYEE-role recipient gets a join row and a notification.
	shoutoutRepo.On("AddRecipient", mock.Anything, mock.Anything, employee.ID).Return(nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == employee.ID &&
			n.Title == "New shoutout received" &&
			n.Content == "You received a shoutout: Great job"
	})).Return(nil).Once()

	svc := NewShoutoutService(shoutoutRepo, userRepo, notificationRepo)
	id, err := svc.Create(context.Background(), author, "Great job", "Shipped the release", []string{
		employee.ID.String(),
		admin.ID.String(),
		missing.String(),
		"not-a-uuid",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	shoutoutRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestShoutoutService_Update_Authorization(t *testing.T) {
	author := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
	stranger := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	existing := &model.Shoutout{ID: uuid.New(), Title: "Old", Content: "Old body", AuthorID: author.ID}

	tests := []struct {
		name          string
		caller        *model.User
		id            string
		setupMock     func(*MockShoutoutRepository)
		expectedError error
	}{
		{
			name:   "author may update",
			caller: author,
			id:     existing.ID.String(),
			setupMock: func(m *MockShoutoutRepository) {
				m.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Shoutout")).Return(nil)
			},
		},
		{
			name:   "admin may update",
			caller: admin,
			id:     existing.ID.String(),
			setupMock: func(m *MockShoutoutRepository) {
				m.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Shoutout")).Return(nil)
			},
		},
		{
			name:   "other users are forbidden",
			caller: stranger,
			id:     existing.ID.String(),
			setupMock: func(m *MockShoutoutRepository) {
				m.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "unknown id",
			caller: author,
			id:     uuid.New().String(),
			setupMock: func(m *MockShoutoutRepository) {
				m.On("FindByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrShoutoutNotFound,
		},
		{
			name:          "malformed id",
			caller:        author,
			id:            "not-a-uuid",
			setupMock:     func(m *MockShoutoutRepository) {},
			expectedError: ErrShoutoutNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shoutoutRepo := new(MockShoutoutRepository)
			tt.setupMock(shoutoutRepo)

			svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
			title := "New title"
			_, err := svc.Update(context.Background(), tt.caller, tt.id, UpdateShoutoutInput{Title: &title})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			shoutoutRepo.AssertExpectations(t)
		})
	}
}

func TestShoutoutService_Update_ReplacesRecipientsWholesale(t *testing.T) {
	author := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	existing := &model.Shoutout{ID: uuid.New(), Title: "Kudos", AuthorID: author.ID}

	t.Run("empty list clears the recipient set", func(t *testing.T) {
		shoutoutRepo := new(MockShoutoutRepository)
		shoutoutRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		shoutoutRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		shoutoutRepo.On("DeleteRecipients", mock.Anything, existing.ID).Return(nil).Once()

		svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
		empty := []string{}
		_, err := svc.Update(context.Background(), author, existing.ID.String(), UpdateShoutoutInput{RecipientIDs: &empty})

		assert.NoError(t, err)
		shoutoutRepo.AssertExpectations(t)
		shoutoutRepo.AssertNotCalled(t, "AddRecipient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("re-added recipient is notified again", func(t *testing.T) {
		recipient := &model.User{ID: uuid.New(), Role: model.RoleEmployee}

		shoutoutRepo := new(MockShoutoutRepository)
		userRepo := new(MockUserRepository)
		notificationRepo := new(MockNotificationRepository)

		shoutoutRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		shoutoutRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		shoutoutRepo.On("DeleteRecipients", mock.Anything, existing.ID).Return(nil).Once()
		userRepo.On("FindByID", mock.Anything, recipient.ID).Return(recipient, nil)
		shoutoutRepo.On("AddRecipient", mock.Anything, existing.ID, recipient.ID).Return(nil).Once()
		notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == recipient.ID
		})).Return(nil).Once()

		svc := NewShoutoutService(shoutoutRepo, userRepo, notificationRepo)
		ids := []string{recipient.ID.String()}
		_, err := svc.Update(context.Background(), author, existing.ID.String(), UpdateShoutoutInput{RecipientIDs: &ids})

		assert.NoError(t, err)
		notificationRepo.AssertExpectations(t)
	})

	t.Run("absent recipient list leaves join rows alone", func(t *testing.T) {
		shoutoutRepo := new(MockShoutoutRepository)
		shoutoutRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		shoutoutRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
		title := "Renamed"
		_, err := svc.Update(context.Background(), author, existing.ID.String(), UpdateShoutoutInput{Title: &title})

		assert.NoError(t, err)
		shoutoutRepo.AssertNotCalled(t, "DeleteRecipients", mock.Anything, mock.Anything)
	})
}

func TestShoutoutService_Delete(t *testing.T) {
	author := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	stranger := &model.User{ID: uuid.New(), Role: model.RoleEmployee}
	existing := &model.Shoutout{ID: uuid.New(), AuthorID: author.ID}

	t.Run("author may delete", func(t *testing.T) {
		shoutoutRepo := new(MockShoutoutRepository)
		shoutoutRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
		shoutoutRepo.On("Delete", mock.Anything, existing.ID).Return(nil).Once()

		svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
		err := svc.Delete(context.Background(), author, existing.ID.String())

		assert.NoError(t, err)
		shoutoutRepo.AssertExpectations(t)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		shoutoutRepo := new(MockShoutoutRepository)
		shoutoutRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

		svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
		err := svc.Delete(context.Background(), stranger, existing.ID.String())

		assert.ErrorIs(t, err, ErrForbidden)
		shoutoutRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestShoutoutService_List(t *testing.T) {
	first := model.Shoutout{ID: uuid.New(), Title: "Newest"}
	second := model.Shoutout{ID: uuid.New(), Title: "Older"}
	recipient := model.User{ID: uuid.New(), FullName: "Alice", Email: "alice@example.com"}

	shoutoutRepo := new(MockShoutoutRepository)
	shoutoutRepo.On("ListNewestFirst", mock.Anything).Return([]model.Shoutout{first, second}, nil)
	shoutoutRepo.On("Recipients", mock.Anything, first.ID).Return([]model.User{recipient}, nil)
	shoutoutRepo.On("Recipients", mock.Anything, second.ID).Return([]model.User{}, nil)

	svc := NewShoutoutService(shoutoutRepo, new(MockUserRepository), new(MockNotificationRepository))
	views, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Newest", views[0].Title)
	assert.Equal(t, []uuid.UUID{recipient.ID}, views[0].RecipientIDs)
	assert.Equal(t, "Alice", views[0].Recipients[0].FullName)
	assert.Empty(t, views[1].RecipientIDs)
}
